package report

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/usecase/lookup"
	appErrors "fuel-dispatch-monitor/pkg/errors"
)

var (
	dispatchColumns = []string{
		"Dispatch No.", "Plate", "Oil Company", "Transporter",
		"Dispatch Date/Time", "Drop Off Date/Time", "Duration", "Status",
	}
	vehicleColumns = []string{
		"Vehicle Plate", "Transporter", "Oil Company", "Dispatch ID",
		"Dispatch Date/Time", "Dispatch Location", "Drop Off Location",
		"Drop Off Date/Time", "Duration", "Status",
	}
	depotColumns = []string{
		"Depot ID", "Depot Name", "Drop Off Date/Time", "Vehicle",
		"Oil Company", "Transporter", "Duration", "Status",
	}
)

var ymdPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Service runs parameterized searches over dispatch tasks and projects
// them into per-mode tables. Filtering preserves source order; no re-sort
// is applied.
type Service struct {
	dispatchRepo dispatch.Repository
	fleetRepo    fleet.Repository
}

func NewService(dispatchRepo dispatch.Repository, fleetRepo fleet.Repository) *Service {
	return &Service{
		dispatchRepo: dispatchRepo,
		fleetRepo:    fleetRepo,
	}
}

// Run executes the report. An unknown mode is the only input error;
// malformed dates silently widen to unbounded, this is a search filter
// and not a data-integrity boundary.
func (s *Service) Run(ctx context.Context, req *Request) (*Result, error) {
	if !req.Mode.Valid() {
		return nil, appErrors.NewAppError("INVALID_MODE", "mode must be one of dispatch, vehicle, depot", nil)
	}

	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := lookup.Build(ctx, s.fleetRepo)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	from := parseYmd(req.From)
	to := parseYmd(req.To)
	if to != nil {
		// the end date is inclusive of the whole day
		end := to.Add(24*time.Hour - time.Millisecond)
		to = &end
	}

	inRange := func(t time.Time) bool {
		if t.IsZero() {
			return true
		}
		if from != nil && t.Before(*from) {
			return false
		}
		if to != nil && t.After(*to) {
			return false
		}
		return true
	}

	result := &Result{Mode: req.Mode}
	switch req.Mode {
	case ModeDispatch:
		result.Columns = dispatchColumns
	case ModeVehicle:
		result.Columns = vehicleColumns
	case ModeDepot:
		result.Columns = depotColumns
	}

	for _, t := range tasks {
		if !inRange(t.DispatchDateTime) {
			continue
		}
		if !s.matches(req.Mode, &t, query, idx) {
			continue
		}
		result.Rows = append(result.Rows, Row{
			Cells:  s.project(req.Mode, &t, idx),
			Status: t.Status,
		})
	}

	return result, nil
}

func (s *Service) matches(mode Mode, t *dispatch.Task, query string, idx *lookup.NameIndex) bool {
	if query == "" {
		return true
	}

	switch mode {
	case ModeDispatch:
		return strings.Contains(strings.ToLower(t.PEADispatchNo), query)
	case ModeVehicle:
		plate := idx.VehiclePlateRaw(t.VehicleID)
		return strings.Contains(strings.ToLower(plate), query)
	case ModeDepot:
		return strings.Contains(strings.ToLower(t.DestinationDepotID), query)
	}
	return false
}

func (s *Service) project(mode Mode, t *dispatch.Task, idx *lookup.NameIndex) []string {
	oilCompany := idx.CompanyName(t.OilCompanyID)
	transporter := idx.TransporterName(t.TransporterID)
	plate := idx.VehiclePlate(t.VehicleID)
	dispatchDt := formatDateTime(t.DispatchDateTime)
	dropDt := lookup.Placeholder
	duration := lookup.Placeholder
	if t.DropOffDateTime != nil {
		dropDt = formatDateTime(*t.DropOffDateTime)
		duration = dispatch.FormatDuration(t.DropOffDateTime.Sub(t.DispatchDateTime))
	}

	switch mode {
	case ModeDispatch:
		return []string{t.PEADispatchNo, plate, oilCompany, transporter, dispatchDt, dropDt, duration}

	case ModeVehicle:
		dropLocation := t.DropOffLocation
		if dropLocation == "" {
			dropLocation = lookup.Placeholder
		}
		return []string{
			plate, transporter, oilCompany, t.PEADispatchNo,
			dispatchDt, t.DispatchLocation, dropLocation, dropDt, duration,
		}

	case ModeDepot:
		return []string{
			t.DestinationDepotID, idx.DepotName(t.DestinationDepotID),
			dropDt, plate, oilCompany, transporter, duration,
		}
	}
	return nil
}

// parseYmd parses a strict YYYY-MM-DD date. Anything else, including the
// empty string, means "no bound".
func parseYmd(input string) *time.Time {
	v := strings.TrimSpace(input)
	m := ymdPattern.FindStringSubmatch(v)
	if m == nil {
		return nil
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	dayOfMonth, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || dayOfMonth < 1 || dayOfMonth > 31 {
		return nil
	}

	d := time.Date(year, time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
	return &d
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
