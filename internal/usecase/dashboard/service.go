package dashboard

import (
	"context"
	"sort"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/usecase/lookup"
)

// Service derives the dashboard's KPI counters, chart series and enriched
// transit view from the task collection. Every operation is a total
// function over the repositories; nothing here can fail beyond the
// repositories themselves.
type Service struct {
	dispatchRepo dispatch.Repository
	fleetRepo    fleet.Repository
	now          func() time.Time
}

func NewService(dispatchRepo dispatch.Repository, fleetRepo fleet.Repository) *Service {
	return &Service{
		dispatchRepo: dispatchRepo,
		fleetRepo:    fleetRepo,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetKpis(ctx context.Context) (*Kpis, error) {
	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	kpis := &Kpis{}
	for _, t := range tasks {
		switch t.Status {
		case dispatch.StatusOnTransit:
			kpis.VehiclesOnTransit++
		case dispatch.StatusGPSOffline24h:
			kpis.GpsOfflineOver24h++
		case dispatch.StatusExceededETA:
			kpis.ExceededEta++
		case dispatch.StatusStopped5h:
			kpis.StoppedOver5h++
		}
	}

	return kpis, nil
}

func (s *Service) GetCharts(ctx context.Context) (*Charts, error) {
	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts := make(map[dispatch.Status]int)
	fuelTotals := make(map[dispatch.FuelType]float64)
	daily := make(map[string]float64)

	for _, t := range tasks {
		statusCounts[t.Status]++
		fuelTotals[t.FuelType] += t.DispatchedLiters
		// UTC calendar-day bucket
		day := t.DispatchDateTime.UTC().Format("2006-01-02")
		daily[day] += t.DispatchedLiters
	}

	charts := &Charts{
		StatusCounts: make([]StatusCount, 0, len(statusCounts)),
		FuelTotals:   make([]FuelTotal, 0, len(fuelTotals)),
		DailyLiters:  make([]DailyLiters, 0, len(daily)),
	}

	for status, count := range statusCounts {
		charts.StatusCounts = append(charts.StatusCounts, StatusCount{Status: status, Count: count})
	}
	sort.Slice(charts.StatusCounts, func(i, j int) bool {
		a, b := charts.StatusCounts[i], charts.StatusCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Status < b.Status
	})

	for fuelType, liters := range fuelTotals {
		charts.FuelTotals = append(charts.FuelTotals, FuelTotal{FuelType: fuelType, Liters: liters})
	}
	sort.Slice(charts.FuelTotals, func(i, j int) bool {
		a, b := charts.FuelTotals[i], charts.FuelTotals[j]
		if a.Liters != b.Liters {
			return a.Liters > b.Liters
		}
		return a.FuelType < b.FuelType
	})

	for day, liters := range daily {
		charts.DailyLiters = append(charts.DailyLiters, DailyLiters{Day: day, Liters: liters})
	}
	sort.Slice(charts.DailyLiters, func(i, j int) bool {
		return charts.DailyLiters[i].Day < charts.DailyLiters[j].Day
	})

	return charts, nil
}

func (s *Service) GetEntitySummary(ctx context.Context) (*EntitySummary, error) {
	companies, err := s.fleetRepo.ListOilCompanies(ctx)
	if err != nil {
		return nil, err
	}
	transporters, err := s.fleetRepo.ListTransporters(ctx)
	if err != nil {
		return nil, err
	}
	depots, err := s.fleetRepo.ListDepots(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.fleetRepo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	return &EntitySummary{
		OilCompanies: len(companies),
		Transporters: len(transporters),
		Depots:       len(depots),
		Vehicles:     len(vehicles),
	}, nil
}

// GetTransitBoard returns every monitored task enriched with display names
// and the recomputed status detail. Unresolved references degrade to the
// placeholder.
func (s *Service) GetTransitBoard(ctx context.Context) ([]TransitTask, error) {
	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := lookup.Build(ctx, s.fleetRepo)
	if err != nil {
		return nil, err
	}

	now := s.now()
	board := make([]TransitTask, 0, len(tasks))
	for _, t := range tasks {
		if !t.Status.IsMonitored() {
			continue
		}
		task := t
		board = append(board, TransitTask{
			Task:                 task,
			OilCompanyName:       idx.CompanyName(t.OilCompanyID),
			TransporterName:      idx.TransporterName(t.TransporterID),
			VehiclePlate:         idx.VehiclePlate(t.VehicleID),
			DestinationDepotName: idx.DepotName(t.DestinationDepotID),
			StatusDetail:         dispatch.StatusDetail(now, &task),
			DerivedStatus:        dispatch.DeriveStatus(now, &task),
		})
	}

	return board, nil
}

// GetRecentDispatches returns the newest dispatches by dispatch time.
func (s *Service) GetRecentDispatches(ctx context.Context, limit int) ([]RecentDispatch, error) {
	if limit <= 0 {
		limit = 6
	}

	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := lookup.Build(ctx, s.fleetRepo)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DispatchDateTime.After(tasks[j].DispatchDateTime)
	})
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}

	recent := make([]RecentDispatch, 0, len(tasks))
	for _, t := range tasks {
		recent = append(recent, RecentDispatch{
			PEADispatchNo: t.PEADispatchNo,
			OilCompany:    idx.CompanyName(t.OilCompanyID),
			Transporter:   idx.TransporterName(t.TransporterID),
			ETA:           t.ETADateTime.UTC().Format("2006-01-02 15:04:05"),
			Status:        t.Status,
		})
	}

	return recent, nil
}

func (s *Service) GetRegionalFuelSummary(ctx context.Context) ([]dispatch.RegionFuelSummary, error) {
	return s.dispatchRepo.ListRegionalFuelSummaries(ctx)
}
