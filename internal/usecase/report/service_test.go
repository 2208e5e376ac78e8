package report

import (
	"context"
	"testing"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/repository/memory"
	"fuel-dispatch-monitor/internal/usecase/lookup"
	appErrors "fuel-dispatch-monitor/pkg/errors"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dispatchDt := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	dropOff := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)

	store := memory.NewStore(memory.Fixtures{
		OilCompanies: []fleet.OilCompany{
			{ID: "OC1", Name: "Horizon Petroleum"},
		},
		Transporters: []fleet.Transporter{
			{
				ID:   "TR1",
				Name: "Selam Freight",
				Vehicles: []fleet.Vehicle{
					{ID: "VH1", PlateRegNo: "3-11111 ET"},
				},
			},
		},
		Depots: []fleet.Depot{
			{ID: "DP1", Name: "Awash Depot"},
		},
		DispatchTasks: []dispatch.Task{
			{
				PEADispatchNo:      "PEA200",
				OilCompanyID:       "OC1",
				TransporterID:      "TR1",
				VehicleID:          "VH1",
				DestinationDepotID: "DP1",
				DispatchDateTime:   dispatchDt,
				DispatchLocation:   "Addis Ababa",
				DropOffDateTime:    &dropOff,
				DropOffLocation:    "Awash",
				FuelType:           dispatch.FuelDiesel,
				DispatchedLiters:   20000,
				Status:             dispatch.StatusDelivered,
			},
			{
				PEADispatchNo:      "PEA201",
				OilCompanyID:       "missing",
				TransporterID:      "missing",
				VehicleID:          "missing",
				DestinationDepotID: "DP9",
				DispatchDateTime:   time.Date(2026, 8, 25, 23, 59, 59, 0, time.UTC),
				DispatchLocation:   "Addis Ababa",
				FuelType:           dispatch.FuelBenzine,
				DispatchedLiters:   15000,
				Status:             dispatch.StatusOnTransit,
			},
		},
	})

	return NewService(store.Dispatch(), store.Fleet())
}

func TestRunRejectsUnknownMode(t *testing.T) {
	service := newTestService(t)

	_, err := service.Run(context.Background(), &Request{Mode: "fleet"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "INVALID_MODE", appErr.Code)
}

func TestRunDispatchMode(t *testing.T) {
	service := newTestService(t)

	result, err := service.Run(context.Background(), &Request{Mode: ModeDispatch})
	require.NoError(t, err)
	require.Equal(t, dispatchColumns, result.Columns)
	require.Len(t, result.Rows, 2)

	delivered := result.Rows[0]
	require.Equal(t, []string{
		"PEA200", "3-11111 ET", "Horizon Petroleum", "Selam Freight",
		"2026-08-20 09:30:00", "2026-08-20 15:30:00", "6h",
	}, delivered.Cells)
	require.Equal(t, dispatch.StatusDelivered, delivered.Status)

	// undelivered task degrades drop-off and duration to the placeholder,
	// and unresolved references do the same
	open := result.Rows[1]
	require.Equal(t, lookup.Placeholder, open.Cells[1])
	require.Equal(t, lookup.Placeholder, open.Cells[2])
	require.Equal(t, lookup.Placeholder, open.Cells[5])
	require.Equal(t, lookup.Placeholder, open.Cells[6])
}

func TestRunVehicleMode(t *testing.T) {
	service := newTestService(t)

	result, err := service.Run(context.Background(), &Request{Mode: ModeVehicle, Query: "3-11111"})
	require.NoError(t, err)
	require.Equal(t, vehicleColumns, result.Columns)
	require.Len(t, result.Rows, 1)
	require.Equal(t, []string{
		"3-11111 ET", "Selam Freight", "Horizon Petroleum", "PEA200",
		"2026-08-20 09:30:00", "Addis Ababa", "Awash", "2026-08-20 15:30:00", "6h",
	}, result.Rows[0].Cells)
}

func TestRunVehicleModeQueryIgnoresPlaceholder(t *testing.T) {
	service := newTestService(t)

	// the placeholder must not make unresolved vehicles match a dash query
	result, err := service.Run(context.Background(), &Request{Mode: ModeVehicle, Query: "—"})
	require.NoError(t, err)
	require.Empty(t, result.Rows)
}

func TestRunDepotMode(t *testing.T) {
	service := newTestService(t)

	result, err := service.Run(context.Background(), &Request{Mode: ModeDepot, Query: "dp1"})
	require.NoError(t, err)
	require.Equal(t, depotColumns, result.Columns)
	require.Len(t, result.Rows, 1)
	require.Equal(t, "DP1", result.Rows[0].Cells[0])
	require.Equal(t, "Awash Depot", result.Rows[0].Cells[1])
}

func TestRunDateRange(t *testing.T) {
	service := newTestService(t)

	t.Run("single-day range includes the whole end day", func(t *testing.T) {
		result, err := service.Run(context.Background(), &Request{
			Mode: ModeDispatch,
			From: "2026-08-25",
			To:   "2026-08-25",
		})
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		require.Equal(t, "PEA201", result.Rows[0].Cells[0])
	})

	t.Run("from bound excludes earlier dispatches", func(t *testing.T) {
		result, err := service.Run(context.Background(), &Request{
			Mode: ModeDispatch,
			From: "2026-08-21",
		})
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
	})

	t.Run("malformed dates widen to unbounded", func(t *testing.T) {
		result, err := service.Run(context.Background(), &Request{
			Mode: ModeDispatch,
			From: "21/08/2026",
			To:   "2026-13-40",
		})
		require.NoError(t, err)
		require.Len(t, result.Rows, 2)
	})
}

func TestParseYmd(t *testing.T) {
	require.Nil(t, parseYmd(""))
	require.Nil(t, parseYmd("2026-8-2"))
	require.Nil(t, parseYmd("2026-00-10"))
	require.Nil(t, parseYmd("2026-12-32"))

	d := parseYmd(" 2026-08-25 ")
	require.NotNil(t, d)
	require.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), *d)
}
