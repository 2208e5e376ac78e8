package dashboard

import (
	"context"
	"testing"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/repository/memory"
	"fuel-dispatch-monitor/internal/usecase/lookup"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, fx memory.Fixtures) *Service {
	t.Helper()
	store := memory.NewStore(fx)
	return NewService(store.Dispatch(), store.Fleet()).WithClock(func() time.Time { return testNow })
}

func testFixtures() memory.Fixtures {
	dropOff := testNow.Add(-2 * time.Hour)
	return memory.Fixtures{
		OilCompanies: []fleet.OilCompany{
			{ID: "OC1", Name: "Horizon Petroleum"},
			{ID: "OC2", Name: "Dallol Energy"},
		},
		Transporters: []fleet.Transporter{
			{
				ID:   "TR1",
				Name: "Selam Freight",
				Vehicles: []fleet.Vehicle{
					{ID: "VH1", PlateRegNo: "3-11111 ET"},
					{ID: "VH2", PlateRegNo: "3-22222 ET"},
				},
			},
			{
				ID:   "TR2",
				Name: "Walia Transport",
				Vehicles: []fleet.Vehicle{
					// duplicate id across transporters, first registration wins
					{ID: "VH1", PlateRegNo: "3-99999 ET"},
					{ID: "VH3", PlateRegNo: "3-33333 ET"},
				},
			},
		},
		Depots: []fleet.Depot{
			{ID: "DP1", Name: "Awash Depot"},
		},
		DispatchTasks: []dispatch.Task{
			{
				PEADispatchNo:      "PEA100",
				OilCompanyID:       "OC1",
				TransporterID:      "TR1",
				VehicleID:          "VH1",
				DestinationDepotID: "DP1",
				DispatchDateTime:   testNow.Add(-4 * time.Hour),
				ETADateTime:        testNow.Add(4 * time.Hour),
				FuelType:           dispatch.FuelDiesel,
				DispatchedLiters:   20000,
				Status:             dispatch.StatusOnTransit,
			},
			{
				PEADispatchNo:      "PEA101",
				OilCompanyID:       "OC2",
				TransporterID:      "missing-transporter",
				VehicleID:          "VH2",
				DestinationDepotID: "DP1",
				DispatchDateTime:   testNow.Add(-26 * time.Hour),
				ETADateTime:        testNow.Add(-3 * time.Hour),
				FuelType:           dispatch.FuelBenzine,
				DispatchedLiters:   15000,
				Status:             dispatch.StatusExceededETA,
			},
			{
				PEADispatchNo:      "PEA102",
				OilCompanyID:       "OC1",
				TransporterID:      "TR2",
				VehicleID:          "VH3",
				DestinationDepotID: "DP1",
				DispatchDateTime:   testNow.Add(-30 * time.Hour),
				ETADateTime:        testNow.Add(-20 * time.Hour),
				FuelType:           dispatch.FuelDiesel,
				DispatchedLiters:   18000,
				Status:             dispatch.StatusDelivered,
				DropOffDateTime:    &dropOff,
			},
		},
		RegionalFuelSummary: []dispatch.RegionFuelSummary{
			{Region: "Oromia", WeekLabel: "W35", BenzineM3: 480, DieselM3: 1200, JetFuelM3: 0},
		},
	}
}

func TestGetKpis(t *testing.T) {
	service := newTestService(t, testFixtures())

	kpis, err := service.GetKpis(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, kpis.VehiclesOnTransit)
	require.Equal(t, 1, kpis.ExceededEta)
	require.Equal(t, 0, kpis.GpsOfflineOver24h)
	require.Equal(t, 0, kpis.StoppedOver5h)
}

func TestGetCharts(t *testing.T) {
	service := newTestService(t, testFixtures())

	charts, err := service.GetCharts(context.Background())
	require.NoError(t, err)

	// every task counted exactly once
	total := 0
	for _, sc := range charts.StatusCounts {
		total += sc.Count
	}
	require.Equal(t, 3, total)

	// fuel totals conserve dispatched liters and sort descending
	require.Equal(t, []FuelTotal{
		{FuelType: dispatch.FuelDiesel, Liters: 38000},
		{FuelType: dispatch.FuelBenzine, Liters: 15000},
	}, charts.FuelTotals)

	// daily series bucketed by UTC day, ascending
	require.Len(t, charts.DailyLiters, 2)
	require.Equal(t, "2026-08-27", charts.DailyLiters[0].Day)
	require.Equal(t, float64(33000), charts.DailyLiters[0].Liters)
	require.Equal(t, "2026-08-28", charts.DailyLiters[1].Day)
	require.Equal(t, float64(20000), charts.DailyLiters[1].Liters)
}

func TestGetEntitySummary(t *testing.T) {
	service := newTestService(t, testFixtures())

	summary, err := service.GetEntitySummary(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, summary.OilCompanies)
	require.Equal(t, 2, summary.Transporters)
	require.Equal(t, 1, summary.Depots)
	// VH1 registered twice counts once
	require.Equal(t, 3, summary.Vehicles)
}

func TestGetTransitBoard(t *testing.T) {
	service := newTestService(t, testFixtures())

	board, err := service.GetTransitBoard(context.Background())
	require.NoError(t, err)

	// delivered tasks stay off the board
	require.Len(t, board, 2)

	byNo := make(map[string]TransitTask, len(board))
	for _, row := range board {
		byNo[row.PEADispatchNo] = row
	}

	healthy := byNo["PEA100"]
	require.Equal(t, "Horizon Petroleum", healthy.OilCompanyName)
	require.Equal(t, "Selam Freight", healthy.TransporterName)
	require.Equal(t, "3-11111 ET", healthy.VehiclePlate)
	require.Equal(t, "Awash Depot", healthy.DestinationDepotName)
	require.Equal(t, dispatch.StatusOnTransit, healthy.DerivedStatus)
	require.Equal(t, "", healthy.StatusDetail)

	late := byNo["PEA101"]
	require.Equal(t, lookup.Placeholder, late.TransporterName)
	require.Equal(t, "3h late", late.StatusDetail)
	require.Equal(t, dispatch.StatusExceededETA, late.DerivedStatus)
}

func TestGetRecentDispatches(t *testing.T) {
	service := newTestService(t, testFixtures())

	recent, err := service.GetRecentDispatches(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, recent, 2)
	require.Equal(t, "PEA100", recent[0].PEADispatchNo)
	require.Equal(t, "PEA101", recent[1].PEADispatchNo)
	require.Equal(t, testNow.Add(4*time.Hour).UTC().Format("2006-01-02 15:04:05"), recent[0].ETA)

	// non-positive limit falls back to the default and returns everything here
	all, err := service.GetRecentDispatches(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestGetRegionalFuelSummary(t *testing.T) {
	service := newTestService(t, testFixtures())

	rows, err := service.GetRegionalFuelSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Oromia", rows[0].Region)
}
