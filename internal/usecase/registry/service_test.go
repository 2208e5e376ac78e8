package registry

import (
	"context"
	"os"
	"testing"

	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/logger"
	"fuel-dispatch-monitor/internal/repository/memory"
	appErrors "fuel-dispatch-monitor/pkg/errors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestService(t *testing.T, fx memory.Fixtures) *Service {
	t.Helper()
	return NewService(memory.NewStore(fx).Fleet())
}

func TestCreateOilCompany(t *testing.T) {
	service := newTestService(t, memory.Fixtures{})

	company, err := service.CreateOilCompany(context.Background(), &CreateOilCompanyRequest{
		Name: "  Horizon Petroleum  ",
		Contacts: ContactInfoRequest{
			Person1: "Abebe Bekele",
			Email1:  "ABEBE@horizon.example",
			Phone1:  "+251 911 000000",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, company.ID)
	require.Equal(t, "Horizon Petroleum", company.Name)
	require.Equal(t, "abebe@horizon.example", company.Contacts.Email1)

	companies, err := service.ListOilCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 1)
}

func TestCreateOilCompanyValidation(t *testing.T) {
	service := newTestService(t, memory.Fixtures{})

	_, err := service.CreateOilCompany(context.Background(), &CreateOilCompanyRequest{Name: "X"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreateTransporterWithVehicles(t *testing.T) {
	service := newTestService(t, memory.Fixtures{})

	transporter, err := service.CreateTransporter(context.Background(), &CreateTransporterRequest{
		ID:   "TR1",
		Name: "Selam Freight",
		Location: LocationRequest{
			Region: "Oromia",
			City:   "Adama",
		},
		Vehicles: []CreateVehicleRequest{
			{ID: "VH1", PlateRegNo: "3-11111 ET", DriverName: "Kebede Worku"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "TR1", transporter.ID)
	require.Len(t, transporter.Vehicles, 1)

	vehicles, err := service.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Equal(t, "3-11111 ET", vehicles[0].PlateRegNo)
}

func TestAddVehicle(t *testing.T) {
	service := newTestService(t, memory.Fixtures{
		Transporters: []fleet.Transporter{{ID: "TR1", Name: "Selam Freight"}},
	})

	vehicle, err := service.AddVehicle(context.Background(), "TR1", &CreateVehicleRequest{
		PlateRegNo: "3-22222 ET",
	})
	require.NoError(t, err)
	require.NotEmpty(t, vehicle.ID)

	vehicles, err := service.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
}

func TestAddVehicleUnknownTransporter(t *testing.T) {
	service := newTestService(t, memory.Fixtures{})

	_, err := service.AddVehicle(context.Background(), "TR9", &CreateVehicleRequest{
		PlateRegNo: "3-22222 ET",
	})
	require.ErrorIs(t, err, appErrors.ErrTransporterNotFound)
}

func TestCreateDepot(t *testing.T) {
	service := newTestService(t, memory.Fixtures{})

	depot, err := service.CreateDepot(context.Background(), &CreateDepotRequest{
		ID:   "DP1",
		Name: "Awash Depot",
		Location: LocationRequest{
			Region: "Afar",
			City:   "Awash",
		},
		MapLocation: &fleet.LatLng{Lat: 8.9889, Lng: 40.1653},
	})
	require.NoError(t, err)
	require.NotNil(t, depot.MapLocation)

	depots, err := service.ListDepots(context.Background())
	require.NoError(t, err)
	require.Len(t, depots, 1)
}
