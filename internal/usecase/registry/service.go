package registry

import (
	"context"
	"strings"

	"fuel-dispatch-monitor/internal/domain/fleet"
	"fuel-dispatch-monitor/internal/logger"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements registry use cases over oil companies, transporters,
// vehicles and depots.
type Service struct {
	fleetRepo fleet.Repository
}

func NewService(fleetRepo fleet.Repository) *Service {
	return &Service{fleetRepo: fleetRepo}
}

func (s *Service) ListOilCompanies(ctx context.Context) ([]fleet.OilCompany, error) {
	return s.fleetRepo.ListOilCompanies(ctx)
}

func (s *Service) CreateOilCompany(ctx context.Context, req *CreateOilCompanyRequest) (*fleet.OilCompany, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	company := &fleet.OilCompany{
		ID:       orGeneratedID(req.ID),
		Name:     utils.SanitizeString(req.Name),
		Contacts: toContactInfo(&req.Contacts),
	}

	if err := s.fleetRepo.CreateOilCompany(ctx, company); err != nil {
		return nil, err
	}

	logger.Info("Oil company registered",
		zap.String("company_id", company.ID),
		zap.String("name", company.Name),
		zap.String("event", "oil_company_created"),
	)

	return company, nil
}

func (s *Service) ListTransporters(ctx context.Context) ([]fleet.Transporter, error) {
	return s.fleetRepo.ListTransporters(ctx)
}

func (s *Service) CreateTransporter(ctx context.Context, req *CreateTransporterRequest) (*fleet.Transporter, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	transporter := &fleet.Transporter{
		ID:       orGeneratedID(req.ID),
		Name:     utils.SanitizeString(req.Name),
		Contacts: toContactInfo(&req.Contacts),
		Location: toLocation(&req.Location),
		Vehicles: make([]fleet.Vehicle, 0, len(req.Vehicles)),
	}
	for i := range req.Vehicles {
		transporter.Vehicles = append(transporter.Vehicles, toVehicle(&req.Vehicles[i]))
	}

	if err := s.fleetRepo.CreateTransporter(ctx, transporter); err != nil {
		return nil, err
	}

	logger.Info("Transporter registered",
		zap.String("transporter_id", transporter.ID),
		zap.String("name", transporter.Name),
		zap.Int("vehicles", len(transporter.Vehicles)),
		zap.String("event", "transporter_created"),
	)

	return transporter, nil
}

func (s *Service) AddVehicle(ctx context.Context, transporterID string, req *CreateVehicleRequest) (*fleet.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	vehicle := toVehicle(req)
	if err := s.fleetRepo.AddVehicle(ctx, transporterID, &vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle added to transporter",
		zap.String("transporter_id", transporterID),
		zap.String("vehicle_id", vehicle.ID),
		zap.String("plate", vehicle.PlateRegNo),
		zap.String("event", "vehicle_added"),
	)

	return &vehicle, nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	return s.fleetRepo.ListVehicles(ctx)
}

func (s *Service) ListDepots(ctx context.Context) ([]fleet.Depot, error) {
	return s.fleetRepo.ListDepots(ctx)
}

func (s *Service) CreateDepot(ctx context.Context, req *CreateDepotRequest) (*fleet.Depot, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	depot := &fleet.Depot{
		ID:          orGeneratedID(req.ID),
		Name:        utils.SanitizeString(req.Name),
		Contacts:    toContactInfo(&req.Contacts),
		Location:    toLocation(&req.Location),
		MapLocation: req.MapLocation,
	}

	if err := s.fleetRepo.CreateDepot(ctx, depot); err != nil {
		return nil, err
	}

	logger.Info("Depot registered",
		zap.String("depot_id", depot.ID),
		zap.String("name", depot.Name),
		zap.String("event", "depot_created"),
	)

	return depot, nil
}

func orGeneratedID(id string) string {
	id = strings.TrimSpace(id)
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func toContactInfo(req *ContactInfoRequest) fleet.ContactInfo {
	return fleet.ContactInfo{
		Person1: utils.SanitizeString(req.Person1),
		Person2: utils.SanitizeString(req.Person2),
		Phone1:  utils.SanitizePhone(req.Phone1),
		Phone2:  utils.SanitizePhone(req.Phone2),
		Email1:  strings.ToLower(strings.TrimSpace(req.Email1)),
		Email2:  strings.ToLower(strings.TrimSpace(req.Email2)),
	}
}

func toLocation(req *LocationRequest) fleet.Location {
	return fleet.Location{
		Region:  utils.SanitizeString(req.Region),
		City:    utils.SanitizeString(req.City),
		Address: utils.SanitizeString(req.Address),
	}
}

func toVehicle(req *CreateVehicleRequest) fleet.Vehicle {
	return fleet.Vehicle{
		ID:                orGeneratedID(req.ID),
		PlateRegNo:        strings.TrimSpace(req.PlateRegNo),
		TrailerRegNo:      strings.TrimSpace(req.TrailerRegNo),
		Manufacturer:      utils.SanitizeString(req.Manufacturer),
		Model:             utils.SanitizeString(req.Model),
		YearOfManufacture: req.YearOfManufacture,
		SideNo:            strings.TrimSpace(req.SideNo),
		DriverName:        utils.SanitizeString(req.DriverName),
		DriverPhone:       utils.SanitizePhone(req.DriverPhone),
	}
}
