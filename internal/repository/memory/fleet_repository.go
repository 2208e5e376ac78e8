package memory

import (
	"context"

	"fuel-dispatch-monitor/internal/domain/fleet"
	appErrors "fuel-dispatch-monitor/pkg/errors"
)

type fleetRepository struct {
	store *Store
}

func (r *fleetRepository) ListOilCompanies(_ context.Context) ([]fleet.OilCompany, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]fleet.OilCompany(nil), r.store.oilCompanies...), nil
}

func (r *fleetRepository) GetOilCompany(_ context.Context, id string) (*fleet.OilCompany, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.companiesByID[id]
	if !ok {
		return nil, appErrors.ErrOilCompanyNotFound
	}
	company := r.store.oilCompanies[i]
	return &company, nil
}

func (r *fleetRepository) CreateOilCompany(_ context.Context, company *fleet.OilCompany) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.oilCompanies = append(r.store.oilCompanies, *company)
	r.store.reindex()
	return nil
}

func (r *fleetRepository) ListTransporters(_ context.Context) ([]fleet.Transporter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]fleet.Transporter(nil), r.store.transporters...), nil
}

func (r *fleetRepository) GetTransporter(_ context.Context, id string) (*fleet.Transporter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.transportersByID[id]
	if !ok {
		return nil, appErrors.ErrTransporterNotFound
	}
	transporter := r.store.transporters[i]
	transporter.Vehicles = append([]fleet.Vehicle(nil), transporter.Vehicles...)
	return &transporter, nil
}

func (r *fleetRepository) CreateTransporter(_ context.Context, transporter *fleet.Transporter) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transporters = append(r.store.transporters, *transporter)
	r.store.reindex()
	return nil
}

func (r *fleetRepository) AddVehicle(_ context.Context, transporterID string, vehicle *fleet.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.transportersByID[transporterID]
	if !ok {
		return appErrors.ErrTransporterNotFound
	}
	r.store.transporters[i].Vehicles = append(r.store.transporters[i].Vehicles, *vehicle)
	r.store.reindex()
	return nil
}

func (r *fleetRepository) ListVehicles(_ context.Context) ([]fleet.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var vehicles []fleet.Vehicle
	seen := make(map[string]bool)
	for _, t := range r.store.transporters {
		for _, v := range t.Vehicles {
			if seen[v.ID] {
				continue
			}
			seen[v.ID] = true
			vehicles = append(vehicles, v)
		}
	}
	return vehicles, nil
}

func (r *fleetRepository) GetVehicle(_ context.Context, id string) (*fleet.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	v, ok := r.store.vehiclesByID[id]
	if !ok {
		return nil, appErrors.ErrVehicleNotFound
	}
	return &v, nil
}

func (r *fleetRepository) ListDepots(_ context.Context) ([]fleet.Depot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]fleet.Depot(nil), r.store.depots...), nil
}

func (r *fleetRepository) GetDepot(_ context.Context, id string) (*fleet.Depot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.depotsByID[id]
	if !ok {
		return nil, appErrors.ErrDepotNotFound
	}
	depot := r.store.depots[i]
	return &depot, nil
}

func (r *fleetRepository) CreateDepot(_ context.Context, depot *fleet.Depot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.depots = append(r.store.depots, *depot)
	r.store.reindex()
	return nil
}
