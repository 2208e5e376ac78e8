// Package lookup builds the id-keyed display-name indexes shared by the
// dashboard aggregation and the report engine, so there is exactly one
// join implementation. Misses resolve to the placeholder, never an error.
package lookup

import (
	"context"

	"fuel-dispatch-monitor/internal/domain/fleet"
)

// Placeholder is the display value for an unresolved reference.
const Placeholder = "—"

// NameIndex resolves entity ids to display values.
type NameIndex struct {
	companies    map[string]fleet.OilCompany
	transporters map[string]fleet.Transporter
	depots       map[string]fleet.Depot
	vehicles     map[string]fleet.Vehicle
}

// Build snapshots the registry into id-keyed maps. Vehicle ids
// de-duplicate first-seen-wins across transporters.
func Build(ctx context.Context, repo fleet.Repository) (*NameIndex, error) {
	companies, err := repo.ListOilCompanies(ctx)
	if err != nil {
		return nil, err
	}
	transporters, err := repo.ListTransporters(ctx)
	if err != nil {
		return nil, err
	}
	depots, err := repo.ListDepots(ctx)
	if err != nil {
		return nil, err
	}

	idx := &NameIndex{
		companies:    make(map[string]fleet.OilCompany, len(companies)),
		transporters: make(map[string]fleet.Transporter, len(transporters)),
		depots:       make(map[string]fleet.Depot, len(depots)),
		vehicles:     make(map[string]fleet.Vehicle),
	}

	for _, c := range companies {
		idx.companies[c.ID] = c
	}
	for _, t := range transporters {
		idx.transporters[t.ID] = t
		for _, v := range t.Vehicles {
			if _, ok := idx.vehicles[v.ID]; !ok {
				idx.vehicles[v.ID] = v
			}
		}
	}
	for _, d := range depots {
		idx.depots[d.ID] = d
	}

	return idx, nil
}

func (idx *NameIndex) CompanyName(id string) string {
	if c, ok := idx.companies[id]; ok {
		return c.Name
	}
	return Placeholder
}

func (idx *NameIndex) TransporterName(id string) string {
	if t, ok := idx.transporters[id]; ok {
		return t.Name
	}
	return Placeholder
}

func (idx *NameIndex) DepotName(id string) string {
	if d, ok := idx.depots[id]; ok {
		return d.Name
	}
	return Placeholder
}

func (idx *NameIndex) VehiclePlate(id string) string {
	if v, ok := idx.vehicles[id]; ok {
		return v.PlateRegNo
	}
	return Placeholder
}

// VehiclePlateRaw returns the plate without placeholder substitution, for
// match predicates that need the empty string on a miss.
func (idx *NameIndex) VehiclePlateRaw(id string) string {
	if v, ok := idx.vehicles[id]; ok {
		return v.PlateRegNo
	}
	return ""
}
