package fleet

import "context"

// Repository provides access to the registry of companies, transporters,
// vehicles and depots. Implementations must return copies safe for the
// caller to hold across requests.
type Repository interface {
	ListOilCompanies(ctx context.Context) ([]OilCompany, error)
	GetOilCompany(ctx context.Context, id string) (*OilCompany, error)
	CreateOilCompany(ctx context.Context, company *OilCompany) error

	ListTransporters(ctx context.Context) ([]Transporter, error)
	GetTransporter(ctx context.Context, id string) (*Transporter, error)
	CreateTransporter(ctx context.Context, transporter *Transporter) error
	AddVehicle(ctx context.Context, transporterID string, vehicle *Vehicle) error

	// ListVehicles flattens vehicles across all transporters.
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*Vehicle, error)

	ListDepots(ctx context.Context) ([]Depot, error)
	GetDepot(ctx context.Context, id string) (*Depot, error)
	CreateDepot(ctx context.Context, depot *Depot) error
}
