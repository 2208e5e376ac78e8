package dispatchops

import (
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
)

// CreateTaskRequest is the "New dispatch" form. References are opaque ids;
// the registry does not enforce referential integrity, joins degrade to a
// placeholder instead.
type CreateTaskRequest struct {
	PEADispatchNo      string    `json:"pea_dispatch_no" validate:"required,min=3,max=32"`
	OilCompanyID       string    `json:"oil_company_id" validate:"required"`
	TransporterID      string    `json:"transporter_id" validate:"required"`
	VehicleID          string    `json:"vehicle_id" validate:"required"`
	DispatchDateTime   time.Time `json:"dispatch_date_time" validate:"required"`
	DispatchLocation   string    `json:"dispatch_location" validate:"required"`
	DestinationDepotID string    `json:"destination_depot_id" validate:"required"`
	ETADateTime        time.Time `json:"eta_date_time" validate:"required"`
	FuelType           string    `json:"fuel_type" validate:"required,oneof=Benzine Diesel 'Jet Fuel'"`
	DispatchedLiters   float64   `json:"dispatched_liters" validate:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// ListFilter narrows the dispatch list the way the fuel dispatch page
// does: free-text over the dispatch number and an optional status.
type ListFilter struct {
	Query  string `form:"q"`
	Status string `form:"status"`
}

// TaskResponse is a task with its recomputed qualifier and derived status
// alongside the stored one.
type TaskResponse struct {
	dispatch.Task
	StatusDetail  string          `json:"status_detail,omitempty"`
	DerivedStatus dispatch.Status `json:"derived_status"`
}
