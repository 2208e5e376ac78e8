package dashboard

import "fuel-dispatch-monitor/internal/domain/dispatch"

// Kpis are the four tracked status counters shown as dashboard tiles.
type Kpis struct {
	VehiclesOnTransit int `json:"vehicles_on_transit"`
	GpsOfflineOver24h int `json:"gps_offline_over_24h"`
	ExceededEta       int `json:"exceeded_eta"`
	StoppedOver5h     int `json:"stopped_over_5h"`
}

type StatusCount struct {
	Status dispatch.Status `json:"status"`
	Count  int             `json:"count"`
}

type FuelTotal struct {
	FuelType dispatch.FuelType `json:"fuel_type"`
	Liters   float64           `json:"liters"`
}

type DailyLiters struct {
	Day    string  `json:"day"`
	Liters float64 `json:"liters"`
}

// Charts are the chart-ready series derived from the full task collection.
type Charts struct {
	StatusCounts []StatusCount `json:"status_counts"`
	FuelTotals   []FuelTotal   `json:"fuel_totals"`
	DailyLiters  []DailyLiters `json:"daily_liters"`
}

// EntitySummary counts the registry, vehicles de-duplicated by id.
type EntitySummary struct {
	OilCompanies int `json:"oil_companies"`
	Transporters int `json:"transporters"`
	Depots       int `json:"depots"`
	Vehicles     int `json:"vehicles"`
}

// TransitTask is a dispatch task enriched with display names joined in by
// id. Unresolved references carry the placeholder rather than failing.
type TransitTask struct {
	dispatch.Task
	OilCompanyName       string          `json:"oil_company_name"`
	TransporterName      string          `json:"transporter_name"`
	VehiclePlate         string          `json:"vehicle_plate"`
	DestinationDepotName string          `json:"destination_depot_name"`
	StatusDetail         string          `json:"status_detail,omitempty"`
	DerivedStatus        dispatch.Status `json:"derived_status"`
}

// RecentDispatch is one row of the dashboard's recent-dispatch table.
type RecentDispatch struct {
	PEADispatchNo string          `json:"pea_dispatch_no"`
	OilCompany    string          `json:"oil_company"`
	Transporter   string          `json:"transporter"`
	ETA           string          `json:"eta"`
	Status        dispatch.Status `json:"status"`
}
