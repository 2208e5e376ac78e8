package dispatch

import "time"

// FuelType enumerates the products PEA tracks.
type FuelType string

const (
	FuelBenzine FuelType = "Benzine"
	FuelDiesel  FuelType = "Diesel"
	FuelJetFuel FuelType = "Jet Fuel"
)

// Status represents the monitoring state of a dispatch task. The stored
// value is assigned by the upstream tracking pipeline; DeriveStatus
// recomputes it from timestamps and GPS recency when a caller wants the
// wall-clock truth.
type Status string

const (
	StatusOnTransit     Status = "On transit"
	StatusDelivered     Status = "Delivered"
	StatusExceededETA   Status = "Exceeded ETA"
	StatusGPSOffline24h Status = "GPS Offline >24h"
	StatusStopped5h     Status = "Stopped >5h"
)

// MonitoredStatuses are the statuses shown on the live transit board:
// everything still on the road, healthy or not.
var MonitoredStatuses = []Status{
	StatusOnTransit,
	StatusExceededETA,
	StatusGPSOffline24h,
	StatusStopped5h,
}

// IsMonitored reports whether the task belongs on the transit board.
func (s Status) IsMonitored() bool {
	for _, m := range MonitoredStatuses {
		if s == m {
			return true
		}
	}
	return false
}

// GpsPoint is the last reported telemetry position for a task.
type GpsPoint struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// Task is a single truck-load fuel delivery assignment from an oil company
// through a transporter/vehicle to a destination depot. The PEA dispatch
// number is the external identity. References to other entities are plain
// ids with no referential-integrity guarantee; joins degrade to a
// placeholder when a reference does not resolve.
type Task struct {
	PEADispatchNo string `json:"pea_dispatch_no"`

	OilCompanyID  string `json:"oil_company_id"`
	TransporterID string `json:"transporter_id"`
	VehicleID     string `json:"vehicle_id"`

	DispatchDateTime time.Time `json:"dispatch_date_time"`
	DispatchLocation string    `json:"dispatch_location"`

	DestinationDepotID string    `json:"destination_depot_id"`
	ETADateTime        time.Time `json:"eta_date_time"`

	FuelType         FuelType `json:"fuel_type"`
	DispatchedLiters float64  `json:"dispatched_liters"`

	DropOffDateTime *time.Time `json:"drop_off_date_time,omitempty"`
	DropOffLocation string     `json:"drop_off_location,omitempty"`

	Status       Status    `json:"status"`
	LastGpsPoint *GpsPoint `json:"last_gps_point,omitempty"`
}

// RegionFuelSummary is the weekly regional dispatch volume in cubic meters.
// It is an independent upstream aggregate on its own reporting cadence and
// is deliberately not recomputed from tasks.
type RegionFuelSummary struct {
	Region    string  `json:"region"`
	WeekLabel string  `json:"week_label"`
	BenzineM3 float64 `json:"benzine_m3"`
	DieselM3  float64 `json:"diesel_m3"`
	JetFuelM3 float64 `json:"jet_fuel_m3"`
}
