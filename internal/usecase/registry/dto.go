package registry

import "fuel-dispatch-monitor/internal/domain/fleet"

type ContactInfoRequest struct {
	Person1 string `json:"person1" validate:"omitempty,max=120"`
	Person2 string `json:"person2" validate:"omitempty,max=120"`
	Phone1  string `json:"phone1" validate:"omitempty,max=32"`
	Phone2  string `json:"phone2" validate:"omitempty,max=32"`
	Email1  string `json:"email1" validate:"omitempty,email"`
	Email2  string `json:"email2" validate:"omitempty,email"`
}

type LocationRequest struct {
	Region  string `json:"region" validate:"required,max=80"`
	City    string `json:"city" validate:"required,max=80"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

type CreateOilCompanyRequest struct {
	ID       string             `json:"id" validate:"omitempty,max=32"`
	Name     string             `json:"name" validate:"required,min=2,max=120"`
	Contacts ContactInfoRequest `json:"contacts"`
}

type CreateVehicleRequest struct {
	ID                string `json:"id" validate:"omitempty,max=32"`
	PlateRegNo        string `json:"plate_reg_no" validate:"required,max=20"`
	TrailerRegNo      string `json:"trailer_reg_no" validate:"omitempty,max=20"`
	Manufacturer      string `json:"manufacturer" validate:"omitempty,max=60"`
	Model             string `json:"model" validate:"omitempty,max=60"`
	YearOfManufacture int    `json:"year_of_manufacture" validate:"omitempty,min=1950,max=2100"`
	SideNo            string `json:"side_no" validate:"omitempty,max=20"`
	DriverName        string `json:"driver_name" validate:"omitempty,max=120"`
	DriverPhone       string `json:"driver_phone" validate:"omitempty,max=32"`
}

type CreateTransporterRequest struct {
	ID       string                 `json:"id" validate:"omitempty,max=32"`
	Name     string                 `json:"name" validate:"required,min=2,max=120"`
	Contacts ContactInfoRequest     `json:"contacts"`
	Location LocationRequest        `json:"location"`
	Vehicles []CreateVehicleRequest `json:"vehicles" validate:"omitempty,dive"`
}

type CreateDepotRequest struct {
	ID          string             `json:"id" validate:"omitempty,max=32"`
	Name        string             `json:"name" validate:"required,min=2,max=120"`
	Contacts    ContactInfoRequest `json:"contacts"`
	Location    LocationRequest    `json:"location"`
	MapLocation *fleet.LatLng      `json:"map_location" validate:"omitempty"`
}
