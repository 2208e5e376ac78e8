package fleet

// ContactInfo holds up to two contact persons for an entity. All fields are
// optional; the regulator's registry is often incomplete.
type ContactInfo struct {
	Person1 string `json:"person1,omitempty"`
	Person2 string `json:"person2,omitempty"`
	Phone1  string `json:"phone1,omitempty"`
	Phone2  string `json:"phone2,omitempty"`
	Email1  string `json:"email1,omitempty"`
	Email2  string `json:"email2,omitempty"`
}

type Location struct {
	Region  string `json:"region"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OilCompany is a licensed fuel marketer that originates dispatches.
type OilCompany struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Contacts ContactInfo `json:"contacts"`
}

// Vehicle is a fuel truck. A vehicle belongs to exactly one transporter.
type Vehicle struct {
	ID                string `json:"id"`
	PlateRegNo        string `json:"plate_reg_no"`
	TrailerRegNo      string `json:"trailer_reg_no"`
	Manufacturer      string `json:"manufacturer"`
	Model             string `json:"model"`
	YearOfManufacture int    `json:"year_of_manufacture"`
	SideNo            string `json:"side_no"`
	DriverName        string `json:"driver_name"`
	DriverPhone       string `json:"driver_phone"`
}

// Transporter is a haulage company. Its vehicles are owned records,
// not references.
type Transporter struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Contacts ContactInfo `json:"contacts"`
	Location Location    `json:"location"`
	Vehicles []Vehicle   `json:"vehicles"`
}

// Depot is a fuel receiving site, the destination of a dispatch task.
type Depot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Contacts    ContactInfo `json:"contacts"`
	Location    Location    `json:"location"`
	MapLocation *LatLng     `json:"map_location,omitempty"`
}
