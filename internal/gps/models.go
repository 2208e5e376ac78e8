package gps

import (
	"strconv"
	"strings"
)

// Vehicle is one tracked object as the provider reports it. The provider
// serialises every numeric field as a string; callers must go through the
// parse helpers before doing arithmetic.
type Vehicle struct {
	IMEI                string  `json:"imei"`
	Name                string  `json:"name"`
	Group               string  `json:"group,omitempty"`
	Odometer            string  `json:"odometer"`
	Engine              string  `json:"engine"`
	Status              string  `json:"status"`
	DtServer            string  `json:"dt_server"`
	DtTracker           string  `json:"dt_tracker"`
	Lat                 string  `json:"lat"`
	Lng                 string  `json:"lng"`
	Altitude            string  `json:"altitude"`
	Angle               string  `json:"angle"`
	Speed               string  `json:"speed"`
	Fuel1               string  `json:"fuel_1"`
	Fuel2               string  `json:"fuel_2"`
	FuelCANLevelPercent *string `json:"fuel_can_level_percent,omitempty"`
	FuelCANLevelValue   *string `json:"fuel_can_level_value,omitempty"`
}

// Position parses the string lat/lng pair. ok is false when either side is
// missing or not numeric.
func (v *Vehicle) Position() (lat, lng float64, ok bool) {
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(v.Lat), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(v.Lng), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// SpeedKmh parses the reported speed, 0 when unparseable.
func (v *Vehicle) SpeedKmh() float64 {
	s, err := strconv.ParseFloat(strings.TrimSpace(v.Speed), 64)
	if err != nil {
		return 0
	}
	return s
}

// Category buckets a vehicle's raw provider status for display: a moving
// vehicle outranks whatever free-text status the provider sent.
type Category string

const (
	CategoryMoving  Category = "moving"
	CategoryIdle    Category = "idle"
	CategoryStopped Category = "stopped"
	CategoryUnknown Category = "unknown"
)

// StatusCategory classifies the provider's free-text status plus speed.
func (v *Vehicle) StatusCategory() Category {
	status := strings.ToLower(v.Status)

	if strings.Contains(status, "moving") || v.SpeedKmh() > 0 {
		return CategoryMoving
	}
	if strings.Contains(status, "engine idle") {
		return CategoryIdle
	}
	if strings.Contains(status, "stopped") || strings.Contains(status, "offline") {
		return CategoryStopped
	}

	return CategoryUnknown
}

// MatchesQuery reports whether the free-text search hits any of the
// fields the tracking list searches over.
func (v *Vehicle) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	hay := strings.ToLower(strings.Join([]string{v.Name, v.IMEI, v.Group, v.Status, v.Engine}, " "))
	return strings.Contains(hay, q)
}
