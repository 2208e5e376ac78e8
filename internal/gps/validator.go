package gps

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError describes why a provider record was skipped.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// trackerTimeLayout is the provider's timestamp format.
const trackerTimeLayout = "2006-01-02 15:04:05"

// ValidateVehicle checks a single provider record against the schema the
// rest of the system relies on. Records without a position are allowed
// (vehicles that never reported), but a present position must be numeric
// and in range.
func ValidateVehicle(v *Vehicle) error {
	if strings.TrimSpace(v.IMEI) == "" {
		return &ValidationError{Field: "imei", Message: "imei is required"}
	}
	if strings.TrimSpace(v.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}

	if strings.TrimSpace(v.Lat) != "" || strings.TrimSpace(v.Lng) != "" {
		lat, lng, ok := v.Position()
		if !ok {
			return &ValidationError{Field: "lat", Message: "lat/lng must be numeric strings"}
		}
		if lat < -90 || lat > 90 {
			return &ValidationError{Field: "lat", Message: "latitude must be between -90 and 90"}
		}
		if lng < -180 || lng > 180 {
			return &ValidationError{Field: "lng", Message: "longitude must be between -180 and 180"}
		}
	}

	if strings.TrimSpace(v.DtTracker) != "" {
		if _, err := time.Parse(trackerTimeLayout, v.DtTracker); err != nil {
			return &ValidationError{Field: "dt_tracker", Message: "dt_tracker must be YYYY-MM-DD HH:MM:SS"}
		}
	}

	return nil
}
