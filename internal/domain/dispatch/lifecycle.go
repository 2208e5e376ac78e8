package dispatch

import (
	"fmt"

	appErrors "fuel-dispatch-monitor/pkg/errors"
)

// State machine for dispatch status transitions. Delivered is terminal;
// the three problem statuses can resolve back to On transit or straight
// to Delivered.
var validTransitions = map[Status][]Status{
	StatusOnTransit: {
		StatusDelivered,
		StatusExceededETA,
		StatusGPSOffline24h,
		StatusStopped5h,
	},
	StatusExceededETA: {
		StatusOnTransit,
		StatusDelivered,
		StatusGPSOffline24h,
		StatusStopped5h,
	},
	StatusGPSOffline24h: {
		StatusOnTransit,
		StatusDelivered,
		StatusExceededETA,
		StatusStopped5h,
	},
	StatusStopped5h: {
		StatusOnTransit,
		StatusDelivered,
		StatusExceededETA,
		StatusGPSOffline24h,
	},
	StatusDelivered: {
		// Terminal state - no transitions
	},
}

// ValidateStatusTransition checks if a status transition is allowed.
func ValidateStatusTransition(currentStatus, newStatus Status) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			nil,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		nil,
	)
}

// AllowedTransitions returns allowed next statuses.
func AllowedTransitions(currentStatus Status) []Status {
	return validTransitions[currentStatus]
}
