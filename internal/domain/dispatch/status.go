package dispatch

import (
	"fmt"
	"strings"
	"time"
)

const (
	// GPSOfflineThreshold is how long a vehicle may go without reporting
	// a position before it counts as offline.
	GPSOfflineThreshold = 24 * time.Hour

	// StoppedThreshold is how long a vehicle may sit without movement
	// before it counts as stopped.
	StoppedThreshold = 5 * time.Hour
)

// FormatDuration renders a duration as zero-suppressed day/hour/minute
// components ("2d 3h", "1h 30m", "45m"). Negative durations clamp to zero
// and an all-zero duration renders as "0m".
func FormatDuration(d time.Duration) string {
	totalMin := int(d / time.Minute)
	if totalMin < 0 {
		totalMin = 0
	}

	days := totalMin / (60 * 24)
	hours := (totalMin - days*60*24) / 60
	mins := totalMin - days*60*24 - hours*60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if len(parts) == 0 {
		return "0m"
	}

	return strings.Join(parts, " ")
}

// StatusDetail produces the short qualifier shown next to a task's status
// pill, recomputed from wall-clock time on every call. It returns "" when
// the status carries no extra detail, including the drift case where a task
// is marked Exceeded ETA but its ETA has not actually passed.
func StatusDetail(now time.Time, task *Task) string {
	switch task.Status {
	case StatusExceededETA:
		if now.After(task.ETADateTime) {
			return FormatDuration(now.Sub(task.ETADateTime)) + " late"
		}
		return ""

	case StatusGPSOffline24h:
		if task.LastGpsPoint != nil {
			return gpsDetail("Offline", now, task.LastGpsPoint)
		}

	case StatusStopped5h:
		if task.LastGpsPoint != nil {
			return gpsDetail("Stopped", now, task.LastGpsPoint)
		}
	}

	return ""
}

func gpsDetail(kind string, now time.Time, point *GpsPoint) string {
	hours := int(now.Sub(point.Timestamp) / time.Hour)
	return fmt.Sprintf("%s %dh • Last: %.3f, %.3f", kind, hours, point.Lat, point.Lng)
}

// DeriveStatus computes the status a task should carry given "now",
// independent of the stored field. The stored status is an upstream hint;
// callers that need the wall-clock truth use this. Precedence: a drop-off
// means delivered, a stale GPS point outranks everything still moving, a
// long stop outranks a missed ETA.
func DeriveStatus(now time.Time, task *Task) Status {
	if task.DropOffDateTime != nil {
		return StatusDelivered
	}

	if task.LastGpsPoint != nil {
		silent := now.Sub(task.LastGpsPoint.Timestamp)
		if silent > GPSOfflineThreshold {
			return StatusGPSOffline24h
		}
		if task.Status == StatusStopped5h && silent > StoppedThreshold {
			return StatusStopped5h
		}
	}

	if now.After(task.ETADateTime) {
		return StatusExceededETA
	}

	return StatusOnTransit
}
