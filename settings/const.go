package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 1024 * 1024
	ROUTE_SEGMENT_SIZE   = 10 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond

	// Number of waypoints published ahead of the vehicle.
	LOOKAHEAD_WPS = 50
	// Waypoints of padding in front of the stop line so the vehicle halts
	// short of it.
	STOP_LINE_MARGIN = 2
	// Comfortable deceleration bound, m/s^2.
	MAX_DECEL = 0.5
	// Computed speeds below this are snapped to a full stop, m/s.
	MIN_CREEP_SPEED = 2.0
	// Sentinel stop index meaning no active stop constraint.
	NO_STOP_INDEX = -1
)

// Per-index creep term that smooths the tail of the deceleration profile.
const CONSTANT_DECEL = 1.0 / float64(LOOKAHEAD_WPS)

// GetSegmentSize returns the msgq segment size for a service. The one-time
// route delivery is the only message that does not fit the default.
func GetSegmentSize(name string) int64 {
	if name == "routeTrack" {
		return ROUTE_SEGMENT_SIZE
	}
	return DEFAULT_SEGMENT_SIZE
}
