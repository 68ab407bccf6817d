package main

import (
	"math"

	m "waypointd/math"
	ms "waypointd/settings"
	"waypointd/track"
)

// TrajectoryPoint is one published waypoint with its target speed.
type TrajectoryPoint struct {
	Pos   m.Point
	Speed float64
}

// BuildTrajectory extracts the lookahead window starting at closestIdx. The
// window is a linear slice of the route, truncated at the route tail rather
// than wrapped. With no stop constraint inside the window the nominal route
// speeds pass through unchanged; otherwise every speed is replaced by the
// deceleration profile.
func BuildTrajectory(trk *track.Track, closestIdx int, stopIdx int) []TrajectoryPoint {
	farthestIdx := closestIdx + ms.LOOKAHEAD_WPS
	window := trk.Slice(closestIdx, farthestIdx)

	if stopIdx == ms.NO_STOP_INDEX || stopIdx >= farthestIdx {
		points := make([]TrajectoryPoint, len(window))
		for i, wp := range window {
			points[i] = TrajectoryPoint{Pos: wp.Pos, Speed: wp.Speed}
		}
		return points
	}

	return decelerate(trk, window, closestIdx, stopIdx)
}

// decelerate replaces the window's speeds with a profile that reaches zero
// STOP_LINE_MARGIN waypoints before the stop index. Each point's speed comes
// from the remaining path distance to the stop offset under a bounded
// deceleration, v = sqrt(2*a*d), plus a small per-index creep term so the
// profile does not step discontinuously to zero at the stop offset.
func decelerate(trk *track.Track, window []track.Waypoint, closestIdx int, stopIdx int) []TrajectoryPoint {
	stopOffset := stopIdx - closestIdx - ms.STOP_LINE_MARGIN
	if stopOffset < 0 {
		stopOffset = 0
	}

	points := make([]TrajectoryPoint, len(window))
	for i, wp := range window {
		dist := trk.PathDistance(closestIdx+i, closestIdx+stopOffset)
		vel := math.Sqrt(2*ms.MAX_DECEL*dist) + float64(i)*ms.CONSTANT_DECEL
		if vel < ms.MIN_CREEP_SPEED {
			vel = 0
		}

		points[i] = TrajectoryPoint{Pos: wp.Pos, Speed: math.Min(vel, wp.Speed)}
	}
	return points
}
