package main

import (
	m "waypointd/math"

	"waypointd/track"
)

// ClosestForwardIndex resolves a pose to the nearest route index that is at
// or ahead of the vehicle. The spatial index alone can return a point the
// vehicle has already driven past on a one-dimensional route, so the result
// is checked against the track heading at that point: if the pose projects
// past the nearest point along the segment leading into it, the index is
// advanced by one, wrapping at the end of the route.
func ClosestForwardIndex(trk *track.Track, pose m.Point) int {
	closest := trk.Nearest(pose.X, pose.Y)

	prev := (closest - 1 + trk.Len()) % trk.Len()
	if m.HeadingDot(trk.At(prev).Pos, trk.At(closest).Pos, pose) > 0 {
		closest = (closest + 1) % trk.Len()
	}
	return closest
}
