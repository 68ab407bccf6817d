// Package track holds the fixed route the vehicle follows: an ordered list
// of waypoints with nominal speeds, a nearest-neighbor index over their
// positions, and loaders for the supported route sources.
package track

import (
	"github.com/pkg/errors"

	m "waypointd/math"
)

// Waypoint is a single route point with its nominal speed in m/s.
type Waypoint struct {
	Pos   m.Point
	Speed float64
}

// Track is an ordered route of waypoints. It is built once and never
// mutated, so it can be shared across goroutines freely.
type Track struct {
	waypoints []Waypoint
	prefix    m.PrefixDistances
	index     *SpatialIndex
}

// New validates the waypoints and builds the prefix-distance table and the
// spatial index. A route needs at least two points to define a direction of
// travel.
func New(waypoints []Waypoint) (*Track, error) {
	if len(waypoints) < 2 {
		return nil, errors.Errorf("route needs at least 2 waypoints, got %d", len(waypoints))
	}
	for i, wp := range waypoints {
		if wp.Speed < 0 {
			return nil, errors.Errorf("waypoint %d has negative speed %f", i, wp.Speed)
		}
	}

	points := make([]m.Point, len(waypoints))
	for i, wp := range waypoints {
		points[i] = wp.Pos
	}

	return &Track{
		waypoints: waypoints,
		prefix:    m.NewPrefixDistances(points),
		index:     NewSpatialIndex(points),
	}, nil
}

func (t *Track) Len() int {
	return len(t.waypoints)
}

func (t *Track) At(i int) Waypoint {
	return t.waypoints[i]
}

// Slice returns the waypoints in [start, end), clamping end to the route
// tail. The window does not wrap around the end of the route.
func (t *Track) Slice(start, end int) []Waypoint {
	if end > len(t.waypoints) {
		end = len(t.waypoints)
	}
	return t.waypoints[start:end]
}

// Nearest returns the index of the waypoint closest to the given 2D
// position.
func (t *Track) Nearest(x, y float64) int {
	return t.index.Nearest(x, y)
}

// PathDistance returns the driven distance along the route from waypoint i
// to waypoint j, 0 when j <= i.
func (t *Track) PathDistance(i, j int) float64 {
	return t.prefix.Between(i, j)
}
