package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "waypointd/math"
	"waypointd/track"
)

// 5 colinear points 1m apart on the x axis, 5 m/s everywhere
func lineTrack(t *testing.T) *track.Track {
	t.Helper()
	return spacedLineTrack(t, 5, 1, 5)
}

func spacedLineTrack(t *testing.T, n int, spacing float64, speed float64) *track.Track {
	t.Helper()
	waypoints := make([]track.Waypoint, n)
	for i := range waypoints {
		waypoints[i] = track.Waypoint{Pos: m.NewPoint(float64(i) * spacing, 0, 0), Speed: speed}
	}
	trk, err := track.New(waypoints)
	require.NoError(t, err)
	return trk
}

func squareLoopTrack(t *testing.T) *track.Track {
	t.Helper()
	waypoints := []track.Waypoint{}
	// 40 points around a 100m square, counterclockwise
	for i := 0; i < 10; i++ {
		waypoints = append(waypoints, track.Waypoint{Pos: m.NewPoint(float64(i*10), 0, 0), Speed: 5})
	}
	for i := 0; i < 10; i++ {
		waypoints = append(waypoints, track.Waypoint{Pos: m.NewPoint(100, float64(i*10), 0), Speed: 5})
	}
	for i := 0; i < 10; i++ {
		waypoints = append(waypoints, track.Waypoint{Pos: m.NewPoint(float64(100-i*10), 100, 0), Speed: 5})
	}
	for i := 0; i < 10; i++ {
		waypoints = append(waypoints, track.Waypoint{Pos: m.NewPoint(0, float64(100-i*10), 0), Speed: 5})
	}
	trk, err := track.New(waypoints)
	require.NoError(t, err)
	return trk
}

func TestClosestForwardIndexApproaching(t *testing.T) {
	trk := lineTrack(t)

	// just short of point 2, still approaching it
	assert.Equal(t, 2, ClosestForwardIndex(trk, m.NewPoint(1.7, 0.1, 0)))
}

func TestClosestForwardIndexAdvancesWhenPassed(t *testing.T) {
	trk := lineTrack(t)

	// just past point 2, its nearest neighbor, but already behind the vehicle
	assert.Equal(t, 3, ClosestForwardIndex(trk, m.NewPoint(2.3, 0.1, 0)))
}

func TestClosestForwardIndexExactlyOnPoint(t *testing.T) {
	trk := lineTrack(t)

	// dead on the point the heading test is neutral, the point still counts
	// as ahead
	assert.Equal(t, 2, ClosestForwardIndex(trk, m.NewPoint(2, 0, 0)))
}

func TestClosestForwardIndexWrapsAtRouteEnd(t *testing.T) {
	trk := lineTrack(t)

	// past the last point: the resolver treats indices as circular
	assert.Equal(t, 0, ClosestForwardIndex(trk, m.NewPoint(4.4, 0, 0)))
}

func TestClosestForwardIndexNeverBehind(t *testing.T) {
	trk := squareLoopTrack(t)

	// poses scattered just off the loop: the chosen index must never fail
	// the heading test against its own predecessor
	poses := []m.Point{
		m.NewPoint(13, 1, 0),
		m.NewPoint(57, -2, 0),
		m.NewPoint(99, 42, 0),
		m.NewPoint(101, 77.5, 0),
		m.NewPoint(61, 99, 0),
		m.NewPoint(12.2, 101, 0),
		m.NewPoint(-1, 55, 0),
		m.NewPoint(1, 3, 0),
	}
	for _, pose := range poses {
		closest := ClosestForwardIndex(trk, pose)
		prev := (closest - 1 + trk.Len()) % trk.Len()
		dot := m.HeadingDot(trk.At(prev).Pos, trk.At(closest).Pos, pose)
		assert.LessOrEqualf(t, dot, 0.0, "pose %+v resolved to %d which it already passed", pose, closest)
	}
}
