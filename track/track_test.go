package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "waypointd/math"
)

// straight line along the x axis, 1m spacing, 5 m/s everywhere
func lineTrack(t *testing.T, n int) *Track {
	t.Helper()
	waypoints := make([]Waypoint, n)
	for i := range waypoints {
		waypoints[i] = Waypoint{Pos: m.NewPoint(float64(i), 0, 0), Speed: 5}
	}
	trk, err := New(waypoints)
	require.NoError(t, err)
	return trk
}

func TestNewRejectsShortRoutes(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]Waypoint{{Pos: m.NewPoint(0, 0, 0), Speed: 5}})
	assert.Error(t, err)
}

func TestNewRejectsNegativeSpeed(t *testing.T) {
	_, err := New([]Waypoint{
		{Pos: m.NewPoint(0, 0, 0), Speed: 5},
		{Pos: m.NewPoint(1, 0, 0), Speed: -1},
	})
	assert.Error(t, err)
}

func TestSliceClampsAtTail(t *testing.T) {
	trk := lineTrack(t, 5)

	window := trk.Slice(3, 3+50)
	require.Len(t, window, 2)
	assert.Equal(t, 3.0, window[0].Pos.X)
	assert.Equal(t, 4.0, window[1].Pos.X)
}

func TestPathDistance(t *testing.T) {
	trk := lineTrack(t, 5)

	assert.Equal(t, 2.0, trk.PathDistance(0, 2))
	assert.Equal(t, 4.0, trk.PathDistance(0, 4))
	assert.Equal(t, 0.0, trk.PathDistance(2, 2))
	assert.Equal(t, 0.0, trk.PathDistance(3, 1))
}

func TestNearest(t *testing.T) {
	trk := lineTrack(t, 5)

	assert.Equal(t, 0, trk.Nearest(-3, 0))
	assert.Equal(t, 2, trk.Nearest(2.1, 1))
	assert.Equal(t, 4, trk.Nearest(100, -2))
}

func TestNearestOnCurvedRoute(t *testing.T) {
	waypoints := []Waypoint{
		{Pos: m.NewPoint(0, 0, 0), Speed: 5},
		{Pos: m.NewPoint(10, 0, 0), Speed: 5},
		{Pos: m.NewPoint(10, 10, 0), Speed: 5},
		{Pos: m.NewPoint(0, 10, 0), Speed: 5},
	}
	trk, err := New(waypoints)
	require.NoError(t, err)

	assert.Equal(t, 2, trk.Nearest(9, 9))
	assert.Equal(t, 3, trk.Nearest(1, 11))
}
