package routegen

import (
	"math"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "waypointd/math"
)

func TestParseMaxSpeed(t *testing.T) {
	assert.InDelta(t, 13.8889, ParseMaxSpeed("50"), 1e-4)
	assert.InDelta(t, 13.8889, ParseMaxSpeed("50 km/h"), 1e-4)
	assert.InDelta(t, 13.8889, ParseMaxSpeed("50 kph"), 1e-4)
	assert.InDelta(t, 13.4112, ParseMaxSpeed("30 mph"), 1e-4)
	assert.InDelta(t, 5.14444, ParseMaxSpeed("10 knots"), 1e-4)
	assert.Equal(t, 0.0, ParseMaxSpeed(""))
	assert.Equal(t, 0.0, ParseMaxSpeed("none"))
	assert.Equal(t, 0.0, ParseMaxSpeed("50 furlongs"))
}

func TestProjectAnchorsAtFirstNode(t *testing.T) {
	nodes := map[osm.NodeID]m.Point{
		1: m.NewPoint(-122.0000, 37.0000, 0),
		2: m.NewPoint(-122.0000, 37.0010, 0),
		3: m.NewPoint(-121.9990, 37.0010, 0),
	}
	ways := []scannedWay{{
		speed: 10,
		nodes: []osm.WayNode{{ID: 1}, {ID: 2}, {ID: 3}},
	}}

	waypoints, err := project(ways, nodes)
	require.NoError(t, err)
	require.Len(t, waypoints, 3)

	assert.Equal(t, m.NewPoint(0, 0, 0), waypoints[0].Pos)
	// 0.001 degrees of latitude is about 111m
	assert.InDelta(t, 111.2, waypoints[1].Pos.Y, 1.0)
	assert.Equal(t, 0.0, waypoints[1].Pos.X)
	// longitude shrinks by cos(latitude)
	wantX := 111.2 * math.Cos(37*math.Pi/180)
	assert.InDelta(t, wantX, waypoints[2].Pos.X, 1.0)
	assert.Equal(t, 10.0, waypoints[2].Speed)
}

func TestProjectDropsSharedBoundaryNode(t *testing.T) {
	nodes := map[osm.NodeID]m.Point{
		1: m.NewPoint(-122.0000, 37.0000, 0),
		2: m.NewPoint(-122.0000, 37.0010, 0),
		3: m.NewPoint(-122.0000, 37.0020, 0),
	}
	ways := []scannedWay{
		{speed: 10, nodes: []osm.WayNode{{ID: 1}, {ID: 2}}},
		{speed: 15, nodes: []osm.WayNode{{ID: 2}, {ID: 3}}},
	}

	waypoints, err := project(ways, nodes)
	require.NoError(t, err)
	require.Len(t, waypoints, 3)
	// the duplicated node keeps the speed of the way that introduced it
	assert.Equal(t, 10.0, waypoints[1].Speed)
	assert.Equal(t, 15.0, waypoints[2].Speed)
}

func TestProjectRejectsUnknownNode(t *testing.T) {
	nodes := map[osm.NodeID]m.Point{
		1: m.NewPoint(-122.0000, 37.0000, 0),
	}
	ways := []scannedWay{{speed: 10, nodes: []osm.WayNode{{ID: 1}, {ID: 99}}}}

	_, err := project(ways, nodes)
	assert.Error(t, err)
}
