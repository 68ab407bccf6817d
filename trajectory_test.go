package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "waypointd/settings"
)

func speeds(points []TrajectoryPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Speed
	}
	return out
}

func TestBuildTrajectoryNoStopConstraint(t *testing.T) {
	trk := lineTrack(t)

	points := BuildTrajectory(trk, 0, ms.NO_STOP_INDEX)

	require.Len(t, points, 5)
	assert.Equal(t, []float64{5, 5, 5, 5, 5}, speeds(points))
	for i, p := range points {
		assert.Equal(t, trk.At(i).Pos, p.Pos)
	}
}

func TestBuildTrajectoryStopBeyondWindow(t *testing.T) {
	trk := spacedLineTrack(t, 60, 1, 5)

	// stop at the first index past the window is not a constraint yet
	points := BuildTrajectory(trk, 0, ms.LOOKAHEAD_WPS)

	require.Len(t, points, ms.LOOKAHEAD_WPS)
	for _, p := range points {
		assert.Equal(t, 5.0, p.Speed)
	}
}

func TestBuildTrajectoryDeceleratesToStop(t *testing.T) {
	// 10m spacing keeps the early speeds above the creep floor
	trk := spacedLineTrack(t, 5, 10, 5)

	points := BuildTrajectory(trk, 0, 4)
	require.Len(t, points, 5)

	// stop offset is 4 - 0 - STOP_LINE_MARGIN = 2
	wantV0 := math.Sqrt(2 * ms.MAX_DECEL * 20) // ≈ 4.47, under the 5 m/s cap
	wantV1 := math.Sqrt(2*ms.MAX_DECEL*10) + 1*ms.CONSTANT_DECEL

	assert.InDelta(t, wantV0, points[0].Speed, 1e-9)
	assert.InDelta(t, wantV1, points[1].Speed, 1e-9)
	// at and past the stop offset only the creep term remains, which is
	// under the floor and snaps to zero
	assert.Equal(t, 0.0, points[2].Speed)
	assert.Equal(t, 0.0, points[3].Speed)
	assert.Equal(t, 0.0, points[4].Speed)
}

func TestBuildTrajectoryCreepFloorSnapsToZero(t *testing.T) {
	// 1m spacing: every raw velocity in the profile is below 2.0
	trk := lineTrack(t)

	points := BuildTrajectory(trk, 0, 4)

	assert.Equal(t, []float64{0, 0, 0, 0, 0}, speeds(points))
}

func TestBuildTrajectoryNeverExceedsBaseSpeed(t *testing.T) {
	// slow zone: base speed below what the profile would allow far from
	// the stop line
	trk := spacedLineTrack(t, 40, 10, 3)

	points := BuildTrajectory(trk, 0, 35)

	for i, p := range points {
		assert.LessOrEqualf(t, p.Speed, trk.At(i).Speed, "point %d exceeds base speed", i)
		assert.GreaterOrEqual(t, p.Speed, 0.0)
	}
	// far from the stop the cap binds
	assert.Equal(t, 3.0, points[0].Speed)
}

func TestBuildTrajectoryStopBehindVehicle(t *testing.T) {
	trk := spacedLineTrack(t, 60, 10, 5)

	// stop index at or behind the vehicle clamps the offset to zero
	points := BuildTrajectory(trk, 10, 10)

	for _, p := range points {
		assert.Equal(t, 0.0, p.Speed)
	}
}

func TestBuildTrajectoryTruncatesAtRouteTail(t *testing.T) {
	trk := lineTrack(t)

	points := BuildTrajectory(trk, 3, ms.NO_STOP_INDEX)

	require.Len(t, points, 2)
	assert.Equal(t, 3.0, points[0].Pos.X)
	assert.Equal(t, 4.0, points[1].Pos.X)
}

func TestBuildTrajectoryIsDeterministic(t *testing.T) {
	trk := spacedLineTrack(t, 60, 10, 5)

	first := BuildTrajectory(trk, 3, 30)
	second := BuildTrajectory(trk, 3, 30)

	assert.Equal(t, first, second)
}
