package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"waypointd/cereal"
	m "waypointd/math"
	"waypointd/params"
	ms "waypointd/settings"
	"waypointd/track"
	"waypointd/utils"
)

// State holds the latest value of every input. The route track is set once
// and never replaced; pose and stop index are overwritten by each update.
type State struct {
	Track       *track.Track
	Pose        m.Point
	StopIndex   int
	PoseTracker utils.UpdateTracker

	lastPersist time.Time
}

// HandleRoute builds the track from a one-time route delivery. Repeated
// deliveries are ignored once a track exists.
func (s *State) HandleRoute(route cereal.RouteTrack) {
	if s.Track != nil {
		slog.Debug("route already loaded, ignoring delivery")
		return
	}

	waypoints, err := routeWaypoints(route)
	if err != nil {
		loge(errors.Wrap(err, "could not read route delivery"))
		return
	}

	trk, err := track.New(waypoints)
	if err != nil {
		loge(errors.Wrap(err, "rejected route delivery"))
		return
	}

	s.Track = trk
	slog.Info("route loaded", "waypoints", trk.Len())
}

// HandleStop records the latest stop constraint, -1 meaning none.
func (s *State) HandleStop(stop cereal.StopSignal) {
	idx := int(stop.Index())
	if idx != s.StopIndex {
		slog.Info("stop index updated", "index", idx)
	}
	s.StopIndex = idx
}

// HandlePose records the latest pose and tracks the update rate.
func (s *State) HandlePose(pose cereal.Pose) {
	s.Pose = m.NewPoint(pose.X(), pose.Y(), pose.Z())
	s.PoseTracker.Update()
	slog.Debug("pose update", "interval", s.PoseTracker.DiffMA.Estimate)

	if ms.Settings.PersistPose && time.Since(s.lastPersist) > 5*time.Second {
		s.lastPersist = time.Now()
		data, err := json.Marshal(map[string]float64{"x": s.Pose.X, "y": s.Pose.Y, "z": s.Pose.Z})
		if err == nil {
			logde(errors.Wrap(params.PutParam(params.LAST_POSE, data), "could not persist last pose"))
		}
	}
}

func routeWaypoints(route cereal.RouteTrack) ([]track.Waypoint, error) {
	xs, err := route.Xs()
	if err != nil {
		return nil, errors.Wrap(err, "could not read route xs")
	}
	ys, err := route.Ys()
	if err != nil {
		return nil, errors.Wrap(err, "could not read route ys")
	}
	zs, err := route.Zs()
	if err != nil {
		return nil, errors.Wrap(err, "could not read route zs")
	}
	speeds, err := route.Speeds()
	if err != nil {
		return nil, errors.Wrap(err, "could not read route speeds")
	}
	if xs.Len() != ys.Len() || xs.Len() != zs.Len() || xs.Len() != speeds.Len() {
		return nil, errors.Errorf("route lists disagree on length: %d/%d/%d/%d",
			xs.Len(), ys.Len(), zs.Len(), speeds.Len())
	}

	waypoints := make([]track.Waypoint, xs.Len())
	for i := range waypoints {
		waypoints[i] = track.Waypoint{
			Pos:   m.NewPoint(xs.At(i), ys.At(i), zs.At(i)),
			Speed: speeds.At(i),
		}
	}
	return waypoints, nil
}

func setTrajectory(out cereal.Trajectory, closestIdx int, stopIdx int, points []TrajectoryPoint) error {
	out.SetClosestIndex(int32(closestIdx))
	out.SetStopIndex(int32(stopIdx))

	n := int32(len(points))
	xs, err := out.NewXs(n)
	if err != nil {
		return errors.Wrap(err, "could not create trajectory xs")
	}
	ys, err := out.NewYs(n)
	if err != nil {
		return errors.Wrap(err, "could not create trajectory ys")
	}
	zs, err := out.NewZs(n)
	if err != nil {
		return errors.Wrap(err, "could not create trajectory zs")
	}
	speeds, err := out.NewSpeeds(n)
	if err != nil {
		return errors.Wrap(err, "could not create trajectory speeds")
	}

	for i, p := range points {
		xs.Set(i, p.Pos.X)
		ys.Set(i, p.Pos.Y)
		zs.Set(i, p.Pos.Z)
		speeds.Set(i, p.Speed)
	}
	return nil
}

func logTrajectory(closestIdx int, stopIdx int, points []TrajectoryPoint) {
	if len(points) == 0 {
		return
	}
	slog.Debug("trajectory",
		"closestIndex", closestIdx,
		"stopIndex", stopIdx,
		"points", len(points),
		"firstSpeed", points[0].Speed,
		"lastSpeed", points[len(points)-1].Speed,
	)
}
