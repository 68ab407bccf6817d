package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"waypointd/cereal"
	"waypointd/cli"
	m "waypointd/math"
	"waypointd/params"
	ms "waypointd/settings"
	"waypointd/track"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(3)
	slog.Info("Welcome to waypointd")

	state := State{StopIndex: ms.NO_STOP_INDEX}
	state.PoseTracker.Init(20)
	state.Track = loadConfiguredRoute()

	pub := cereal.NewPublisher("trajectory", cereal.TrajectoryCreator)
	poseSub := cereal.NewSubscriber("pose", cereal.PoseReader, true)
	defer poseSub.Sub.Msgq.Close()
	routeSub := cereal.NewSubscriber("routeTrack", cereal.RouteTrackReader, false)
	defer routeSub.Sub.Msgq.Close()
	stopSub := cereal.NewSubscriber("stopIndex", cereal.StopSignalReader, true)
	defer stopSub.Sub.Msgq.Close()

	sched := NewScheduler(func(in TrajectoryInput) {
		closestIdx := ClosestForwardIndex(state.Track, m.NewPoint(in.Pose.X, in.Pose.Y, 0))
		points := BuildTrajectory(state.Track, closestIdx, in.StopIndex)

		msg, out := pub.NewMessage()
		if err := setTrajectory(out, closestIdx, in.StopIndex, points); err != nil {
			loge(errors.Wrap(err, "could not build trajectory message"))
			return
		}
		loge(errors.Wrap(pub.Send(msg), "could not publish trajectory"))
		logTrajectory(closestIdx, in.StopIndex, points)
	})
	defer sched.Close()

	for {
		time.Sleep(ms.LOOP_DELAY)

		if route, ok := routeSub.Read(); ok {
			state.HandleRoute(route)
		}
		if stop, ok := stopSub.Read(); ok {
			state.HandleStop(stop)
		}

		pose, ok := poseSub.Read()
		if !ok {
			continue
		}
		state.HandlePose(pose)

		if state.Track == nil {
			// not ready until a route arrives
			continue
		}
		sched.Offer(TrajectoryInput{
			Pose:      Pose2D{X: pose.X(), Y: pose.Y()},
			StopIndex: state.StopIndex,
		})
	}
}

// loadConfiguredRoute loads the route named by settings or the ActiveRoute
// param. A misconfigured route file is fatal at startup: running without a
// usable route when one was configured helps nobody downstream.
func loadConfiguredRoute() *track.Track {
	if ms.Settings.RouteFile != "" {
		trk, err := track.LoadCSV(ms.Settings.RouteFile)
		check(errors.Wrapf(err, "could not load route file %s", ms.Settings.RouteFile))
		slog.Info("route loaded from file", "file", ms.Settings.RouteFile, "waypoints", trk.Len())
		return trk
	}

	name := ms.Settings.RouteName
	if name == "" {
		if data, err := params.GetParam(params.ACTIVE_ROUTE); err == nil {
			name = string(data)
		}
	}
	if name == "" {
		return nil
	}

	store, err := track.OpenStore(ms.Settings.RouteDB)
	check(errors.Wrapf(err, "could not open route store %s", ms.Settings.RouteDB))
	defer store.Close()

	trk, err := store.Load(name)
	check(errors.Wrapf(err, "could not load route %q", name))
	slog.Info("route loaded from store", "route", name, "waypoints", trk.Len())
	return trk
}
