package cereal

import (
	"capnproto.org/go/capnp/v3"
)

func PoseReader(msg *capnp.Message) (Pose, error) {
	return ReadRootPose(msg)
}

func StopSignalReader(msg *capnp.Message) (StopSignal, error) {
	return ReadRootStopSignal(msg)
}

func RouteTrackReader(msg *capnp.Message) (RouteTrack, error) {
	return ReadRootRouteTrack(msg)
}

func TrajectoryReader(msg *capnp.Message) (Trajectory, error) {
	return ReadRootTrajectory(msg)
}
