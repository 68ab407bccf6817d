package cereal

import (
	"time"

	"capnproto.org/go/capnp/v3"
)

func GetTime() uint64 {
	return uint64(time.Now().UnixNano())
}

func TrajectoryCreator(seg *capnp.Segment) (Trajectory, error) {
	trajectory, err := NewRootTrajectory(seg)
	if err != nil {
		return trajectory, err
	}
	trajectory.SetLogMonoTime(GetTime())
	return trajectory, nil
}
