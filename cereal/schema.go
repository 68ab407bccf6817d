// Package cereal carries the daemon's messages over gomsgq shared-memory
// queues, encoded as Cap'n Proto structs. The message layouts are maintained
// by hand in this file using the same low-level accessors schema-generated
// code bottoms out in, which keeps the wire format capnp without a compile
// step.
package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

// Pose is a single position fix in the route's planar frame.
//
// layout: x float64 @0, y float64 @8, z float64 @16, logMonoTime uint64 @24
type Pose capnp.Struct

func NewRootPose(seg *capnp.Segment) (Pose, error) {
	st, err := capnp.NewRootStruct(seg, capnp.ObjectSize{DataSize: 32, PointerCount: 0})
	return Pose(st), err
}

func ReadRootPose(msg *capnp.Message) (Pose, error) {
	root, err := msg.Root()
	return Pose(root.Struct()), err
}

func (p Pose) X() float64         { return math.Float64frombits(capnp.Struct(p).Uint64(0)) }
func (p Pose) SetX(v float64)     { capnp.Struct(p).SetUint64(0, math.Float64bits(v)) }
func (p Pose) Y() float64         { return math.Float64frombits(capnp.Struct(p).Uint64(8)) }
func (p Pose) SetY(v float64)     { capnp.Struct(p).SetUint64(8, math.Float64bits(v)) }
func (p Pose) Z() float64         { return math.Float64frombits(capnp.Struct(p).Uint64(16)) }
func (p Pose) SetZ(v float64)     { capnp.Struct(p).SetUint64(16, math.Float64bits(v)) }
func (p Pose) LogMonoTime() uint64 { return capnp.Struct(p).Uint64(24) }
func (p Pose) SetLogMonoTime(v uint64) { capnp.Struct(p).SetUint64(24, v) }

// StopSignal carries the stop-constraint route index, -1 for none.
//
// layout: index int64 @0, logMonoTime uint64 @8
type StopSignal capnp.Struct

func NewRootStopSignal(seg *capnp.Segment) (StopSignal, error) {
	st, err := capnp.NewRootStruct(seg, capnp.ObjectSize{DataSize: 16, PointerCount: 0})
	return StopSignal(st), err
}

func ReadRootStopSignal(msg *capnp.Message) (StopSignal, error) {
	root, err := msg.Root()
	return StopSignal(root.Struct()), err
}

func (s StopSignal) Index() int64          { return int64(capnp.Struct(s).Uint64(0)) }
func (s StopSignal) SetIndex(v int64)      { capnp.Struct(s).SetUint64(0, uint64(v)) }
func (s StopSignal) LogMonoTime() uint64   { return capnp.Struct(s).Uint64(8) }
func (s StopSignal) SetLogMonoTime(v uint64) { capnp.Struct(s).SetUint64(8, v) }

// RouteTrack is the one-time full route delivery: parallel lists of
// positions and nominal speeds, one entry per waypoint.
//
// layout: logMonoTime uint64 @0; ptrs: xs @0, ys @1, zs @2, speeds @3
type RouteTrack capnp.Struct

func NewRootRouteTrack(seg *capnp.Segment) (RouteTrack, error) {
	st, err := capnp.NewRootStruct(seg, capnp.ObjectSize{DataSize: 8, PointerCount: 4})
	return RouteTrack(st), err
}

func ReadRootRouteTrack(msg *capnp.Message) (RouteTrack, error) {
	root, err := msg.Root()
	return RouteTrack(root.Struct()), err
}

func (r RouteTrack) LogMonoTime() uint64      { return capnp.Struct(r).Uint64(0) }
func (r RouteTrack) SetLogMonoTime(v uint64)  { capnp.Struct(r).SetUint64(0, v) }

func (r RouteTrack) Xs() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(r), 0) }
func (r RouteTrack) NewXs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(r), 0, n)
}
func (r RouteTrack) Ys() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(r), 1) }
func (r RouteTrack) NewYs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(r), 1, n)
}
func (r RouteTrack) Zs() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(r), 2) }
func (r RouteTrack) NewZs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(r), 2, n)
}
func (r RouteTrack) Speeds() (capnp.Float64List, error) { return float64ListField(capnp.Struct(r), 3) }
func (r RouteTrack) NewSpeeds(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(r), 3, n)
}

// Trajectory is the published lookahead window: parallel lists of positions
// and target speeds, plus the resolved route indices that produced it.
//
// layout: logMonoTime uint64 @0, closestIndex int32 @8, stopIndex int32 @12;
// ptrs: xs @0, ys @1, zs @2, speeds @3
type Trajectory capnp.Struct

func NewRootTrajectory(seg *capnp.Segment) (Trajectory, error) {
	st, err := capnp.NewRootStruct(seg, capnp.ObjectSize{DataSize: 16, PointerCount: 4})
	return Trajectory(st), err
}

func ReadRootTrajectory(msg *capnp.Message) (Trajectory, error) {
	root, err := msg.Root()
	return Trajectory(root.Struct()), err
}

func (t Trajectory) LogMonoTime() uint64     { return capnp.Struct(t).Uint64(0) }
func (t Trajectory) SetLogMonoTime(v uint64) { capnp.Struct(t).SetUint64(0, v) }
func (t Trajectory) ClosestIndex() int32     { return int32(capnp.Struct(t).Uint32(8)) }
func (t Trajectory) SetClosestIndex(v int32) { capnp.Struct(t).SetUint32(8, uint32(v)) }
func (t Trajectory) StopIndex() int32        { return int32(capnp.Struct(t).Uint32(12)) }
func (t Trajectory) SetStopIndex(v int32)    { capnp.Struct(t).SetUint32(12, uint32(v)) }

func (t Trajectory) Xs() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(t), 0) }
func (t Trajectory) NewXs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(t), 0, n)
}
func (t Trajectory) Ys() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(t), 1) }
func (t Trajectory) NewYs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(t), 1, n)
}
func (t Trajectory) Zs() (capnp.Float64List, error)     { return float64ListField(capnp.Struct(t), 2) }
func (t Trajectory) NewZs(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(t), 2, n)
}
func (t Trajectory) Speeds() (capnp.Float64List, error) { return float64ListField(capnp.Struct(t), 3) }
func (t Trajectory) NewSpeeds(n int32) (capnp.Float64List, error) {
	return newFloat64ListField(capnp.Struct(t), 3, n)
}

func float64ListField(s capnp.Struct, i uint16) (capnp.Float64List, error) {
	p, err := s.Ptr(i)
	return capnp.Float64List(p.List()), err
}

func newFloat64ListField(s capnp.Struct, i uint16, n int32) (capnp.Float64List, error) {
	l, err := capnp.NewFloat64List(s.Segment(), n)
	if err != nil {
		return capnp.Float64List{}, err
	}
	err = s.SetPtr(i, l.ToPtr())
	return l, err
}
