package main

import (
	"sync"
	"sync/atomic"
)

// TrajectoryInput is the snapshot a single trajectory computation runs on.
type TrajectoryInput struct {
	Pose      Pose2D
	StopIndex int
}

// Pose2D is the part of a pose the trajectory computation consumes.
type Pose2D struct {
	X float64
	Y float64
}

// Scheduler runs at most one trajectory computation at a time. New inputs
// overwrite a single latch slot instead of queueing, so a burst of pose
// updates during a slow computation collapses into one run on the freshest
// snapshot. Inputs that arrive while the worker is busy are never backlogged.
type Scheduler struct {
	latest atomic.Pointer[TrajectoryInput]
	wake   chan struct{}
	done   sync.WaitGroup
}

// NewScheduler starts the worker goroutine. run is invoked serially.
func NewScheduler(run func(TrajectoryInput)) *Scheduler {
	s := &Scheduler{
		wake: make(chan struct{}, 1),
	}
	s.done.Add(1)
	go func() {
		defer s.done.Done()
		for range s.wake {
			in := s.latest.Load()
			if in == nil {
				continue
			}
			run(*in)
		}
	}()
	return s
}

// Offer latches the snapshot and wakes the worker. Never blocks.
func (s *Scheduler) Offer(in TrajectoryInput) {
	s.latest.Store(&in)
	select {
	case s.wake <- struct{}{}:
	default:
		// worker already has a wakeup pending, it will see this input
	}
}

// Close stops the worker after it finishes any in-flight computation.
func (s *Scheduler) Close() {
	close(s.wake)
	s.done.Wait()
}
