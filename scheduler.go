// Package scheduler batches write and read work against a shared mutable
// tree so that all writes for a display cycle run before any reads.
//
// Consumers register work on the next frame instead of invoking the host
// clock directly:
//
//	frame := sched.NextFrame()
//	frame.Write(depth).Then(func() { /* mutate the tree */ })
//	frame.Read().Then(func() { /* measure the tree */ })
//	frame.After().Then(func() { /* cleanup */ })
//
// On the next clock notification the scheduler drains writes in ascending
// priority order, then reads, repeating until no further writes appear, then
// runs the after-work. Work scheduled from inside a running tick is captured
// and drained before the loop advances, never leaked to the host queue.
package scheduler

import "github.com/localvoid/dom-scheduler/internal"

// Aliases over the internal types so handle identity is preserved across the
// public surface.
type (
	Scheduler        = internal.Scheduler
	Frame            = internal.Frame
	Handle           = internal.Handle
	ExecutionContext = internal.ExecutionContext
	Clock            = internal.Clock
	TimerClock       = internal.TimerClock
	ManualClock      = internal.ManualClock
)

// DefaultPriority sorts an untagged write after every depth-tagged write.
const DefaultPriority = internal.DefaultPriority

// New creates a scheduler driven by the given clock.
func New(clock Clock) *Scheduler {
	return internal.NewScheduler(clock)
}

// NewWithHost creates a scheduler whose pass-through scheduling (outside a
// tick) goes to the given host queue instead of running immediately.
func NewWithHost(clock Clock, post func(func())) *Scheduler {
	return internal.NewSchedulerWithHost(clock, post)
}

// NewManualClock creates a clock that only ticks when fired explicitly.
func NewManualClock() *ManualClock {
	return internal.NewManualClock()
}

// Schedule runs fn soon via the calling goroutine's active execution context:
// inside a tick it is captured and drained before the scheduler advances;
// outside one it falls through to the host queue.
func Schedule(fn func()) {
	internal.Schedule(fn)
}
