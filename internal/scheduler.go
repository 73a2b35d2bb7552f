package internal

import "time"

// Scheduler owns the current and next frame and runs the batching loop: all
// writes for a cycle drain in ascending priority order before any read runs,
// repeating until a full write+read pass adds no further writes, then the
// deferred after-work runs.
type Scheduler struct {
	clock Clock
	ctx   *ExecutionContext

	// valid only during an active tick
	current *Frame

	// lazily created on first request; nil while idle with nothing registered
	next *Frame

	// true strictly during the batching loop; gates the deferred-task queue
	running bool

	// cancels the outstanding clock notification, nil when none is outstanding
	cancelTick func()

	// first panic that reached no Catch listener during the current tick
	failure any
}

func NewScheduler(clock Clock) *Scheduler {
	return NewSchedulerWithHost(clock, nil)
}

// NewSchedulerWithHost injects the host's default "run this soon" queue used
// for work scheduled outside a tick. A nil post runs callbacks immediately.
func NewSchedulerWithHost(clock Clock, post func(func())) *Scheduler {
	return &Scheduler{
		clock: clock,
		ctx:   NewExecutionContext(post),
	}
}

// NextFrame returns the frame for the upcoming cycle, creating it and
// requesting a clock notification on first call per idle period.
func (s *Scheduler) NextFrame() *Frame {
	if s.next == nil {
		s.next = newFrame(s.ctx, s.trap)
		s.cancelTick = s.clock.RequestTick(s.tick)
	}

	return s.next
}

// CurrentFrame returns the frame being executed. Calling it outside an
// active tick is a programming error.
func (s *Scheduler) CurrentFrame() *Frame {
	if s.current == nil {
		panic("scheduler: no current frame outside a tick")
	}

	return s.current
}

// ForceNextFrame cancels the outstanding clock notification, if any, and
// runs the tick synchronously. No-op when no notification is outstanding.
func (s *Scheduler) ForceNextFrame() {
	// no reentrant ticks
	if s.running || s.cancelTick == nil {
		return
	}

	cancel := s.cancelTick
	s.cancelTick = nil
	cancel()

	s.tick(time.Now())
}

// Context returns the execution context task bodies must run inside to get
// interception of work scheduled during a tick.
func (s *Scheduler) Context() *ExecutionContext {
	return s.ctx
}

func (s *Scheduler) tick(now time.Time) {
	s.cancelTick = nil

	frame := s.next
	s.next = nil
	if frame == nil {
		return
	}

	s.current = frame
	s.running = true
	s.ctx.running = true
	prev := setActiveContext(s.ctx)

	for {
		// write phase: ascending priority, one group at a time; a group's
		// slot is cleared only after its drain so re-requests during its own
		// continuations fan in, while later requests re-enter the queue
		for !frame.pending.Empty() {
			group := frame.groups[frame.pending.Pop()]

			group.completion.resolve()
			s.drainDeferred()
			group.completion = nil
		}

		// read phase
		if h := frame.readCompletion; h != nil {
			h.resolve()
			s.drainDeferred()
			frame.readCompletion = nil
		}

		// reads may have enqueued new writes; converge before after-work
		if frame.pending.Empty() {
			break
		}
	}

	if h := frame.afterCompletion; h != nil {
		h.resolve()
		s.drainDeferred()
		frame.afterCompletion = nil
	}

	setActiveContext(prev)
	s.ctx.running = false
	s.running = false
	s.current = nil

	if f := s.failure; f != nil {
		s.failure = nil
		panic(f)
	}
}

func (s *Scheduler) drainDeferred() {
	s.ctx.queue.Drain(func(fn func()) {
		defer func() {
			if r := recover(); r != nil {
				s.trap(r)
			}
		}()

		fn()
	})
}

// trap collects the first unhandled continuation panic so the batching loop
// can finish draining the tick before the failure propagates.
func (s *Scheduler) trap(v any) {
	if !s.running {
		panic(v)
	}

	if s.failure == nil {
		s.failure = v
	}
}
