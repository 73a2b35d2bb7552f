package internal

// Handle is a future-like completion handle for a frame slot. The scheduler
// resolves it when it begins executing the associated slot, which runs every
// chained continuation synchronously.
type Handle struct {
	ctx *ExecutionContext

	// failure sink for panics with no Catch listener
	trap func(any)

	resolved bool

	callbacks []func()
	catchers  []func(any)
}

func newHandle(ctx *ExecutionContext, trap func(any)) *Handle {
	return &Handle{
		ctx:  ctx,
		trap: trap,
	}
}

// Then chains fn to run when the handle resolves. If the handle has already
// resolved, fn is handed to the execution context: inside a tick it joins the
// deferred queue and runs before the scheduler advances to the next phase.
func (h *Handle) Then(fn func()) *Handle {
	if h.resolved {
		h.ctx.Schedule(func() { h.invoke(fn) })
		return h
	}

	h.callbacks = append(h.callbacks, fn)
	return h
}

// Catch registers a listener on the handle's failure channel. A panic raised
// by one of this handle's continuations is recovered and delivered to every
// listener instead of unwinding the batching loop.
func (h *Handle) Catch(fn func(any)) *Handle {
	h.catchers = append(h.catchers, fn)
	return h
}

// Done reports whether the handle has resolved.
func (h *Handle) Done() bool {
	return h.resolved
}

func (h *Handle) resolve() {
	if h.resolved {
		return
	}
	h.resolved = true

	callbacks := h.callbacks
	h.callbacks = nil

	for _, cb := range callbacks {
		h.invoke(cb)
	}
}

// invoke runs a single continuation in isolation: a panic fails this handle,
// not its siblings and not the rest of the phase.
func (h *Handle) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if len(h.catchers) == 0 {
				h.trap(r)
				return
			}

			for _, catcher := range h.catchers {
				catcher(r)
			}
		}
	}()

	fn()
}
