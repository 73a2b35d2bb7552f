package internal

import "time"

// Clock is the host's per-cycle notification service. RequestTick asks for a
// single callback before the next display refresh and returns a cancel
// function; the callback fires at most once per request.
type Clock interface {
	RequestTick(fn func(now time.Time)) (cancel func())
}

// TimerClock notifies on a one-shot timer, approximating a display refresh
// interval when the host exposes no real frame callback.
type TimerClock struct {
	// zero means 1/60s
	Interval time.Duration
}

func (c *TimerClock) RequestTick(fn func(time.Time)) func() {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}

	timer := time.AfterFunc(interval, func() { fn(time.Now()) })
	return func() { timer.Stop() }
}

// ManualClock delivers notifications only when told to, for deterministic
// tests and synchronous flushes.
type ManualClock struct {
	pending  *clockRequest
	requests int
}

type clockRequest struct {
	fn func(time.Time)
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) RequestTick(fn func(time.Time)) func() {
	c.requests++

	req := &clockRequest{fn: fn}
	c.pending = req

	return func() {
		// cancelling a stale request must not drop a newer one
		if c.pending == req {
			c.pending = nil
		}
	}
}

// Fire delivers the pending notification synchronously; no-op when nothing is
// pending.
func (c *ManualClock) Fire(now time.Time) {
	req := c.pending
	c.pending = nil

	if req != nil {
		req.fn(now)
	}
}

// Pending reports whether a notification request is outstanding.
func (c *ManualClock) Pending() bool {
	return c.pending != nil
}

// Requests counts how many notifications have been requested in total.
func (c *ManualClock) Requests() int {
	return c.requests
}
