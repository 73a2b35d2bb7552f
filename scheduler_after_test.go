package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAfter(t *testing.T) {
	t.Run("runs once writes and reads have converged", func(t *testing.T) {
		log := []string{}

		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()
		frame.After().Then(func() { log = append(log, "after") })
		frame.Read().Then(func() {
			log = append(log, "read")

			sched.CurrentFrame().Write(2).Then(func() { log = append(log, "late write") })

			// fans into the resolving read handle, drained before the loop advances
			sched.CurrentFrame().Read().Then(func() { log = append(log, "late read") })
		})
		frame.Write(0).Then(func() { log = append(log, "write 0") })

		clock.Fire(time.Now())

		assert.Equal(t, []string{
			"write 0",
			"read",
			"late read",
			"late write",
			"after",
		}, log)
	})

	t.Run("is idempotent per frame", func(t *testing.T) {
		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()

		assert.Same(t, frame.After(), frame.After())
	})

	t.Run("resolves exactly once per tick", func(t *testing.T) {
		count := 0

		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()
		after := frame.After()
		after.Then(func() { count++ })
		frame.After().Then(func() { count++ })
		frame.Write(0).Then(func() {})

		clock.Fire(time.Now())

		assert.Equal(t, 2, count)
		assert.True(t, after.Done())
	})
}
