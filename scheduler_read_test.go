package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	t.Run("reads run after every pending write", func(t *testing.T) {
		log := []string{}

		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()
		frame.Read().Then(func() { log = append(log, "read") })
		frame.Write(5).Then(func() { log = append(log, "write 5") })
		frame.Write(1).Then(func() { log = append(log, "write 1") })

		clock.Fire(time.Now())

		assert.Equal(t, []string{
			"write 1",
			"write 5",
			"read",
		}, log)
	})

	t.Run("is idempotent per frame", func(t *testing.T) {
		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()

		assert.Same(t, frame.Read(), frame.Read())
	})

	t.Run("resolves on a frame with no writes", func(t *testing.T) {
		log := []string{}

		clock := NewManualClock()
		sched := New(clock)

		sched.NextFrame().Read().Then(func() { log = append(log, "read") })

		clock.Fire(time.Now())

		assert.Equal(t, []string{"read"}, log)
	})

	t.Run("writes enqueued during a read run in another write phase", func(t *testing.T) {
		log := []string{}

		clock := NewManualClock()
		sched := New(clock)

		frame := sched.NextFrame()
		frame.Read().Then(func() {
			log = append(log, "read")

			sched.CurrentFrame().Write(0).Then(func() { log = append(log, "late write") })
		})
		frame.After().Then(func() { log = append(log, "after") })

		clock.Fire(time.Now())

		assert.Equal(t, []string{
			"read",
			"late write",
			"after",
		}, log)
	})
}
