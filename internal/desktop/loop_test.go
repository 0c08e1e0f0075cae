package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopIdleRunsQueuedTasksBeforeTicks(t *testing.T) {
	var order []string
	loop := NewLoop(func() { order = append(order, "tick") })

	loop.Idle(func() { order = append(order, "a") })
	loop.Idle(func() { order = append(order, "b") })

	loop.RunOnce()

	assert.Equal(t, []string{"a", "b", "tick"}, order)
}

func TestLoopIdleQueuedDuringRunOnceAlsoDrains(t *testing.T) {
	loop := NewLoop(nil)
	var order []string

	loop.Idle(func() {
		order = append(order, "first")
		loop.Idle(func() { order = append(order, "second") })
	})

	loop.RunOnce()

	assert.Equal(t, []string{"first", "second"}, order)
}
