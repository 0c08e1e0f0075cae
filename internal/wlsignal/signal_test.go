package wlsignal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalEmitsInSubscriptionOrder(t *testing.T) {
	var s Signal[int]
	var order []int

	s.Add(func(v int) { order = append(order, v*10+1) })
	s.Add(func(v int) { order = append(order, v*10+2) })

	s.Emit(5)

	assert.Equal(t, []int{51, 52}, order)
	assert.Equal(t, 2, s.Len())
}

func TestSignalHandleRemoveUnsubscribes(t *testing.T) {
	var s Signal[string]
	calls := 0

	h := s.Add(func(string) { calls++ })
	s.Add(func(string) { calls++ })

	h.Remove()
	s.Emit("x")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.Len())

	// removing twice is a no-op, not a panic.
	assert.NotPanics(t, h.Remove)
}

func TestSignalEmitWithNoSubscribersIsNoop(t *testing.T) {
	var s Signal[struct{}]
	assert.NotPanics(t, func() { s.Emit(struct{}{}) })
}
