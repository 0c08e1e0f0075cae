package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeNodeRoundTrip(t *testing.T) {
	scene := newFakeScene()
	ws := newTestWorkspace()
	c := NewTreeContainer(ws, TilingHorizontal, scene)

	d, ok := Describe(scene)
	assert.True(t, ok)
	assert.Equal(t, NodeKindView, d.Kind)
	assert.Same(t, c, d.Container)
}

func TestForgetNodeRemovesDescriptor(t *testing.T) {
	scene := newFakeScene()
	ws := newTestWorkspace()
	NewTreeContainer(ws, TilingHorizontal, scene)

	ForgetNode(scene)

	_, ok := Describe(scene)
	assert.False(t, ok)
}
