package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 100, H: 50}

	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(109, 59))
	assert.False(t, b.Contains(9, 10))
	assert.False(t, b.Contains(110, 10))
	assert.False(t, b.Contains(10, 60))
}

func TestBoxEmpty(t *testing.T) {
	assert.True(t, (Box{}).Empty())
	assert.True(t, (Box{W: 0, H: 10}).Empty())
	assert.False(t, (Box{W: 10, H: 10}).Empty())
}

func TestBoxCentered(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 1000, H: 800}
	c := b.Centered(100, 50)

	assert.Equal(t, Box{X: 450, Y: 375, W: 100, H: 50}, c)
}
