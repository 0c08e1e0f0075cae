package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesktopMapViewTilesByDefault(t *testing.T) {
	ws := newTestWorkspace()
	ws.Output().AddWorkspace(ws)

	d := New(nil, newFakeWorkspaceSink(), newFakeForeignSink())

	v := newFakeView()
	c := d.MapView(ws, v, true)

	require.NotNil(t, c)
	assert.True(t, v.tiled)
	assert.Contains(t, ws.Root().Children(), c)
	assert.Equal(t, FocusTarget(c), d.Seat.Focus())
}

func TestDesktopMapViewFloatsWhenRequested(t *testing.T) {
	ws := newTestWorkspace()
	ws.Output().AddWorkspace(ws)

	d := New(nil, newFakeWorkspaceSink(), newFakeForeignSink())

	v := newFakeView()
	v.floating = true
	c := d.MapView(ws, v, true)

	assert.False(t, v.tiled)
	assert.Contains(t, ws.Floating(), c)
}

func TestDesktopUnmapViewClearsFocusAndBookkeeping(t *testing.T) {
	ws := newTestWorkspace()
	ws.Output().AddWorkspace(ws)

	d := New(nil, newFakeWorkspaceSink(), newFakeForeignSink())

	v := newFakeView()
	c := d.MapView(ws, v, true)

	d.UnmapView(c)

	assert.Nil(t, d.Seat.Focus())
	assert.NotContains(t, ws.Root().Children(), c)
}

func TestDesktopAddOutputRemovesOnDestroy(t *testing.T) {
	d := New(nil, newFakeWorkspaceSink(), newFakeForeignSink())
	o := newTestOutput()

	d.AddOutput(o, nil)
	assert.Contains(t, d.Outputs(), o)

	o.Destroy()
	assert.NotContains(t, d.Outputs(), o)
}
