package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceFullscreenHidesTilingAndFloating(t *testing.T) {
	ws := newTestWorkspace()
	ws.SetActive(true)

	leaf := NewViewContainer(ws, newFakeView())
	ws.Root().AppendChild(leaf)

	fsLeaf := NewViewContainer(ws, newFakeView())
	ws.SetFullscreen(fsLeaf)

	ws.ArrangeIn(Box{W: 800, H: 600}, Box{W: 800, H: 600})

	tiling := ws.tilingScene.(*fakeScene)
	floating := ws.floatingScene.(*fakeScene)
	fullscreen := ws.fullscreenScene.(*fakeScene)

	assert.False(t, tiling.enabled)
	assert.False(t, floating.enabled)
	assert.True(t, fullscreen.enabled)
	assert.True(t, fsLeaf.Fullscreen())
	assert.Equal(t, Box{W: 800, H: 600}, fsLeaf.Area())
}

func TestWorkspaceSetActiveTogglesVisibility(t *testing.T) {
	ws := newTestWorkspace()

	ws.SetActive(true)
	assert.True(t, ws.Active())
	assert.Equal(t, WorkspaceActive, ws.State&WorkspaceActive)
	assert.Equal(t, WorkspaceState(0), ws.State&WorkspaceHidden)

	ws.SetActive(false)
	assert.False(t, ws.Active())
	assert.NotZero(t, ws.State&WorkspaceHidden)
}

func TestWorkspaceAddRemoveFloating(t *testing.T) {
	ws := newTestWorkspace()
	c := NewViewContainer(ws, newFakeView())

	ws.AddFloating(c)
	assert.Len(t, ws.Floating(), 1)
	assert.Nil(t, c.Parent())

	ws.RemoveFloating(c)
	assert.Empty(t, ws.Floating())
}
