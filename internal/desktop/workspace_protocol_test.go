package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkspaceSink struct {
	states  map[*Workspace]WorkspaceState
	removed []*Workspace
	doneCnt int
}

func newFakeWorkspaceSink() *fakeWorkspaceSink {
	return &fakeWorkspaceSink{states: map[*Workspace]WorkspaceState{}}
}

func (s *fakeWorkspaceSink) CreateWorkspace(o *Output, name string) *Workspace {
	return NewWorkspace(o, name, newFakeScene(), newFakeScene(), newFakeScene())
}
func (s *fakeWorkspaceSink) BroadcastState(ws *Workspace, state WorkspaceState) { s.states[ws] = state }
func (s *fakeWorkspaceSink) BroadcastRemoved(ws *Workspace)                     { s.removed = append(s.removed, ws) }
func (s *fakeWorkspaceSink) BroadcastDone()                                    { s.doneCnt++ }

func TestWorkspaceProtocolManagerCommitCoalescesDone(t *testing.T) {
	o := newTestOutput()
	ws1 := NewWorkspace(o, "1", newFakeScene(), newFakeScene(), newFakeScene())
	ws2 := NewWorkspace(o, "2", newFakeScene(), newFakeScene(), newFakeScene())
	o.AddWorkspace(ws1)
	o.AddWorkspace(ws2)

	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestActivate(ws2, nil, nil)
	m.Commit()

	assert.True(t, ws2.Active())
	assert.False(t, ws1.Active())

	loop.RunOnce()
	assert.Equal(t, 1, sink.doneCnt)
}

func TestWorkspaceProtocolManagerCreateAddsWorkspaceToOutput(t *testing.T) {
	o := newTestOutput()
	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestCreate(o, "2", nil, nil)
	m.Commit()

	require.Len(t, o.Workspaces(), 1)
	assert.Equal(t, "2", o.Workspaces()[0].Name)
	assert.True(t, o.Workspaces()[0].Active())
}

func TestWorkspaceProtocolManagerDeactivateDisplaysAnother(t *testing.T) {
	o := newTestOutput()
	ws1 := NewWorkspace(o, "1", newFakeScene(), newFakeScene(), newFakeScene())
	ws2 := NewWorkspace(o, "2", newFakeScene(), newFakeScene(), newFakeScene())
	o.AddWorkspace(ws1)
	o.AddWorkspace(ws2)

	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestDeactivate(ws1, nil, nil)
	m.Commit()

	assert.False(t, ws1.Active())
	assert.True(t, ws2.Active())
}

func TestWorkspaceProtocolManagerDeactivateNoopWithoutAlternative(t *testing.T) {
	o := newTestOutput()
	ws1 := NewWorkspace(o, "1", newFakeScene(), newFakeScene(), newFakeScene())
	o.AddWorkspace(ws1)

	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestDeactivate(ws1, nil, nil)
	m.Commit()

	assert.True(t, ws1.Active())
}

func TestWorkspaceProtocolManagerAssignMovesTiledContainer(t *testing.T) {
	o := newTestOutput()
	ws1 := NewWorkspace(o, "1", newFakeScene(), newFakeScene(), newFakeScene())
	ws2 := NewWorkspace(o, "2", newFakeScene(), newFakeScene(), newFakeScene())
	o.AddWorkspace(ws1)
	o.AddWorkspace(ws2)

	v := newFakeView()
	leaf := NewViewContainer(ws1, v)
	ws1.Root().AppendChild(leaf)

	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestAssign(leaf, ws2, nil, nil)
	m.Commit()

	assert.Empty(t, ws1.Root().Children())
	assert.Contains(t, ws2.Root().Children(), leaf)
	assert.Same(t, ws2, leaf.Workspace())
	assert.Same(t, o, v.Output())
}

func TestWorkspaceProtocolManagerAssignMovesFloatingContainer(t *testing.T) {
	o := newTestOutput()
	ws1 := NewWorkspace(o, "1", newFakeScene(), newFakeScene(), newFakeScene())
	ws2 := NewWorkspace(o, "2", newFakeScene(), newFakeScene(), newFakeScene())
	o.AddWorkspace(ws1)
	o.AddWorkspace(ws2)

	leaf := NewViewContainer(ws1, newFakeView())
	ws1.AddFloating(leaf)

	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.RequestAssign(leaf, ws2, nil, nil)
	m.Commit()

	assert.Empty(t, ws1.Floating())
	assert.Contains(t, ws2.Floating(), leaf)
	assert.Same(t, ws2, leaf.Workspace())
}

func TestWorkspaceProtocolManagerCommitNoopWhenEmpty(t *testing.T) {
	sink := newFakeWorkspaceSink()
	loop := NewLoop(nil)
	m := NewWorkspaceProtocolManager(sink, loop)

	m.Commit()
	loop.RunOnce()

	assert.Equal(t, 0, sink.doneCnt)
}
