package desktop

// WorkspaceProtocolSink is the narrow wire contract this package needs
// from whichever workspace-listing protocol is bound (ext-workspace-v1
// or cosmic-workspace-unstable-v1; out of scope per spec.md §1).
// CreateWorkspace is the one request this package cannot satisfy on
// its own: a Workspace needs scene subtrees (spec.md §1's scene-graph
// library is out of scope here), so the protocol binding layer that
// does own the scene graph builds the Workspace and hands it back.
type WorkspaceProtocolSink interface {
	CreateWorkspace(output *Output, name string) *Workspace
	BroadcastState(ws *Workspace, state WorkspaceState)
	BroadcastRemoved(ws *Workspace)
	BroadcastDone()
}

const (
	opCreateWorkspace     = "create_workspace"
	opActivateWorkspace   = "activate_workspace"
	opDeactivateWorkspace = "deactivate_workspace"
	opAssignWorkspace     = "assign_workspace"
	opRemoveWorkspace     = "remove_workspace"
)

// createRequest is the opCreateWorkspace payload: the output to create
// the workspace on and its requested name.
type createRequest struct {
	output *Output
	name   string
}

// assignRequest is the opAssignWorkspace payload: the view container
// to move and the workspace to move it onto.
type assignRequest struct {
	container *Container
	target    *Workspace
}

// WorkspaceProtocolManager stages ext-workspace/cosmic-workspace
// requests onto a Transaction and drains it on commit, coalescing the
// protocol's "done" event per spec.md §4.8/§8 invariant 8.
type WorkspaceProtocolManager struct {
	sink WorkspaceProtocolSink
	tx   *Transaction
	done *idleDoneCoalescer
}

// NewWorkspaceProtocolManager creates a manager broadcasting through
// sink, coalescing "done" onto loop's idle queue.
func NewWorkspaceProtocolManager(sink WorkspaceProtocolSink, loop *Loop) *WorkspaceProtocolManager {
	return &WorkspaceProtocolManager{
		sink: sink,
		tx:   NewTransaction(),
		done: newIdleDoneCoalescer(loop.IdleScheduler()),
	}
}

// RequestCreate stages a create_workspace request, per spec.md §4.8.
func (m *WorkspaceProtocolManager) RequestCreate(output *Output, name string, source any, onDestroy func()) {
	m.tx.Append(opCreateWorkspace, source, createRequest{output: output, name: name}, onDestroy)
}

// RequestActivate stages an activate_workspace request. onDestroy (may
// be nil) runs if the transaction is cleared before the request is
// ever drained.
func (m *WorkspaceProtocolManager) RequestActivate(ws *Workspace, source any, onDestroy func()) {
	m.tx.Append(opActivateWorkspace, source, ws, onDestroy)
}

// RequestDeactivate stages a deactivate_workspace request.
func (m *WorkspaceProtocolManager) RequestDeactivate(ws *Workspace, source any, onDestroy func()) {
	m.tx.Append(opDeactivateWorkspace, source, ws, onDestroy)
}

// RequestAssign stages an assign_workspace request: moving c onto target.
func (m *WorkspaceProtocolManager) RequestAssign(c *Container, target *Workspace, source any, onDestroy func()) {
	m.tx.Append(opAssignWorkspace, source, assignRequest{container: c, target: target}, onDestroy)
}

// RequestRemove stages a remove_workspace request.
func (m *WorkspaceProtocolManager) RequestRemove(ws *Workspace, source any, onDestroy func()) {
	m.tx.Append(opRemoveWorkspace, source, ws, onDestroy)
}

// Commit drains every staged request in insertion order, applying each
// against the domain model, then schedules one coalesced "done"
// broadcast.
func (m *WorkspaceProtocolManager) Commit() {
	if m.tx.Len() == 0 {
		return
	}
	m.tx.Drain(func(op TransactionOp) {
		switch op.Opcode {
		case opCreateWorkspace:
			req, ok := op.Payload.(createRequest)
			if !ok || m.sink == nil || req.output == nil {
				return
			}
			ws := m.sink.CreateWorkspace(req.output, req.name)
			if ws == nil {
				return
			}
			req.output.AddWorkspace(ws)
			m.sink.BroadcastState(ws, ws.State)
		case opActivateWorkspace:
			ws, ok := op.Payload.(*Workspace)
			if !ok {
				return
			}
			if out := ws.Output(); out != nil && !ws.Active() {
				_ = out.Display(ws)
			}
		case opDeactivateWorkspace:
			ws, ok := op.Payload.(*Workspace)
			if !ok {
				return
			}
			m.applyDeactivate(ws)
		case opAssignWorkspace:
			req, ok := op.Payload.(assignRequest)
			if !ok {
				return
			}
			m.applyAssign(req.container, req.target)
		case opRemoveWorkspace:
			ws, ok := op.Payload.(*Workspace)
			if !ok {
				return
			}
			ws.Destroy()
		}
	})
	m.done.RequestDone(func() {
		if m.sink != nil {
			m.sink.BroadcastDone()
		}
	})
}

// applyDeactivate implements spec.md §4.8's deactivate op: if ws is
// active, another of its output's workspaces is displayed in its
// place so the output never drops to zero active workspaces (spec.md
// §3's "exactly one workspace is active per output while any
// workspace exists" invariant). With no other workspace to show, the
// request is a no-op.
func (m *WorkspaceProtocolManager) applyDeactivate(ws *Workspace) {
	if !ws.Active() {
		return
	}
	out := ws.Output()
	if out == nil {
		return
	}
	for _, other := range out.Workspaces() {
		if other != ws {
			_ = out.Display(other)
			return
		}
	}
}

// applyAssign implements spec.md §4.8's assign op: moves a view
// container off its current workspace and onto target, re-parenting
// its tiling subtree (if tiled) or re-homing it as a floating root (if
// floating), and updates the view's recorded output.
func (m *WorkspaceProtocolManager) applyAssign(c *Container, target *Workspace) {
	if c == nil || target == nil || c.Workspace() == target {
		return
	}
	if c.Parent() != nil {
		Reparent(c, target.Root(), len(target.Root().Children()))
	} else {
		if ws := c.Workspace(); ws != nil {
			ws.RemoveFloating(c)
		}
		target.AddFloating(c)
		target.Arrange()
	}
	if v := c.View(); v != nil {
		v.SetOutput(target.Output())
	}
}

// PublishState reports ws's current state bitmask outside of a staged
// request (e.g. when urgency changes asynchronously), coalescing
// "done" the same way Commit does.
func (m *WorkspaceProtocolManager) PublishState(ws *Workspace) {
	if m.sink != nil {
		m.sink.BroadcastState(ws, ws.State)
	}
	m.done.RequestDone(func() {
		if m.sink != nil {
			m.sink.BroadcastDone()
		}
	})
}

// NotifyRemoved reports ws leaving the protocol's listing (e.g. its
// output was destroyed outside of a staged remove request).
func (m *WorkspaceProtocolManager) NotifyRemoved(ws *Workspace) {
	if m.sink != nil {
		m.sink.BroadcastRemoved(ws)
	}
	m.done.RequestDone(func() {
		if m.sink != nil {
			m.sink.BroadcastDone()
		}
	})
}
