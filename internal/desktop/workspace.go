package desktop

import "github.com/yaenergy/estrogenwl/internal/wlsignal"

// WorkspaceState is the bitmask published over the ext-workspace and
// cosmic-workspace protocols (spec.md §6).
type WorkspaceState uint32

const (
	WorkspaceActive WorkspaceState = 1 << iota
	WorkspaceUrgent
	WorkspaceHidden
)

// Workspace is a virtual desktop bound to exactly one output for its
// lifetime (spec.md §3: no workspace migration in this specification).
type Workspace struct {
	output *Output

	Name   string
	CoordX int
	CoordY int
	State  WorkspaceState

	root       *Container   // root tiling container
	floating   []*Container // floating roots
	fullscreen *Container   // optional fullscreen view-container

	tilingScene     SceneNode
	floatingScene   SceneNode
	fullscreenScene SceneNode

	OnDestroy wlsignal.Signal[*Workspace]
}

// NewWorkspace creates a workspace bound to output, with the three
// scene subtrees described in spec.md §3/§4.2.
func NewWorkspace(o *Output, name string, tilingScene, floatingScene, fullscreenScene SceneNode) *Workspace {
	ws := &Workspace{
		output:          o,
		Name:            name,
		tilingScene:     tilingScene,
		floatingScene:   floatingScene,
		fullscreenScene: fullscreenScene,
	}
	ws.root = NewTreeContainer(ws, TilingHorizontal, tilingScene)
	return ws
}

func (ws *Workspace) Output() *Output    { return ws.output }
func (ws *Workspace) Root() *Container   { return ws.root }
func (ws *Workspace) Floating() []*Container {
	out := make([]*Container, len(ws.floating))
	copy(out, ws.floating)
	return out
}
func (ws *Workspace) Fullscreen() *Container { return ws.fullscreen }
func (ws *Workspace) Active() bool           { return ws.State&WorkspaceActive != 0 }

// AddFloating appends a floating root container to the workspace.
func (ws *Workspace) AddFloating(c *Container) {
	c.workspace = ws
	c.parent = nil
	ws.floating = append(ws.floating, c)
}

// RemoveFloating detaches a floating root container.
func (ws *Workspace) RemoveFloating(c *Container) {
	for i, f := range ws.floating {
		if f == c {
			ws.floating = append(ws.floating[:i], ws.floating[i+1:]...)
			return
		}
	}
}

// SetFullscreen sets or clears the workspace's fullscreen slot. Per
// spec.md §3's invariant, this alone does not toggle visibility;
// Arrange and SetActive apply the fullscreen-hides-tiling-and-floating
// rule each time they run.
func (ws *Workspace) SetFullscreen(c *Container) {
	if ws.fullscreen != nil {
		ws.fullscreen.SetFullscreen(false)
	}
	ws.fullscreen = c
	if c != nil {
		c.SetFullscreen(true)
	}
}

// ArrangeIn implements spec.md §4.2's contract: if a fullscreen view
// is set, it is configured to fullArea and tiling/floating are
// hidden; otherwise the root tiling container is arranged within
// tiledArea and floating containers keep their own geometry.
func (ws *Workspace) ArrangeIn(fullArea, tiledArea Box) {
	if ws.fullscreen != nil {
		ws.fullscreen.Arrange(fullArea)
		ws.applyVisibility()
		return
	}
	ws.root.Arrange(tiledArea)
	ws.applyVisibility()
}

// Arrange re-arranges the workspace within its output's last-known
// full/usable area. It is a convenience for callers (e.g. container
// reparenting) that don't have a new area to propose.
func (ws *Workspace) Arrange() {
	if ws.output == nil {
		return
	}
	ws.ArrangeIn(ws.output.FullArea(), ws.output.UsableArea())
}

// applyVisibility enables/disables the three scene subtrees per
// spec.md §3's invariant: fullscreen hides tiling+floating, and
// absent fullscreen, tiling/floating show iff the workspace is active.
func (ws *Workspace) applyVisibility() {
	active := ws.Active()
	fs := ws.fullscreen != nil

	if ws.tilingScene != nil {
		ws.tilingScene.SetEnabled(active && !fs)
	}
	if ws.floatingScene != nil {
		ws.floatingScene.SetEnabled(active && !fs)
	}
	if ws.fullscreenScene != nil {
		ws.fullscreenScene.SetEnabled(active && fs)
	}
}

// SetActive implements spec.md §4.2's activation contract.
func (ws *Workspace) SetActive(active bool) {
	if active {
		ws.State |= WorkspaceActive
		ws.State &^= WorkspaceHidden
	} else {
		ws.State &^= WorkspaceActive
		ws.State |= WorkspaceHidden
	}
	ws.applyVisibility()
}

// Destroy tears the workspace down: its root container and floating
// roots are the caller's (Output's) responsibility to have already
// emptied of views.
func (ws *Workspace) Destroy() {
	ws.SetActive(false)
	ws.OnDestroy.Emit(ws)
}
