package desktop

import "github.com/yaenergy/estrogenwl/internal/wlog"

// Desktop is the root of the domain model: the set of live outputs,
// the one seat, and the protocol managers that bridge them to the
// outside world (spec.md §3). A real compositor constructs one of
// these at startup and feeds it backend events; this package owns
// none of the wire protocol itself (spec.md §1).
type Desktop struct {
	Seat *Seat
	Loop *Loop

	Workspaces *WorkspaceProtocolManager
	Foreign    *ForeignToplevelManager
	Gamma      *GammaControlManager

	outputs []*Output
}

// New creates a desktop wired the way spec.md §3/§4 describes: one
// seat, one loop, and the supplement protocol managers sharing that
// seat and loop.
func New(keybinds *KeybindTable, workspaceSink WorkspaceProtocolSink, foreignSink ForeignToplevelSink) *Desktop {
	loop := NewLoop(nil)
	seat := NewSeat(keybinds)

	d := &Desktop{
		Seat:       seat,
		Loop:       loop,
		Workspaces: NewWorkspaceProtocolManager(workspaceSink, loop),
		Foreign:    NewForeignToplevelManager(foreignSink, seat),
		Gamma:      NewGammaControlManager(),
	}
	seat.OnExitRequested = loop.Stop
	return d
}

// Outputs returns the desktop's outputs in the order they were added.
func (d *Desktop) Outputs() []*Output {
	out := make([]*Output, len(d.outputs))
	copy(out, d.outputs)
	return out
}

// AddOutput registers a new output with the desktop: it is bound to
// the shared seat (for layer-surface exclusive focus) and the gamma
// manager (if backend is non-nil).
func (d *Desktop) AddOutput(o *Output, gammaBackend GammaControlBackend) {
	o.SetSeat(d.Seat)
	d.outputs = append(d.outputs, o)
	if gammaBackend != nil {
		d.Gamma.RegisterOutput(o, gammaBackend)
	}
	o.OnDestroy.Add(func(out *Output) {
		d.removeOutput(out)
	})
}

func (d *Desktop) removeOutput(o *Output) {
	for i, out := range d.outputs {
		if out == o {
			d.outputs = append(d.outputs[:i], d.outputs[i+1:]...)
			wlog.Debugf("output %q removed", o.Name)
			return
		}
	}
}

// MapView creates a view container on ws, publishes it to the
// foreign-toplevel bridge, and focuses it — the common path for a
// newly-mapped toplevel/xwayland-managed surface, per spec.md §4.5/§4.7.
func (d *Desktop) MapView(ws *Workspace, v View, intoTiling bool) *Container {
	c := NewViewContainer(ws, v)
	if intoTiling && !v.WantsFloating() {
		v.SetTiled(true)
		d.Seat.TiledInsertionParent(ws).AppendChild(c)
	} else {
		v.SetTiled(false)
		ws.AddFloating(c)
		c.Arrange(Box{X: ws.Output().FullArea().X, Y: ws.Output().FullArea().Y, W: v.GetSizeHints().MinW, H: v.GetSizeHints().MinH})
	}
	d.Foreign.HandleMapped(c)
	d.Seat.FocusContainer(c)
	return c
}

// UnmapView tears down a view container's desktop-level bookkeeping:
// foreign-toplevel handle, seat focus, and tree/floating membership.
// Destroying c's View is the caller's responsibility.
func (d *Desktop) UnmapView(c *Container) {
	d.Foreign.HandleUnmapped(c)
	d.Seat.NotifyViewDestroyed(c)
	if c.Parent() == nil && c.Workspace() != nil {
		c.Workspace().RemoveFloating(c)
	}
	c.Destroy()
}
