package desktop

// ToplevelProtocol is the narrow xdg_toplevel wire contract this
// package needs (out of scope per spec.md §1: actual wire encoding
// lives in the xdg-shell glue layer / underlying compositor library).
type ToplevelProtocol interface {
	// SendConfigure proposes a size to the client and returns the
	// serial the client must ack.
	SendConfigure(w, h int) (serial uint32)
	SendClose()
}

// ToplevelView implements View for an xdg-shell toplevel, including
// the deferred configure/ack/commit cycle described in spec.md §4.5.
type ToplevelView struct {
	proto ToplevelProtocol
	scene SceneNode
	events ViewEvents

	title, appID string
	hints        SizeHints

	mapped, tiled, fullscreen bool

	current Box
	pending Box

	// scheduledX/Y is the position the next committed size will be
	// placed at; it is applied immediately for position-only changes.
	scheduledX, scheduledY int

	configureInflight bool
	inflightSerial    uint32
	dirty             bool // a further configure is needed once the in-flight one acks

	output *Output
}

// NewToplevelView constructs a toplevel view bound to proto for
// sending configure/close requests.
func NewToplevelView(proto ToplevelProtocol, scene SceneNode) *ToplevelView {
	return &ToplevelView{proto: proto, scene: scene}
}

func (v *ToplevelView) Kind() ViewKind { return ViewKindToplevel }
func (v *ToplevelView) Title() string  { return v.title }
func (v *ToplevelView) AppID() string  { return v.appID }

// SetTitle and SetAppID are called by the xdg-shell glue on the
// corresponding client requests.
func (v *ToplevelView) SetTitle(t string) { v.title = t }
func (v *ToplevelView) SetAppID(a string) { v.appID = a }

func (v *ToplevelView) Mapped() bool        { return v.mapped }
func (v *ToplevelView) Tiled() bool         { return v.tiled }
func (v *ToplevelView) SetTiled(t bool)     { v.tiled = t }
func (v *ToplevelView) Fullscreen() bool    { return v.fullscreen }
func (v *ToplevelView) SetFullscreen(f bool) { v.fullscreen = f }

func (v *ToplevelView) Geometry() Box        { return v.current }
func (v *ToplevelView) PendingGeometry() Box { return v.pending }

func (v *ToplevelView) Output() *Output      { return v.output }
func (v *ToplevelView) SetOutput(o *Output)  { v.output = o }

func (v *ToplevelView) GetSizeHints() SizeHints { return v.hints }
func (v *ToplevelView) SetSizeHints(h SizeHints) { v.hints = h }

// WantsFloating mirrors xwayland's rule for toplevels: a fixed-size
// hint (min == max, both nonzero) or a modal flag requests floating.
func (v *ToplevelView) WantsFloating() bool {
	h := v.hints
	if h.Modal {
		return true
	}
	if h.MinW > 0 && h.MinW == h.MaxW && h.MinH > 0 && h.MinH == h.MaxH {
		return true
	}
	return false
}

// Configure implements spec.md §4.5's deferred toplevel cycle: the
// scheduled position is recorded immediately; the size is only sent to
// the client if no configure is currently in flight, otherwise it
// replaces the pending size and is sent once the in-flight one acks.
// A position-only change (size unchanged from current) moves the
// scene node immediately, without a round trip.
func (v *ToplevelView) Configure(lx, ly, w, h int) {
	v.scheduledX, v.scheduledY = lx, ly
	v.pending = Box{X: lx, Y: ly, W: w, H: h}

	if w == v.current.W && h == v.current.H {
		v.current.X, v.current.Y = lx, ly
		if v.scene != nil {
			v.scene.SetPosition(lx, ly)
		}
		return
	}

	if v.configureInflight {
		v.dirty = true
		return
	}

	v.sendConfigure(w, h)
}

func (v *ToplevelView) sendConfigure(w, h int) {
	v.configureInflight = true
	v.dirty = false
	if v.proto != nil {
		v.inflightSerial = v.proto.SendConfigure(w, h)
	}
}

// AckConfigure records that the client has acknowledged serial. The
// acked size becomes current only once the client commits (Commit).
func (v *ToplevelView) AckConfigure(serial uint32) {
	if serial != v.inflightSerial {
		return
	}
	v.configureInflight = false
}

// Commit applies the acked size at the scheduled position, then
// issues the next configure if further pending changes accumulated
// while one was in flight and no configure is still awaiting its ack.
func (v *ToplevelView) Commit(committedW, committedH int) {
	if !v.configureInflight {
		v.current = Box{X: v.scheduledX, Y: v.scheduledY, W: committedW, H: committedH}
		if v.scene != nil {
			v.scene.SetPosition(v.current.X, v.current.Y)
		}
	}
	if v.events.Commit != nil {
		v.events.Commit()
	}
	if v.dirty && !v.configureInflight {
		v.sendConfigure(v.pending.W, v.pending.H)
	}
}

func (v *ToplevelView) SetActivated(activated bool) {
	// Protocol-level xdg_toplevel.configure state flags are owned by
	// the glue layer that embeds this type; nothing to do here beyond
	// what Configure already schedules.
	_ = activated
}

func (v *ToplevelView) SendClose() {
	if v.proto != nil {
		v.proto.SendClose()
	}
}

func (v *ToplevelView) ContentTree() SceneNode { return v.scene }
func (v *ToplevelView) Events() *ViewEvents    { return &v.events }

// SetMapped marks the view mapped/unmapped and fires the corresponding signal.
func (v *ToplevelView) SetMapped(mapped bool) {
	v.mapped = mapped
	if mapped && v.events.Map != nil {
		v.events.Map()
	} else if !mapped && v.events.Unmap != nil {
		v.events.Unmap()
	}
}
