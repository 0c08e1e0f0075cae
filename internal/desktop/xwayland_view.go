package desktop

// xwaylandFloatingWindowTypes is the set of window-type atoms that,
// per spec.md §4.5, force a managed xwayland surface to float.
var xwaylandFloatingWindowTypes = map[string]bool{
	"dialog":        true,
	"dropdown menu": true,
	"popup menu":    true,
	"tooltip":       true,
	"splash":        true,
	"notification":  true,
	"menu":          true,
	"combo":         true,
}

// XwaylandProtocol is the narrow contract for a managed xwayland
// surface's wire requests (configure is advisory; xwayland applies
// layout coordinates itself and reports back its actual geometry).
type XwaylandProtocol interface {
	Configure(lx, ly, w, h int)
	Close()
}

// XwaylandManagedView implements View for a managed (non-override-
// redirect) xwayland surface, per spec.md §4.5: configure is
// immediate and commit re-reads the surface's reported geometry.
type XwaylandManagedView struct {
	proto XwaylandProtocol
	scene SceneNode
	events ViewEvents

	title, appID string
	hints        SizeHints

	associated bool // false between dissociate/associate: surface handle is null
	mapped, tiled, fullscreen bool

	current Box
	pending Box

	output *Output
}

func NewXwaylandManagedView(proto XwaylandProtocol, scene SceneNode) *XwaylandManagedView {
	return &XwaylandManagedView{proto: proto, scene: scene, associated: true}
}

func (v *XwaylandManagedView) Kind() ViewKind { return ViewKindXwaylandManaged }
func (v *XwaylandManagedView) Title() string  { return v.title }
func (v *XwaylandManagedView) AppID() string  { return v.appID }

func (v *XwaylandManagedView) SetTitle(t string) { v.title = t }
func (v *XwaylandManagedView) SetAppID(a string) { v.appID = a }

func (v *XwaylandManagedView) Mapped() bool         { return v.mapped }
func (v *XwaylandManagedView) Tiled() bool          { return v.tiled }
func (v *XwaylandManagedView) SetTiled(t bool)      { v.tiled = t }
func (v *XwaylandManagedView) Fullscreen() bool     { return v.fullscreen }
func (v *XwaylandManagedView) SetFullscreen(f bool) { v.fullscreen = f }

func (v *XwaylandManagedView) Geometry() Box        { return v.current }
func (v *XwaylandManagedView) PendingGeometry() Box { return v.pending }

func (v *XwaylandManagedView) Output() *Output     { return v.output }
func (v *XwaylandManagedView) SetOutput(o *Output) { v.output = o }

func (v *XwaylandManagedView) GetSizeHints() SizeHints   { return v.hints }
func (v *XwaylandManagedView) SetSizeHints(h SizeHints)  { v.hints = h }

// WantsFloating returns true for fixed-size hints, modal surfaces, or
// one of the window-type atoms spec.md §4.5 lists.
func (v *XwaylandManagedView) WantsFloating() bool {
	h := v.hints
	if h.Modal {
		return true
	}
	if h.MinW > 0 && h.MinW == h.MaxW && h.MinH > 0 && h.MinH == h.MaxH {
		return true
	}
	return xwaylandFloatingWindowTypes[h.WindowType]
}

// Configure is immediate: xwayland accepts absolute layout coordinates
// directly, with no ack round-trip.
func (v *XwaylandManagedView) Configure(lx, ly, w, h int) {
	if !v.associated {
		return
	}
	v.pending = Box{X: lx, Y: ly, W: w, H: h}
	if v.proto != nil {
		v.proto.Configure(lx, ly, w, h)
	}
	if v.scene != nil {
		v.scene.SetPosition(lx, ly)
	}
}

// Commit re-reads the surface's actual reported geometry. Per
// spec.md §9's open question, a tiled managed view that ignores the
// requested size is not re-requested: the container's area stays
// authoritative and the content is left to clip or letterbox itself.
func (v *XwaylandManagedView) Commit(reportedW, reportedH int) {
	if !v.associated {
		return
	}
	v.current = Box{X: v.pending.X, Y: v.pending.Y, W: reportedW, H: reportedH}
	if v.events.Commit != nil {
		v.events.Commit()
	}
}

// SetAssociated tracks whether the surface handle is currently valid.
// A dissociated view (spec.md §7 "clientless state") returns early
// from Configure and Commit.
func (v *XwaylandManagedView) SetAssociated(associated bool) { v.associated = associated }
func (v *XwaylandManagedView) Associated() bool              { return v.associated }

func (v *XwaylandManagedView) SetActivated(activated bool) { _ = activated }

func (v *XwaylandManagedView) SendClose() {
	if v.proto != nil {
		v.proto.Close()
	}
}

func (v *XwaylandManagedView) ContentTree() SceneNode { return v.scene }
func (v *XwaylandManagedView) Events() *ViewEvents    { return &v.events }

func (v *XwaylandManagedView) SetMapped(mapped bool) {
	v.mapped = mapped
	if mapped && v.events.Map != nil {
		v.events.Map()
	} else if !mapped && v.events.Unmap != nil {
		v.events.Unmap()
	}
}

// UnmanagedSurface represents an override-redirect xwayland surface.
// Per spec.md §4.5 it is not wrapped in a view-container: it lives in
// a dedicated "unmanaged" scene subtree and always honours
// client-requested geometry verbatim, including requested positions.
type UnmanagedSurface struct {
	scene    SceneNode
	geometry Box
}

// NewUnmanagedSurface creates an unmanaged surface and tags its scene
// node so hit-tests resolve it without a containing Container.
func NewUnmanagedSurface(scene SceneNode) *UnmanagedSurface {
	s := &UnmanagedSurface{scene: scene}
	if scene != nil {
		DescribeNode(scene, &NodeDescriptor{Kind: NodeKindUnmanagedSurface})
	}
	return s
}

// SetGeometry applies the client's requested geometry verbatim.
func (s *UnmanagedSurface) SetGeometry(lx, ly, w, h int) {
	s.geometry = Box{X: lx, Y: ly, W: w, H: h}
	if s.scene != nil {
		s.scene.SetPosition(lx, ly)
	}
}

func (s *UnmanagedSurface) Geometry() Box { return s.geometry }

func (s *UnmanagedSurface) Destroy() {
	if s.scene != nil {
		ForgetNode(s.scene)
		s.scene.Destroy()
	}
}
