package desktop

import "github.com/yaenergy/estrogenwl/internal/wlsignal"

// Anchor is a bitmask of the edges a layer surface is anchored to.
type Anchor int

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

// KeyboardInteractivity controls whether a layer surface may receive
// keyboard focus, per spec.md §3.
type KeyboardInteractivity int

const (
	KeyboardInteractivityNone KeyboardInteractivity = iota
	KeyboardInteractivityOnDemand
	KeyboardInteractivityExclusive
)

type layerSurfaceState int

const (
	layerSurfaceUninitialised layerSurfaceState = iota
	layerSurfaceConfigured
	layerSurfaceMapped
	layerSurfaceUnmapped
	layerSurfaceDestroyed
)

// Margin is the (top, right, bottom, left) margin applied outward
// from a layer surface's anchored edges.
type Margin struct {
	Top, Right, Bottom, Left int
}

// LayerSurfaceProtocol is the narrow zwlr_layer_surface_v1 wire
// contract this package needs (out of scope per spec.md §1).
type LayerSurfaceProtocol interface {
	SendConfigure(w, h int) (serial uint32)
	SendClosed()
}

// LayerSurfaceEvents mirrors the signals a layer surface emits.
type LayerSurfaceEvents struct {
	Map     func()
	Unmap   func()
	Destroy func()
}

// LayerSurface is a client-anchored shell surface bound to an output
// and one of the six layers (spec.md §3/§4.4).
type LayerSurface struct {
	proto LayerSurfaceProtocol
	scene SceneNode

	// popupScene is the dedicated subtree above the overlay layer that
	// this surface's popups are parented under, per spec.md §4.4, so
	// they are never clipped by their parent's layer.
	popupScene SceneNode

	output *Output
	layer  Layer

	anchor                Anchor
	exclusiveZone         int // -1 means "ignore"
	margin                Margin
	desiredW, desiredH    int
	keyboardInteractivity KeyboardInteractivity

	state layerSurfaceState
	box   Box

	Events LayerSurfaceEvents

	OnDestroy wlsignal.Signal[*LayerSurface]
}

// NewLayerSurface creates a layer surface bound to output and layer.
func NewLayerSurface(o *Output, layer Layer, proto LayerSurfaceProtocol, scene, popupScene SceneNode) *LayerSurface {
	ls := &LayerSurface{
		output:     o,
		layer:      layer,
		proto:      proto,
		scene:      scene,
		popupScene: popupScene,
	}
	if scene != nil {
		DescribeNode(scene, &NodeDescriptor{Kind: NodeKindLayerSurface, LayerSurface: ls})
	}
	return ls
}

func (ls *LayerSurface) Output() *Output { return ls.output }
func (ls *LayerSurface) Layer() Layer    { return ls.layer }
func (ls *LayerSurface) Box() Box        { return ls.box }
func (ls *LayerSurface) Mapped() bool    { return ls.state == layerSurfaceMapped }
func (ls *LayerSurface) KeyboardInteractivity() KeyboardInteractivity {
	return ls.keyboardInteractivity
}

// SetPending stages the committed fields from the client's latest
// commit; spec.md §4.4 lists these as the fields a commit may change.
type LayerSurfacePending struct {
	Layer                 *Layer
	Anchor                *Anchor
	ExclusiveZone         *int
	Margin                *Margin
	DesiredW, DesiredH    *int
	KeyboardInteractivity *KeyboardInteractivity
}

// Commit applies a pending commit, implementing spec.md §4.4's state
// machine: the first commit configures against the output's current
// areas; later commits only re-arrange (or, for a layer change,
// reparent the scene subtree and re-arrange).
func (ls *LayerSurface) Commit(pending LayerSurfacePending) {
	layerChanged := false
	needsArrange := false

	if pending.Layer != nil && *pending.Layer != ls.layer {
		ls.output.removeLayerSurface(ls)
		ls.layer = *pending.Layer
		ls.output.addLayerSurface(ls)
		if parent := ls.output.layerScenes[ls.layer]; ls.scene != nil && parent != nil {
			ls.scene.Reparent(parent)
		}
		layerChanged = true
	}
	if pending.Anchor != nil {
		ls.anchor = *pending.Anchor
		needsArrange = true
	}
	if pending.ExclusiveZone != nil {
		ls.exclusiveZone = *pending.ExclusiveZone
		needsArrange = true
	}
	if pending.Margin != nil {
		ls.margin = *pending.Margin
		needsArrange = true
	}
	if pending.DesiredW != nil {
		ls.desiredW = *pending.DesiredW
		needsArrange = true
	}
	if pending.DesiredH != nil {
		ls.desiredH = *pending.DesiredH
		needsArrange = true
	}
	if pending.KeyboardInteractivity != nil {
		ls.setKeyboardInteractivity(*pending.KeyboardInteractivity)
	}

	if ls.state == layerSurfaceUninitialised {
		ls.state = layerSurfaceConfigured
		ls.output.addLayerSurface(ls)
		ls.output.Arrange()
		return
	}

	if layerChanged || needsArrange {
		ls.output.Arrange()
	}
}

// setKeyboardInteractivity implements spec.md §4.4's focus-transfer
// rule for keyboard-interactivity changes.
func (ls *LayerSurface) setKeyboardInteractivity(ki KeyboardInteractivity) {
	prev := ls.keyboardInteractivity
	ls.keyboardInteractivity = ki

	seat := ls.output.seat
	if seat == nil {
		return
	}

	if ki == KeyboardInteractivityExclusive && prev != KeyboardInteractivityExclusive {
		if _, ok := seat.Focus().(*LayerSurface); !ok || seat.Focus() != FocusTarget(ls) {
			seat.tryFocusLayerSurface(ls)
		}
	} else if ki == KeyboardInteractivityNone && seat.Focus() == FocusTarget(ls) {
		seat.ClearFocus()
	}
}

// Map adds the surface to its output's layer-surface list, arranges
// the output, and enables the scene node (spec.md §4.4).
func (ls *LayerSurface) Map() {
	ls.state = layerSurfaceMapped
	if ls.scene != nil {
		ls.scene.SetEnabled(true)
	}
	ls.output.Arrange()
	if ls.Events.Map != nil {
		ls.Events.Map()
	}
}

// Unmap removes the surface, re-arranges the output, and hands focus
// to the next topmost exclusive layer surface on the same output.
func (ls *LayerSurface) Unmap() {
	ls.state = layerSurfaceUnmapped
	ls.output.removeLayerSurface(ls)
	ls.output.Arrange()

	if seat := ls.output.seat; seat != nil && seat.Focus() == FocusTarget(ls) {
		seat.ClearFocus()
		if next := ls.output.topmostExclusiveLayerSurface(); next != nil {
			seat.tryFocusLayerSurface(next)
		}
	}

	if ls.Events.Unmap != nil {
		ls.Events.Unmap()
	}
}

// Destroy tears the layer surface down.
func (ls *LayerSurface) Destroy() {
	ls.state = layerSurfaceDestroyed
	if ls.scene != nil {
		ForgetNode(ls.scene)
	}
	if ls.Events.Destroy != nil {
		ls.Events.Destroy()
	}
	ls.OnDestroy.Emit(ls)
}

// configureAgainst computes the surface's box from its anchors,
// margins and desired size relative to remaining (full is not
// consulted, including for an exclusive zone of -1), claims its exclusive
// zone (if positive) from remaining along its anchored edge, and
// returns the shrunk remaining area. This is the algorithm
// wlr_scene_layer_surface_v1_configure implements in the teacher's
// underlying compositor library; spec.md §1 places the scene library
// itself out of scope, but the geometry math is this package's to own
// since it determines the usable-area contract in spec.md §4.3.
func (ls *LayerSurface) configureAgainst(full, remaining Box) Box {
	bounds := remaining

	box := Box{W: ls.desiredW, H: ls.desiredH}

	const horiz = AnchorLeft | AnchorRight
	switch {
	case box.W == 0 && ls.anchor&horiz == horiz:
		box.X = bounds.X
		box.W = bounds.W
	case ls.anchor&AnchorLeft != 0:
		box.X = bounds.X
	case ls.anchor&AnchorRight != 0:
		box.X = bounds.X + bounds.W - box.W
	default:
		box.X = bounds.X + bounds.W/2 - box.W/2
	}

	const vert = AnchorTop | AnchorBottom
	switch {
	case box.H == 0 && ls.anchor&vert == vert:
		box.Y = bounds.Y
		box.H = bounds.H
	case ls.anchor&AnchorTop != 0:
		box.Y = bounds.Y
	case ls.anchor&AnchorBottom != 0:
		box.Y = bounds.Y + bounds.H - box.H
	default:
		box.Y = bounds.Y + bounds.H/2 - box.H/2
	}

	if ls.anchor&AnchorLeft != 0 && ls.anchor&AnchorRight == 0 {
		box.X += ls.margin.Left
	} else if ls.anchor&AnchorRight != 0 && ls.anchor&AnchorLeft == 0 {
		box.X -= ls.margin.Right
	}
	if ls.anchor&AnchorTop != 0 && ls.anchor&AnchorBottom == 0 {
		box.Y += ls.margin.Top
	} else if ls.anchor&AnchorBottom != 0 && ls.anchor&AnchorTop == 0 {
		box.Y -= ls.margin.Bottom
	}

	if box.W <= 0 {
		box.W = 0
	}
	if box.H <= 0 {
		box.H = 0
	}

	ls.box = box
	if ls.proto != nil {
		ls.proto.SendConfigure(box.W, box.H)
	}
	if ls.scene != nil {
		ls.scene.SetPosition(box.X, box.Y)
	}

	if ls.exclusiveZone <= 0 {
		return remaining
	}

	out := remaining
	switch {
	case ls.anchor == AnchorTop|AnchorLeft|AnchorRight, ls.anchor&AnchorTop != 0 && ls.anchor&AnchorBottom == 0:
		out.Y += ls.exclusiveZone
		out.H -= ls.exclusiveZone
	case ls.anchor&AnchorBottom != 0 && ls.anchor&AnchorTop == 0:
		out.H -= ls.exclusiveZone
	case ls.anchor&AnchorLeft != 0 && ls.anchor&AnchorRight == 0:
		out.X += ls.exclusiveZone
		out.W -= ls.exclusiveZone
	case ls.anchor&AnchorRight != 0 && ls.anchor&AnchorLeft == 0:
		out.W -= ls.exclusiveZone
	}
	return out
}
