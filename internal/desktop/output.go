package desktop

import (
	"fmt"

	"github.com/yaenergy/estrogenwl/internal/wlsignal"
)

// Layer is one of the six ordered scene layers spec.md §3 assigns to
// every output.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTiling
	LayerFloating
	LayerTop
	LayerOverlay
	layerCount
)

// Transform mirrors the eight wl_output transform values (grounded on
// the teacher's vendored output-management binding's Transform type);
// see SPEC_FULL.md's output scale/transform supplement.
type Transform int

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

// Output represents one physical monitor (spec.md §3/§4.3).
type Output struct {
	Name string

	Scale     float64
	Transform Transform

	box Box // the output's box as passed to NewOutput/RequestState; Scale and Transform are not applied to it here

	layerScenes [layerCount]SceneNode

	layerSurfaces [layerCount][]*LayerSurface

	workspaces []*Workspace
	active     *Workspace

	usable Box

	backend OutputBackend
	seat    *Seat

	OnDestroy wlsignal.Signal[*Output]
}

// SetSeat binds the seat whose exclusive-focus arbitration (spec.md
// §4.4/§4.7) this output's layer surfaces participate in.
func (o *Output) SetSeat(s *Seat) { o.seat = s }

// topmostExclusiveLayerSurface returns the highest-priority mapped
// layer surface currently requesting exclusive keyboard interactivity,
// scanning overlay before top per spec.md §4.7's priority order.
func (o *Output) topmostExclusiveLayerSurface() *LayerSurface {
	for _, layer := range []Layer{LayerOverlay, LayerTop, LayerBottom, LayerBackground} {
		surfs := o.layerSurfaces[layer]
		for i := len(surfs) - 1; i >= 0; i-- {
			if surfs[i].keyboardInteractivity == KeyboardInteractivityExclusive && surfs[i].Mapped() {
				return surfs[i]
			}
		}
	}
	return nil
}

// OutputBackend is the narrow contract this package needs from the
// output backend (vblank scheduling, mode setting) — out of scope
// per spec.md §1.
type OutputBackend interface {
	ScheduleFrame()
	RequestState(mode Box) error
}

// NewOutput creates an output with the given pixel box and per-layer
// scene subtrees (background..overlay, spec.md §3).
func NewOutput(name string, box Box, layerScenes [6]SceneNode, backend OutputBackend) *Output {
	o := &Output{
		Name:    name,
		Scale:   1.0,
		box:     box,
		usable:  box,
		backend: backend,
	}
	o.layerScenes = layerScenes
	return o
}

func (o *Output) FullArea() Box   { return o.box }
func (o *Output) UsableArea() Box { return o.usable }
func (o *Output) Active() *Workspace { return o.active }

// Workspaces returns the output's workspaces in order.
func (o *Output) Workspaces() []*Workspace {
	out := make([]*Workspace, len(o.workspaces))
	copy(out, o.workspaces)
	return out
}

// AddWorkspace appends ws to the output and, if it is the output's
// first workspace, makes it active.
func (o *Output) AddWorkspace(ws *Workspace) {
	o.workspaces = append(o.workspaces, ws)
	if o.active == nil {
		o.active = ws
		ws.SetActive(true)
	}
}

// LayerSurfaces returns the layer surfaces currently on layer l, topmost last.
func (o *Output) LayerSurfaces(l Layer) []*LayerSurface {
	out := make([]*LayerSurface, len(o.layerSurfaces[l]))
	copy(out, o.layerSurfaces[l])
	return out
}

func (o *Output) addLayerSurface(ls *LayerSurface) {
	o.layerSurfaces[ls.Layer()] = append(o.layerSurfaces[ls.Layer()], ls)
}

func (o *Output) removeLayerSurface(ls *LayerSurface) {
	layer := ls.Layer()
	for i, s := range o.layerSurfaces[layer] {
		if s == ls {
			o.layerSurfaces[layer] = append(o.layerSurfaces[layer][:i], o.layerSurfaces[layer][i+1:]...)
			return
		}
	}
}

// Display switches the output's active workspace, per spec.md §4.2.
// The target workspace must currently be inactive.
func (o *Output) Display(ws *Workspace) error {
	if ws.Active() {
		return fmt.Errorf("workspace %q is already active", ws.Name)
	}
	if o.active != nil {
		o.active.SetActive(false)
	}
	o.active = ws
	ws.SetActive(true)
	ws.Arrange()
	return nil
}

// Arrange implements spec.md §4.3's usable-area computation: exclusive
// zones are claimed overlay→top→bottom→background, then the active
// workspace is arranged within what remains.
func (o *Output) Arrange() {
	full := o.box
	remaining := full

	for _, layer := range []Layer{LayerOverlay, LayerTop, LayerBottom, LayerBackground} {
		for _, ls := range o.layerSurfaces[layer] {
			remaining = ls.configureAgainst(full, remaining)
		}
	}

	o.usable = remaining

	if o.active != nil {
		o.active.ArrangeIn(full, remaining)
	}
}

// RequestState applies a new output mode (e.g. for headless/virtual
// outputs) and rearranges, per spec.md §4.3.
func (o *Output) RequestState(box Box) error {
	if o.backend != nil {
		if err := o.backend.RequestState(box); err != nil {
			return err
		}
	}
	o.box = box
	o.Arrange()
	return nil
}

// ScheduleFrame asks the backend to paint the next frame. Per spec.md
// §4.3, the caller is responsible for sending frame_done to the
// surfaces that actually appeared in that frame once the backend
// reports the commit; that bookkeeping is part of the backend
// integration this package does not own.
func (o *Output) ScheduleFrame() {
	if o.backend != nil {
		o.backend.ScheduleFrame()
	}
}

// Destroy implements spec.md §4.3: deactivates the active workspace
// and destroys every workspace. Migrating view containers whose
// output vanished to another output is the caller's responsibility.
func (o *Output) Destroy() {
	if o.active != nil {
		o.active.SetActive(false)
	}
	for _, ws := range o.workspaces {
		ws.Destroy()
	}
	o.workspaces = nil
	o.active = nil
	o.OnDestroy.Emit(o)
}
