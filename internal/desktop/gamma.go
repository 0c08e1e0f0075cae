package desktop

import "fmt"

// GammaControlBackend is the narrow contract this package needs from
// the output backend's gamma LUT plumbing (out of scope per spec.md
// §1: actual CRTC programming lives behind this interface).
type GammaControlBackend interface {
	GammaSize() int
	SetGamma(r, g, b []uint16) error
}

// GammaHandle is one client's wlr-gamma-control-unstable-v1 binding to
// an output, per SPEC_FULL.md's gamma-control supplement.
type GammaHandle struct {
	output    *Output
	invalid   bool
}

func (h *GammaHandle) Invalid() bool { return h.invalid }

// GammaControlManager tracks the live gamma handles per output and
// invalidates them when their output is destroyed.
type GammaControlManager struct {
	backends map[*Output]GammaControlBackend
	handles  map[*Output][]*GammaHandle
}

// NewGammaControlManager creates an empty manager.
func NewGammaControlManager() *GammaControlManager {
	return &GammaControlManager{
		backends: make(map[*Output]GammaControlBackend),
		handles:  make(map[*Output][]*GammaHandle),
	}
}

// RegisterOutput binds an output to the backend that programs its
// gamma LUT and arranges for every handle on that output to be
// invalidated when it is destroyed.
func (m *GammaControlManager) RegisterOutput(o *Output, backend GammaControlBackend) {
	m.backends[o] = backend
	o.OnDestroy.Add(func(out *Output) {
		for _, h := range m.handles[out] {
			h.invalid = true
		}
		delete(m.handles, out)
		delete(m.backends, out)
	})
}

// GammaSize reports the LUT size a client must size its ramps to,
// or 0 if o has no registered backend.
func (m *GammaControlManager) GammaSize(o *Output) int {
	if b, ok := m.backends[o]; ok {
		return b.GammaSize()
	}
	return 0
}

// NewHandle creates a gamma handle bound to o.
func (m *GammaControlManager) NewHandle(o *Output) *GammaHandle {
	h := &GammaHandle{output: o}
	m.handles[o] = append(m.handles[o], h)
	return h
}

// SetGamma validates r/g/b against the output's LUT size and, if they
// match, programs the backend. A handle already invalidated by its
// output's destruction always fails.
func (m *GammaControlManager) SetGamma(h *GammaHandle, r, g, b []uint16) error {
	if h.invalid {
		return fmt.Errorf("gamma handle invalidated: output destroyed")
	}
	backend, ok := m.backends[h.output]
	if !ok {
		return fmt.Errorf("output has no gamma backend")
	}
	size := backend.GammaSize()
	if len(r) != size || len(g) != size || len(b) != size {
		return fmt.Errorf("gamma ramp size %d/%d/%d does not match output size %d", len(r), len(g), len(b), size)
	}
	return backend.SetGamma(r, g, b)
}

// Release removes h from its output's handle list without
// invalidating it further (a client-initiated release, as opposed to
// the output-destroy path above).
func (m *GammaControlManager) Release(h *GammaHandle) {
	list := m.handles[h.output]
	for i, hh := range list {
		if hh == h {
			m.handles[h.output] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
