package desktop

// ForeignToplevelSink is the narrow wire contract this package needs
// from whichever foreign-toplevel protocol is bound — legacy
// wlr-foreign-toplevel-management or ext-foreign-toplevel-list, both
// out of scope per spec.md §1.
type ForeignToplevelSink interface {
	BroadcastTitle(h *ForeignToplevelHandle, title string)
	BroadcastAppID(h *ForeignToplevelHandle, appID string)
	BroadcastState(h *ForeignToplevelHandle, activated, fullscreen bool)
	BroadcastOutputEnter(h *ForeignToplevelHandle, o *Output)
	BroadcastOutputLeave(h *ForeignToplevelHandle, o *Output)
	BroadcastClosed(h *ForeignToplevelHandle)
	BroadcastDone(h *ForeignToplevelHandle)
}

// ForeignToplevelHandle bridges one mapped view-container to every
// foreign-toplevel protocol object clients have bound for it.
type ForeignToplevelHandle struct {
	container *Container
	sink      ForeignToplevelSink

	lastOutput *Output
}

// ForeignToplevelManager creates and tears down handles as views map
// and unmap, and translates the handle's external requests back onto
// the domain model.
type ForeignToplevelManager struct {
	sink    ForeignToplevelSink
	seat    *Seat
	handles map[*Container]*ForeignToplevelHandle
}

// NewForeignToplevelManager creates a manager broadcasting through
// sink and activating/raising through seat.
func NewForeignToplevelManager(sink ForeignToplevelSink, seat *Seat) *ForeignToplevelManager {
	return &ForeignToplevelManager{sink: sink, seat: seat, handles: make(map[*Container]*ForeignToplevelHandle)}
}

// HandleMapped creates a handle for a newly-mapped view container and
// publishes its initial title/app-id/output.
func (m *ForeignToplevelManager) HandleMapped(c *Container) *ForeignToplevelHandle {
	if c == nil || !c.IsView() || c.View() == nil {
		return nil
	}
	h := &ForeignToplevelHandle{container: c, sink: m.sink}
	m.handles[c] = h

	v := c.View()
	m.sink.BroadcastTitle(h, v.Title())
	m.sink.BroadcastAppID(h, v.AppID())
	m.sink.BroadcastState(h, false, v.Fullscreen())
	if o := v.Output(); o != nil {
		h.lastOutput = o
		m.sink.BroadcastOutputEnter(h, o)
	}
	m.sink.BroadcastDone(h)
	return h
}

// HandleUnmapped destroys c's handle, per spec.md §4.6: a closed
// handle is never reused for a later map of the same container.
func (m *ForeignToplevelManager) HandleUnmapped(c *Container) {
	h, ok := m.handles[c]
	if !ok {
		return
	}
	delete(m.handles, c)
	m.sink.BroadcastClosed(h)
}

// NotifyOutputChanged bridges a view's output migration to the
// protocol's enter/leave pair.
func (m *ForeignToplevelManager) NotifyOutputChanged(c *Container, newOutput *Output) {
	h, ok := m.handles[c]
	if !ok {
		return
	}
	if h.lastOutput != nil && h.lastOutput != newOutput {
		m.sink.BroadcastOutputLeave(h, h.lastOutput)
	}
	if newOutput != nil && newOutput != h.lastOutput {
		m.sink.BroadcastOutputEnter(h, newOutput)
	}
	h.lastOutput = newOutput
	m.sink.BroadcastDone(h)
}

// NotifyTitleChanged re-publishes a view's title.
func (m *ForeignToplevelManager) NotifyTitleChanged(c *Container) {
	if h, ok := m.handles[c]; ok && c.View() != nil {
		m.sink.BroadcastTitle(h, c.View().Title())
		m.sink.BroadcastDone(h)
	}
}

// RequestActivate handles a client's request_activate on a handle by
// focusing the underlying container, per spec.md §4.7's activation
// contract.
func (m *ForeignToplevelManager) RequestActivate(h *ForeignToplevelHandle) {
	if h == nil || m.seat == nil {
		return
	}
	m.seat.FocusContainer(h.container)
}

// RequestFullscreen handles a client's request_fullscreen on a handle.
func (m *ForeignToplevelManager) RequestFullscreen(h *ForeignToplevelHandle, enabled bool) {
	if h == nil || h.container.View() == nil {
		return
	}
	if ev := h.container.View().Events(); ev != nil && ev.RequestFullscreen != nil {
		ev.RequestFullscreen(enabled, h.container.View().Output())
	}
}

// RequestClose handles a client's request_close on a handle.
func (m *ForeignToplevelManager) RequestClose(h *ForeignToplevelHandle) {
	if h == nil || h.container.View() == nil {
		return
	}
	h.container.View().SendClose()
}
