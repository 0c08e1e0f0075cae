package desktop

import (
	"github.com/yaenergy/estrogenwl/internal/procspawn"
	"github.com/yaenergy/estrogenwl/internal/wlog"
)

// FocusTarget is one of nil, *LayerSurface, or *Container (always a
// view container) — the closed set of things keyboard focus can rest
// on, per spec.md §4.7/§8 invariant 6.
type FocusTarget = any

// Seat groups the keyboards, pointer/cursor and focus state described
// in spec.md §3. There is exactly one seat in this specification.
type Seat struct {
	Keyboards []*Keyboard
	Cursor    *Cursor

	keybinds *KeybindTable

	// OnExitRequested is invoked for the `exit` keybind command
	// (spec.md §4.7). The seat has no notion of the main loop; wiring
	// this to the loop's stop is the caller's job.
	OnExitRequested func()

	focus         FocusTarget
	previousFocus FocusTarget
}

// NewSeat creates a seat with the given keybind table. kt may be nil,
// in which case HandleKey never matches and every key is forwarded.
func NewSeat(kt *KeybindTable) *Seat {
	s := &Seat{keybinds: kt}
	s.Cursor = NewCursor(s)
	return s
}

func (s *Seat) AddKeyboard(k *Keyboard) {
	s.Keyboards = append(s.Keyboards, k)
	k.OnKey.Add(func(ev KeyEvent) {
		if !ev.Pressed {
			return
		}
		s.dispatchKeybind(ev)
	})
}

// SetKeybinds replaces the seat's keybind table (spec.md §6 reload).
func (s *Seat) SetKeybinds(kt *KeybindTable) { s.keybinds = kt }

// Focus returns the current focus target: nil, *LayerSurface, or a
// view *Container.
func (s *Seat) Focus() FocusTarget { return s.focus }

// dispatchKeybind scans the keybind table for a match against any
// keysym produced by this key event under its modifier state. The
// first match wins, per spec.md §4.7; an unmatched key is left for the
// caller to forward to the focused client.
func (s *Seat) dispatchKeybind(ev KeyEvent) bool {
	if s.keybinds == nil {
		return false
	}
	for _, sym := range ev.Keysyms {
		if bind, ok := s.keybinds.Match(sym, ev.Modifiers); ok {
			s.runCommand(bind.Command)
			return true
		}
	}
	return false
}

// runCommand dispatches a keybind's verb, per spec.md §4.7: `exec`
// launches a detached process, `exit` stops the compositor, `kill`
// closes the focused view. Unknown verbs were rejected at keybind
// table load time, so runCommand only has to handle the three.
func (s *Seat) runCommand(cmd Command) {
	switch cmd.Verb {
	case CommandExec:
		if err := procspawn.ShellCommand(cmd.Arg); err != nil {
			wlog.Errorf("keybind exec %q: %v", cmd.Arg, err)
		}
	case CommandExit:
		if s.OnExitRequested != nil {
			s.OnExitRequested()
		}
	case CommandKill:
		if c, ok := s.focus.(*Container); ok && c != nil && c.View() != nil {
			c.View().SendClose()
		}
	default:
		wlog.Errorf("keybind: unknown command verb %q", cmd.Verb)
	}
}

// tryFocusLayerSurface gives ls keyboard focus, deactivating whatever
// previously held it. Per spec.md §4.4/§4.7, an exclusive layer
// surface's focus pre-empts a view-container's focus. While an
// exclusive top/overlay surface holds focus, ls takes it only if ls is
// on a strictly higher layer. Focus is not restored to the earlier
// target when a layer surface releases it; LayerSurface.Unmap hands it
// to the output's next exclusive layer surface, if any.
func (s *Seat) tryFocusLayerSurface(ls *LayerSurface) {
	if s.focus == FocusTarget(ls) {
		return
	}
	if cur, ok := s.focus.(*LayerSurface); ok && s.exclusiveFocusActive() && ls.Layer() <= cur.Layer() {
		return
	}
	s.deactivateCurrent()
	s.previousFocus = s.focus
	s.focus = ls
}

// exclusiveFocusActive reports whether the seat's current focus is an
// exclusive layer surface on the top or overlay layer. Per spec.md
// §4.7/§8 invariant 6, such a surface holds focus until it is unmapped
// or a strictly higher-layer exclusive surface claims it; a
// view-container focus change must not displace it.
func (s *Seat) exclusiveFocusActive() bool {
	ls, ok := s.focus.(*LayerSurface)
	if !ok || ls == nil {
		return false
	}
	if ls.KeyboardInteractivity() != KeyboardInteractivityExclusive {
		return false
	}
	return ls.Layer() == LayerTop || ls.Layer() == LayerOverlay
}

// FocusContainer gives keyboard focus to a view container, implementing
// spec.md §4.7's "Activating a view-container": the previous focus
// target is deactivated, the workspace is switched to if it isn't
// already displayed, the container's scene subtree is raised, and the
// view is told it is activated.
func (s *Seat) FocusContainer(c *Container) {
	if c == nil || !c.IsView() {
		return
	}
	if s.focus == FocusTarget(c) {
		return
	}
	if s.exclusiveFocusActive() {
		return
	}

	s.deactivateCurrent()

	if ws := c.Workspace(); ws != nil && !ws.Active() {
		if out := ws.Output(); out != nil {
			if err := out.Display(ws); err != nil {
				wlog.Debugf("focus: %v", err)
			}
		}
	}

	if c.Scene() != nil {
		c.Scene().RaiseToTop()
	}
	if v := c.View(); v != nil {
		v.SetActivated(true)
	}

	s.previousFocus = s.focus
	s.focus = c
}

// ClearFocus deactivates whatever currently holds focus and leaves the
// seat with no focus target.
func (s *Seat) ClearFocus() {
	s.deactivateCurrent()
	s.previousFocus = s.focus
	s.focus = nil
}

func (s *Seat) deactivateCurrent() {
	switch t := s.focus.(type) {
	case *Container:
		if t != nil && t.View() != nil {
			t.View().SetActivated(false)
		}
	case *LayerSurface:
		// layer surfaces have no activated flag; nothing to clear.
	}
}

// TiledInsertionParent implements spec.md §4.6's insertion-point
// preference for a newly tiled view on ws: (a) the parent of the
// currently tiled focused view, (b) the parent of the previously
// tiled focused view, (c) ws's root tiling container.
func (s *Seat) TiledInsertionParent(ws *Workspace) *Container {
	if p := tiledFocusParent(s.focus, ws); p != nil {
		return p
	}
	if p := tiledFocusParent(s.previousFocus, ws); p != nil {
		return p
	}
	return ws.Root()
}

// tiledFocusParent returns target's parent tree-container if target is
// a tiled view container on ws, or nil if it isn't eligible.
func tiledFocusParent(target FocusTarget, ws *Workspace) *Container {
	c, ok := target.(*Container)
	if !ok || c == nil || !c.IsView() || c.Workspace() != ws {
		return nil
	}
	if c.View() == nil || !c.View().Tiled() {
		return nil
	}
	return c.Parent()
}

// NotifyViewDestroyed clears focus when the focused view is destroyed,
// and drops c as the previous focus target, so a dangling *Container
// is never left as the focus. Focus is not moved to another target.
func (s *Seat) NotifyViewDestroyed(c *Container) {
	if s.focus == FocusTarget(c) {
		s.focus = nil
	}
	if s.previousFocus == FocusTarget(c) {
		s.previousFocus = nil
	}
}
