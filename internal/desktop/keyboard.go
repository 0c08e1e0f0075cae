package desktop

import "github.com/yaenergy/estrogenwl/internal/wlsignal"

// Keymap is the narrow xkb contract this package needs from
// internal/xkbkeys (kept as an interface here so desktop's tests can
// supply a fake keymap; the package still imports xkbkeys, and so
// cgo/libxkbcommon, for its Keysym and Modifier types).
type Keymap interface {
	UpdateMask(depressed, latched, locked, group uint32)
	KeysymsForKeycode(evdevCode uint32) []uint32
}

// Keyboard is one input device in the seat's keyboard set (spec.md §3).
type Keyboard struct {
	Name string

	RepeatRateHz  int
	RepeatDelayMs int

	keymap Keymap

	mods uint32 // currently depressed modifier bitmask, xkbkeys.Modifier-compatible

	OnKey wlsignal.Signal[KeyEvent]
}

// KeyEvent is a single key press/release translated to keysyms.
type KeyEvent struct {
	Keycode  uint32
	Keysyms  []uint32
	Pressed  bool
	Modifiers uint32
}

// NewKeyboard creates a keyboard using the given compiled keymap and
// the repeat defaults from spec.md §6.
func NewKeyboard(name string, keymap Keymap, repeatRateHz, repeatDelayMs int) *Keyboard {
	return &Keyboard{Name: name, keymap: keymap, RepeatRateHz: repeatRateHz, RepeatDelayMs: repeatDelayMs}
}

// SetModifiers updates the tracked modifier mask and feeds it to xkb.
func (k *Keyboard) SetModifiers(depressed, latched, locked, group uint32) {
	k.mods = depressed | latched | locked
	if k.keymap != nil {
		k.keymap.UpdateMask(depressed, latched, locked, group)
	}
}

func (k *Keyboard) Modifiers() uint32 { return k.mods }

// HandleKey translates an evdev keycode to keysyms under the current
// modifier state and emits OnKey. It returns the keysyms produced, for
// callers that want to try keybind dispatch before emitting further.
func (k *Keyboard) HandleKey(evdevCode uint32, pressed bool) []uint32 {
	var syms []uint32
	if k.keymap != nil {
		syms = k.keymap.KeysymsForKeycode(evdevCode)
	}
	k.OnKey.Emit(KeyEvent{Keycode: evdevCode, Keysyms: syms, Pressed: pressed, Modifiers: k.mods})
	return syms
}
