// Package xkbkeys resolves xkb keysym names and translates evdev
// keycodes to keysyms under the compositor's current keyboard layout.
// There is no maintained pure-Go xkbcommon equivalent in the Go
// ecosystem, so (matching how gioui's Linux/Wayland backend resolves
// keysyms) this wraps libxkbcommon directly via cgo.
package xkbkeys

/*
#cgo LDFLAGS: -lxkbcommon
#include <stdlib.h>
#include <xkbcommon/xkbcommon.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Keysym is an xkb keysym value, e.g. the value of XKB_KEY_F2.
type Keysym uint32

// Modifier is a bit in the compositor's fixed modifier mask, ordered to
// match wlr_keyboard's modifier bit layout (spec.md §6): shift, caps,
// ctrl, alt, mod2, mod3, logo, mod5.
type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModCaps
	ModCtrl
	ModAlt
	ModMod2
	ModMod3
	ModLogo
	ModMod5
)

var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"caps":  ModCaps,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"mod2":  ModMod2,
	"mod3":  ModMod3,
	"logo":  ModLogo,
	"mod5":  ModMod5,
}

// ModifierFromName maps one of the eight config-file modifier tokens to
// its bit. It returns an error for anything else (spec.md §6).
func ModifierFromName(name string) (Modifier, error) {
	m, ok := modifierNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown modifier %q", name)
	}
	return m, nil
}

// KeysymFromName resolves an xkb key name such as "F2" or "Return" to
// its keysym value, matching xkb_keysym_from_name's case-sensitive
// lookup with a case-insensitive fallback.
func KeysymFromName(name string) (Keysym, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	sym := C.xkb_keysym_from_name(cname, C.XKB_KEYSYM_NO_FLAGS)
	if sym == C.XKB_KEY_NoSymbol {
		sym = C.xkb_keysym_from_name(cname, C.XKB_KEYSYM_CASE_INSENSITIVE)
	}
	if sym == C.XKB_KEY_NoSymbol {
		return 0, fmt.Errorf("unknown keysym name %q", name)
	}
	return Keysym(sym), nil
}

// Keymap compiles an xkb keymap for one RMLVO layout and tracks the
// live modifier/keysym translation state for a seat's keyboard.
type Keymap struct {
	ctx    *C.struct_xkb_context
	keymap *C.struct_xkb_keymap
	state  *C.struct_xkb_state
}

// NewKeymap compiles a keymap for the given xkb layout name (e.g. "us").
func NewKeymap(layout string) (*Keymap, error) {
	ctx := C.xkb_context_new(C.XKB_CONTEXT_NO_FLAGS)
	if ctx == nil {
		return nil, fmt.Errorf("xkb_context_new failed")
	}

	var names C.struct_xkb_rule_names
	clayout := C.CString(layout)
	defer C.free(unsafe.Pointer(clayout))
	names.layout = clayout

	km := C.xkb_keymap_new_from_names(ctx, &names, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if km == nil {
		C.xkb_context_unref(ctx)
		return nil, fmt.Errorf("failed to compile xkb keymap for layout %q", layout)
	}

	st := C.xkb_state_new(km)
	if st == nil {
		C.xkb_keymap_unref(km)
		C.xkb_context_unref(ctx)
		return nil, fmt.Errorf("xkb_state_new failed")
	}

	return &Keymap{ctx: ctx, keymap: km, state: st}, nil
}

// Destroy releases the underlying xkb objects.
func (k *Keymap) Destroy() {
	if k.state != nil {
		C.xkb_state_unref(k.state)
		k.state = nil
	}
	if k.keymap != nil {
		C.xkb_keymap_unref(k.keymap)
		k.keymap = nil
	}
	if k.ctx != nil {
		C.xkb_context_unref(k.ctx)
		k.ctx = nil
	}
}

// UpdateMask feeds a new depressed/latched/locked modifier state into
// xkb, mirroring wl_keyboard.modifiers.
func (k *Keymap) UpdateMask(depressed, latched, locked, group uint32) {
	C.xkb_state_update_mask(k.state,
		C.xkb_mod_mask_t(depressed), C.xkb_mod_mask_t(latched), C.xkb_mod_mask_t(locked),
		0, 0, C.xkb_layout_index_t(group))
}

// KeysymsForKeycode resolves an evdev keycode (libinput convention: xkb
// keycode = evdev code + 8) to the keysym(s) it currently produces.
func (k *Keymap) KeysymsForKeycode(evdevCode uint32) []Keysym {
	keycode := C.xkb_keycode_t(evdevCode + 8)

	var syms *C.xkb_keysym_t
	n := C.xkb_state_key_get_syms(k.state, keycode, &syms)
	if n <= 0 {
		return nil
	}

	out := make([]Keysym, 0, int(n))
	slice := unsafe.Slice(syms, int(n))
	for _, s := range slice {
		out = append(out, Keysym(s))
	}
	return out
}
