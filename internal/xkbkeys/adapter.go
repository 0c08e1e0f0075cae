package xkbkeys

// KeymapAdapter satisfies desktop.Keymap (Keysyms as []uint32) on top
// of a *Keymap (Keysyms as the named Keysym type), keeping the cgo
// dependency out of the desktop package's own interface while still
// letting cmd wire a real xkb keymap into it.
type KeymapAdapter struct {
	Keymap *Keymap
}

func (a KeymapAdapter) UpdateMask(depressed, latched, locked, group uint32) {
	a.Keymap.UpdateMask(depressed, latched, locked, group)
}

func (a KeymapAdapter) KeysymsForKeycode(evdevCode uint32) []uint32 {
	syms := a.Keymap.KeysymsForKeycode(evdevCode)
	out := make([]uint32, len(syms))
	for i, s := range syms {
		out[i] = uint32(s)
	}
	return out
}
