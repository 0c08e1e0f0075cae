package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yaenergy/estrogenwl/internal/desktop"
	"github.com/yaenergy/estrogenwl/internal/xkbkeys"
)

// keybindsFile mirrors the on-disk JSON shape from spec.md §6: a
// top-level object with one recognised key, "keybinds", an array of
// objects each carrying "command", "keysym", and a "+"-separated
// "mods" string. DisallowUnknownFields is used when decoding so an
// unrecognised top-level key (or a typo'd field name) is a load-time
// error, not a silently ignored no-op.
type keybindsFile struct {
	Keybinds []keybindEntry `json:"keybinds"`
}

type keybindEntry struct {
	Command string `json:"command"`
	Keysym  string `json:"keysym"`
	Mods    string `json:"mods"`
}

// LoadKeybindsFile strictly parses a keybinds JSON file into a
// *desktop.KeybindTable. Per spec.md §6, an unknown top-level key, an
// unresolvable modifier/keysym name, or an unparseable command halts
// loading on the first error rather than skipping the offending entry.
func LoadKeybindsFile(path string) (*desktop.KeybindTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return desktop.NewKeybindTable(nil), nil
		}
		return nil, fmt.Errorf("reading keybinds file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var file keybindsFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing keybinds file: %w", err)
	}

	binds := make([]desktop.Keybind, 0, len(file.Keybinds))
	for i, entry := range file.Keybinds {
		sym, err := xkbkeys.KeysymFromName(entry.Keysym)
		if err != nil {
			return nil, fmt.Errorf("keybind %d: %w", i, err)
		}

		var mask xkbkeys.Modifier
		for _, name := range strings.Split(entry.Mods, "+") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			m, err := xkbkeys.ModifierFromName(name)
			if err != nil {
				return nil, fmt.Errorf("keybind %d: %w", i, err)
			}
			mask |= m
		}

		cmd, err := desktop.ParseCommand(entry.Command)
		if err != nil {
			return nil, fmt.Errorf("keybind %d: %w", i, err)
		}

		binds = append(binds, desktop.Keybind{Keysym: sym, ModMask: mask, Command: cmd})
	}

	return desktop.NewKeybindTable(binds), nil
}
