package desktop

import (
	"fmt"
	"strings"

	"github.com/yaenergy/estrogenwl/internal/xkbkeys"
)

// CommandVerb is the closed set of keybind command verbs spec.md §4.7
// defines.
type CommandVerb int

const (
	CommandExec CommandVerb = iota
	CommandExit
	CommandKill
)

// Command is a parsed keybind action: a verb plus, for exec, the
// remaining argument text passed to the shell verbatim.
type Command struct {
	Verb CommandVerb
	Arg  string
}

// ParseCommand parses a keybind command string, per spec.md §4.7's
// three verbs. The config loader (internal/config/keybinds.go) calls
// this while validating a keybinds file and rejects the whole file on
// the first unparseable command, so an unknown verb never reaches
// KeybindTable at runtime — Seat.runCommand's default case is
// defence in depth, not the primary rejection path.
func ParseCommand(s string) (Command, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(s), " ")
	switch verb {
	case "exec":
		arg := strings.TrimSpace(rest)
		if arg == "" {
			return Command{}, fmt.Errorf("exec requires an argument")
		}
		return Command{Verb: CommandExec, Arg: arg}, nil
	case "exit":
		return Command{Verb: CommandExit}, nil
	case "kill":
		return Command{Verb: CommandKill}, nil
	default:
		return Command{}, fmt.Errorf("unknown keybind command %q", verb)
	}
}

// Keybind is a (keysym, modifier mask) trigger bound to a command.
type Keybind struct {
	Keysym  xkbkeys.Keysym
	ModMask xkbkeys.Modifier
	Command Command
}

// KeybindTable is an ordered set of bindings; Match uses first-match
// wins, per spec.md §4.7, so earlier entries in a keybinds file take
// priority over later ones that trigger on the same chord.
type KeybindTable struct {
	binds []Keybind
}

// NewKeybindTable builds a table from binds, preserving order.
func NewKeybindTable(binds []Keybind) *KeybindTable {
	return &KeybindTable{binds: append([]Keybind(nil), binds...)}
}

// Match returns the first keybind whose keysym and modifier mask
// exactly match sym/mods, if any.
func (t *KeybindTable) Match(sym uint32, mods uint32) (Keybind, bool) {
	for _, b := range t.binds {
		if uint32(b.Keysym) == sym && uint32(b.ModMask) == mods {
			return b, true
		}
	}
	return Keybind{}, false
}
