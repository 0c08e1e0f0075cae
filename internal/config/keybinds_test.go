package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKeybindsFileValid(t *testing.T) {
	path := writeTemp(t, "keybinds.json", `{
		"keybinds": [
			{"mods": "logo", "keysym": "Return", "command": "exec foot"},
			{"mods": "logo+shift", "keysym": "q", "command": "kill"},
			{"mods": "logo", "keysym": "e", "command": "exit"}
		]
	}`)

	table, err := LoadKeybindsFile(path)
	require.NoError(t, err)
	require.NotNil(t, table)
}

func TestLoadKeybindsFileRejectsUnknownTopLevelKey(t *testing.T) {
	path := writeTemp(t, "keybinds.json", `{"bindings": []}`)

	_, err := LoadKeybindsFile(path)
	assert.Error(t, err)
}

func TestLoadKeybindsFileRejectsUnknownModifier(t *testing.T) {
	path := writeTemp(t, "keybinds.json", `{"keybinds": [{"mods": "hyper", "keysym": "Return", "command": "exit"}]}`)

	_, err := LoadKeybindsFile(path)
	assert.Error(t, err)
}

func TestLoadKeybindsFileRejectsBadCommand(t *testing.T) {
	path := writeTemp(t, "keybinds.json", `{"keybinds": [{"mods": "logo", "keysym": "Return", "command": "frobnicate"}]}`)

	_, err := LoadKeybindsFile(path)
	assert.Error(t, err)
}

func TestLoadKeybindsFileMissingIsEmptyTable(t *testing.T) {
	table, err := LoadKeybindsFile(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	_, ok := table.Match(0, 0)
	assert.False(t, ok)
}
