package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPrefersXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/xdg/EstrogenWL", dir)
}

func TestDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/enby")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/home/enby/.config/EstrogenWL", dir)
}

func TestDirErrorsWithoutAnyConfigEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	_, err := Dir()
	assert.Error(t, err)
}

func TestGetDefaultsBeforeInit(t *testing.T) {
	cfg := Get()
	assert.Equal(t, DefaultConfig.Keyboard.Layout, cfg.Keyboard.Layout)
	assert.Equal(t, 25, cfg.Keyboard.RepeatRate)
	assert.Equal(t, 600, cfg.Keyboard.RepeatDelay)
}

func TestExportSessionEnvSetsDisplayOnlyWhenXwaylandEnabled(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", "")

	cfg := DefaultConfig
	cfg.Xwayland.Enabled = false
	require.NoError(t, ExportSessionEnv(&cfg, "wayland-2", ":5"))
	assert.Equal(t, "wayland-2", os.Getenv("WAYLAND_DISPLAY"))
	assert.Equal(t, "", os.Getenv("DISPLAY"))

	cfg.Xwayland.Enabled = true
	require.NoError(t, ExportSessionEnv(&cfg, "wayland-2", ":5"))
	assert.Equal(t, ":5", os.Getenv("DISPLAY"))
}
