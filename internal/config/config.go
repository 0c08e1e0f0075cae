// Package config handles layered configuration using Viper, plus the
// compositor's own strictly-parsed keybinds and environment files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the hierarchical configuration consumed at startup. The
// keybinds and environment files are parsed separately (see keybinds.go,
// environment.go): their strict "unknown key halts parsing" semantics
// don't fit Viper's merge-and-ignore-unknown-keys model.
type Config struct {
	Keyboard  KeyboardConfig  `mapstructure:"keyboard"`
	Xwayland  XwaylandConfig  `mapstructure:"xwayland"`
	Autostart AutostartConfig `mapstructure:"autostart"`
}

// KeyboardConfig carries the xkb repeat/layout defaults from spec.md §6.
type KeyboardConfig struct {
	RepeatRate  int    `mapstructure:"repeat_rate"`
	RepeatDelay int    `mapstructure:"repeat_delay"`
	Layout      string `mapstructure:"layout"`
}

// XwaylandConfig controls whether the X11 bridge is started lazily.
type XwaylandConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AutostartConfig controls whether autostart.sh runs on startup.
type AutostartConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig matches the defaults spec.md §6 mandates.
var DefaultConfig = Config{
	Keyboard: KeyboardConfig{
		RepeatRate:  25,
		RepeatDelay: 600,
		Layout:      "us",
	},
	Xwayland:  XwaylandConfig{Enabled: true},
	Autostart: AutostartConfig{Enabled: true},
}

var cfg *Config

// Init loads config.toml from the EstrogenWL config directory, falling
// back silently to DefaultConfig when no file is present.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	dir, err := Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	viper.AddConfigPath(dir)

	viper.SetDefault("keyboard", DefaultConfig.Keyboard)
	viper.SetDefault("xwayland", DefaultConfig.Xwayland)
	viper.SetDefault("autostart", DefaultConfig.Autostart)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return nil
}

// Get returns the current configuration, defaulting if Init was never called.
func Get() *Config {
	if cfg == nil {
		d := DefaultConfig
		return &d
	}
	return cfg
}

// ExportSessionEnv sets WAYLAND_DISPLAY, and DISPLAY when xwayland is
// enabled, in the process environment before autostart or keybind
// children are forked, per spec.md §6. Children launched via
// internal/procspawn inherit the process environment, so this must
// run before the first one is spawned.
func ExportSessionEnv(cfg *Config, waylandDisplay, x11Display string) error {
	if err := os.Setenv("WAYLAND_DISPLAY", waylandDisplay); err != nil {
		return fmt.Errorf("setting WAYLAND_DISPLAY: %w", err)
	}
	if cfg.Xwayland.Enabled && x11Display != "" {
		if err := os.Setenv("DISPLAY", x11Display); err != nil {
			return fmt.Errorf("setting DISPLAY: %w", err)
		}
	}
	return nil
}

// Dir resolves $XDG_CONFIG_HOME/EstrogenWL or $HOME/.config/EstrogenWL,
// per spec.md §6.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "EstrogenWL"), nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("neither XDG_CONFIG_HOME nor HOME is set")
	}
	return filepath.Join(home, ".config", "EstrogenWL"), nil
}
