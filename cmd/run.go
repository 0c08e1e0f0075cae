package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaenergy/estrogenwl/internal/config"
	"github.com/yaenergy/estrogenwl/internal/desktop"
	"github.com/yaenergy/estrogenwl/internal/procspawn"
	"github.com/yaenergy/estrogenwl/internal/wlog"
	"github.com/yaenergy/estrogenwl/internal/xkbkeys"
)

var logLevel string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the compositor",
	Long: `Run starts EstrogenWL: it loads configuration, keybinds and the
environment file, compiles the keyboard layout, and starts the
compositor's event loop. Binding the resulting desktop model to an
actual Wayland display and scene-graph backend is the embedder's job;
this command wires the domain model up and hands control to it.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func runRun(cmd *cobra.Command, args []string) error {
	wlog.SetLevel(logLevel)

	if err := config.Init(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Get()

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	keybinds, err := config.LoadKeybindsFile(filepath.Join(dir, "keybinds.json"))
	if err != nil {
		return fmt.Errorf("loading keybinds: %w", err)
	}

	env, err := config.LoadEnvironmentFile(filepath.Join(dir, "environment"))
	if err != nil {
		return fmt.Errorf("loading environment file: %w", err)
	}
	wlog.Debugf("loaded %d environment variables", len(env))

	// A real backend assigns the actual wayland/X11 socket names; until
	// one is wired in, autostart/keybind children still need *a*
	// WAYLAND_DISPLAY to inherit.
	if err := config.ExportSessionEnv(cfg, "wayland-1", ":1"); err != nil {
		return fmt.Errorf("exporting session environment: %w", err)
	}

	keymap, err := xkbkeys.NewKeymap(cfg.Keyboard.Layout)
	if err != nil {
		return fmt.Errorf("compiling keyboard layout %q: %w", cfg.Keyboard.Layout, err)
	}
	defer keymap.Destroy()

	d := desktop.New(keybinds, noopWorkspaceSink{}, noopForeignSink{})

	kb := desktop.NewKeyboard("default", xkbkeys.KeymapAdapter{Keymap: keymap},
		cfg.Keyboard.RepeatRate, cfg.Keyboard.RepeatDelay)
	d.Seat.AddKeyboard(kb)

	if cfg.Autostart.Enabled {
		if err := runAutostart(dir); err != nil {
			wlog.Warnf("autostart: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		d.Loop.Stop()
	}()

	wlog.Infof("estrogenwl starting (xwayland=%v)", cfg.Xwayland.Enabled)
	d.Loop.Run()
	return nil
}

func runAutostart(configDir string) error {
	script := filepath.Join(configDir, "autostart.sh")
	return procspawn.ShellCommand(script)
}

// noopWorkspaceSink/noopForeignSink satisfy desktop's protocol sink
// interfaces when no real wire protocol is bound yet; a backend
// integration replaces these with ones that actually talk to clients.
type noopWorkspaceSink struct{}

func (noopWorkspaceSink) CreateWorkspace(output *desktop.Output, name string) *desktop.Workspace {
	return nil
}
func (noopWorkspaceSink) BroadcastState(ws *desktop.Workspace, state desktop.WorkspaceState) {}
func (noopWorkspaceSink) BroadcastRemoved(ws *desktop.Workspace)                              {}
func (noopWorkspaceSink) BroadcastDone()                                                      {}

type noopForeignSink struct{}

func (noopForeignSink) BroadcastTitle(h *desktop.ForeignToplevelHandle, title string) {}
func (noopForeignSink) BroadcastAppID(h *desktop.ForeignToplevelHandle, appID string) {}
func (noopForeignSink) BroadcastState(h *desktop.ForeignToplevelHandle, activated, fullscreen bool) {
}
func (noopForeignSink) BroadcastOutputEnter(h *desktop.ForeignToplevelHandle, o *desktop.Output) {}
func (noopForeignSink) BroadcastOutputLeave(h *desktop.ForeignToplevelHandle, o *desktop.Output) {}
func (noopForeignSink) BroadcastClosed(h *desktop.ForeignToplevelHandle)                         {}
func (noopForeignSink) BroadcastDone(h *desktop.ForeignToplevelHandle)                           {}
