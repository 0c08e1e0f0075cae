package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set during build.
	Version = "0.1.0-dev"

	rootCmd = &cobra.Command{
		Use:   "estrogenwl",
		Short: "EstrogenWL - a tiling Wayland compositor",
		Long: `EstrogenWL is a tiling Wayland compositor built on the xdg-shell,
xwayland, and layer-shell protocols, with an ext-workspace/cosmic-workspace
virtual desktop model and wlr-foreign-toplevel-management bridging.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.AddCommand(runCmd)
}
