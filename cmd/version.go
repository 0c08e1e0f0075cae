package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Commit and Date are set by the build, alongside Version in root.go.
	Commit string
	Date   string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("estrogenwl %s\n", Version)
		fmt.Printf("commit: %s\n", Commit)
		fmt.Printf("built: %s\n", Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
