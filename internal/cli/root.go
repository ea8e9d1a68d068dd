// Package cli implements the hyperoxo command line interface: interactive
// play against the built-in strategies and board structure inspection.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperoxo",
		Short: "Play d-dimensional noughts and crosses",
		Long: `hyperoxo plays noughts and crosses on the d-dimensional board h(d, n):
n cells along each of d axes, with every maximal geometric line a winning
line. Supports misère play, multi-move turns and automated opponents.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
