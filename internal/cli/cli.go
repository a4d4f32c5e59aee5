// Package cli implements the panelmap command-line interface.
//
// This package provides commands for inspecting pixel-mapper coordinate
// transforms: listing the available mappers, computing visible canvas sizes,
// mapping individual coordinates, exploring a mapping interactively, drawing
// wiring diagrams, and serving the whole thing over HTTP. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - list: Show all registered pixel mappers and their parameter syntax
//   - size: Compute the visible canvas size for a topology and mapper
//   - map: Map visible coordinates to physical matrix coordinates
//   - explore: Interactive TUI for walking the visible canvas
//   - wiring: Emit a Graphviz wiring diagram of the panel chains
//   - serve: HTTP API exposing mappers, sizes, and coordinate mapping
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command and the mapper registry
// share one diagnostic stream.
//
// # Example
//
//	import "github.com/ledgrid/panelmap/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/buildinfo"
)

// appName is the application name used for display and the binary.
const appName = "panelmap"

// Execute runs the panelmap CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	return RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the root command with all subcommands attached.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "panelmap maps visible pixel coordinates onto wired LED panels",
		Long: `panelmap computes how a logical drawing canvas folds onto a physically
wired LED panel grid. Panels can be chained, stacked in parallel, rotated,
mirrored, reordered, or folded into U-shapes; panelmap resolves a named
pixel-mapper sequence against the wiring topology and reports the resulting
coordinate transform.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newListCmd())
	root.AddCommand(newSizeCmd())
	root.AddCommand(newMapCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newWiringCmd())
	root.AddCommand(newServeCmd())

	return root
}
