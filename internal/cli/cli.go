// SPDX-License-Identifier: MIT

// Package cli implements the propgraph command-line interface.
//
// Commands:
//   - demo:  build the v1 -> v2 -> v3 toy graph, print it and walk it
//   - show:  load a seed document and print its structure and statistics
//   - query: load a seed document and run a traversal over it
//   - dot:   export a seed document as Graphviz DOT or SVG
//   - gen:   generate a fixture topology (path, cycle, star, complete, sparse)
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through context.Context and is also handed to the graph, so every
// mutation is visible at debug level.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

// Execute runs the propgraph CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "propgraph",
		Short:         "propgraph is an in-memory property graph toolbox",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newDOTCmd())
	root.AddCommand(newGenCmd())

	return root
}
