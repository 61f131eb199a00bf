// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/propgraph/render"
)

func newDOTCmd() *cobra.Command {
	var (
		output   string
		svg      bool
		labelKey string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "dot <seed.toml>",
		Short: "Export a seed graph as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			data := []byte(render.DOT(g, render.Options{LabelKey: labelKey, Detailed: detailed}))
			if svg {
				loggerFromContext(ctx).Debug("rendering svg", "bytes", len(data))
				if data, err = render.SVG(ctx, string(data)); err != nil {
					return err
				}
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVar(&labelKey, "label", "name", "vertex property used as node label")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include every property in labels")

	return cmd
}
