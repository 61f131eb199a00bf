// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/propgraph/render"
	"github.com/katalvlaran/propgraph/seed"
	"github.com/katalvlaran/propgraph/traversal"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the v1 -> v2 -> v3 toy graph and walk it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := seed.Parse(demoSeed)
			if err != nil {
				return err
			}
			g, err := buildGraph(cmd.Context(), doc)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Structure")
			if err := render.Text(w, g); err != nil {
				return err
			}

			src := traversal.New(g)
			printTitle(w, "V().Has(name, v2).OutE()")
			for e := range src.V().Has("name", "v2").OutE().All() {
				printItem(w, "%s (%d -> %d)", e.Label, e.From, e.To)
			}
			printTitle(w, "V().Has(name, v2).InE()")
			for e := range src.V().Has("name", "v2").InE().All() {
				printItem(w, "%s (%d -> %d)", e.Label, e.From, e.To)
			}
			return nil
		},
	}
}
