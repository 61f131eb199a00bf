// SPDX-License-Identifier: MIT

package cli

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/propgraph/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <seed.toml>",
		Short: "Print the structure and statistics of a seed graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Structure")
			if err := render.Text(w, g); err != nil {
				return err
			}

			st := g.Stats()
			printTitle(w, "Stats")
			printKeyValue(w, "vertices", st.VertexCount)
			printKeyValue(w, "edges", st.EdgeCount)
			printKeyValue(w, "self-loops", st.SelfLoopCount)
			printKeyValue(w, "index facts", st.VertexIndexFacts+st.EdgeIndexFacts)
			printKeyValue(w, "last id", st.LastIssuedID)
			if st.MaxOutDegree > 0 {
				printKeyValue(w, "max out", st.MaxOutDegreeOwner)
			}
			for _, label := range slices.Sorted(maps.Keys(st.LabelCounts)) {
				printKeyValue(w, "label "+label, st.LabelCounts[label])
			}
			return nil
		},
	}
}
