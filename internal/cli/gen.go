// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/propgraph/builder"
	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/render"
)

func newGenCmd() *cobra.Command {
	var (
		label string
		seed  int64
		prob  float64
		dot   bool
	)

	cmd := &cobra.Command{
		Use:   "gen <path|cycle|star|complete|sparse> <n>",
		Short: "Generate a fixture topology and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("n %q: %w", args[1], err)
			}
			con, err := topology(args[0], n, prob)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithName(args[0]), core.WithLogger(loggerFromContext(ctx))},
				[]builder.BuilderOption{builder.WithLabel(label), builder.WithSeed(seed)},
				con,
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dot {
				_, err = fmt.Fprint(w, render.DOT(g, render.Options{LabelKey: builder.DefaultNameKey}))
				return err
			}
			return render.Text(w, g)
		},
	}

	cmd.Flags().StringVar(&label, "label", builder.DefaultLabel, "edge label")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for sparse")
	cmd.Flags().Float64Var(&prob, "p", 0.2, "edge probability for sparse")
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of text")

	return cmd
}

func topology(name string, n int, p float64) (builder.Constructor, error) {
	switch name {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "sparse":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}
