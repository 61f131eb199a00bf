// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/traversal"
)

var errBadStep = errors.New("cli: bad traversal step")

func newQueryCmd() *cobra.Command {
	var (
		has   []string
		edges string
	)

	cmd := &cobra.Command{
		Use:   "query <seed.toml> [step...]",
		Short: "Run a traversal over a seed graph",
		Long: `Start at every vertex, keep those matching each --has key=value, then
apply the steps in order. Steps: out[:label], in[:label], dedup, limit:N.
With --edges out|in the result is the outgoing or incoming edges of the
final vertices.

Values are matched with TOML typing: 3 is an integer, 3.5 a float,
true a boolean, anything else a string.`,
		Example: `  propgraph query chain.toml --has name=v2 --edges out
  propgraph query chain.toml --has name=v1 out out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := traversal.New(g).V()
			for _, h := range has {
				key, raw, ok := strings.Cut(h, "=")
				if !ok {
					return fmt.Errorf("--has %q: want key=value", h)
				}
				t = t.Has(key, parseValue(raw))
			}
			for _, step := range args[1:] {
				if t, err = applyStep(t, step); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			switch edges {
			case "":
				for v := range t.All() {
					printItem(w, "(%d) %s", v.ID, v.Properties)
				}
			case "out", "in":
				es := t.OutE()
				if edges == "in" {
					es = t.InE()
				}
				for e := range es.All() {
					printItem(w, "%s #%d (%d -> %d) %s", e.Label, e.ID, e.From, e.To, e.Properties)
				}
			default:
				return fmt.Errorf("--edges %q: want out or in", edges)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&has, "has", nil, "keep vertices holding key=value (repeatable)")
	cmd.Flags().StringVar(&edges, "edges", "", "print out or in edges of the result")

	return cmd
}

// applyStep appends one textual step to t.
func applyStep(t traversal.Vertices, step string) (traversal.Vertices, error) {
	name, arg, hasArg := strings.Cut(step, ":")
	var labels []string
	if hasArg {
		labels = []string{arg}
	}
	switch name {
	case "out":
		return t.Out(labels...), nil
	case "in":
		return t.In(labels...), nil
	case "dedup":
		return t.Dedup(), nil
	case "limit":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return t, fmt.Errorf("%w: %q", errBadStep, step)
		}
		return t.Limit(n), nil
	default:
		return t, fmt.Errorf("%w: %q", errBadStep, step)
	}
}

// parseValue types a command-line value the way TOML would.
func parseValue(raw string) core.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}
