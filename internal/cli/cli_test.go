// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	require.Contains(t, out, "graph demo: 3 vertices, 2 edges")
	require.Contains(t, out, "edge_2 (2 -> 3)")
	require.Contains(t, out, "edge_1 (1 -> 2)")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", filepath.Join("testdata", "chain.toml"))
	require.NoError(t, err)
	require.Contains(t, out, "graph chain: 3 vertices, 2 edges")
	require.Contains(t, out, "label edge_1")
}

func TestQuery(t *testing.T) {
	seed := filepath.Join("testdata", "chain.toml")

	out, err := run(t, "query", seed, "--has", "name=v2", "--edges", "out")
	require.NoError(t, err)
	require.Contains(t, out, "edge_2")
	require.NotContains(t, out, "edge_1")

	out, err = run(t, "query", seed, "--has", "name=v1", "out", "out")
	require.NoError(t, err)
	require.Contains(t, out, "{name: [v3]}")

	out, err = run(t, "query", seed, "--has", "weight=2")
	require.NoError(t, err)
	require.Empty(t, out, "weight is an edge property")

	_, err = run(t, "query", seed, "sideways")
	require.ErrorIs(t, err, errBadStep)

	_, err = run(t, "query", seed, "--has", "name")
	require.Error(t, err)
}

func TestDOTCommand(t *testing.T) {
	seed := filepath.Join("testdata", "chain.toml")

	out, err := run(t, "dot", seed)
	require.NoError(t, err)
	require.Contains(t, out, `2 [label="v2"];`)
	require.Contains(t, out, `1 -> 2 [label="edge_1"];`)

	path := filepath.Join(t.TempDir(), "chain.dot")
	out, err = run(t, "dot", seed, "-o", path)
	require.NoError(t, err)
	require.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph G {")
}

func TestMissingSeed(t *testing.T) {
	_, err := run(t, "show", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestParseValue(t *testing.T) {
	require.Equal(t, int64(3), parseValue("3"))
	require.Equal(t, 3.5, parseValue("3.5"))
	require.Equal(t, true, parseValue("true"))
	require.Equal(t, "t", parseValue("t"))
	require.Equal(t, "v2", parseValue("v2"))
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	require.Same(t, l, loggerFromContext(ctx))
	require.Same(t, log.Default(), loggerFromContext(context.Background()))

	loggerFromContext(ctx).Debug("hello")
	require.Contains(t, buf.String(), "hello")

	var quiet bytes.Buffer
	newLogger(&quiet, log.InfoLevel).Debug("hidden")
	require.Zero(t, quiet.Len())
}

func TestGen(t *testing.T) {
	out, err := run(t, "gen", "star", "4")
	require.NoError(t, err)
	require.Contains(t, out, "graph star: 4 vertices, 3 edges")
	require.Contains(t, out, "-[link #5]-> (2)")

	out, err = run(t, "gen", "cycle", "3", "--dot", "--label", "next")
	require.NoError(t, err)
	require.Contains(t, out, `3 -> 1 [label="next"];`)

	_, err = run(t, "gen", "blob", "3")
	require.Error(t, err)
	_, err = run(t, "gen", "path", "1")
	require.Error(t, err)
}
