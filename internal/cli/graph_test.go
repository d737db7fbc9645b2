package cli

// Test Plan for Graph and Tree Commands:
// - executeGraph prints counts and the most imported files
// - executeGraph --dot prints a digraph with resolved edges
// - Ignored directories contribute no vertices
// - printSummary lists cycles closed back to their first file
// - executeTree prints the rendered tree with collapsed ignored directories

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/project-atlas/internal/config"
	"github.com/mvp-joe/project-atlas/internal/graph"
	"github.com/mvp-joe/project-atlas/internal/logging"
	"github.com/mvp-joe/project-atlas/internal/tree"
)

func TestExecuteGraph_Summary(t *testing.T) {
	t.Parallel()

	root := setupProject(t)
	var out bytes.Buffer
	require.NoError(t, executeGraph(context.Background(), config.Default(), root, logging.Discard().Logger, false, 10, &out))

	text := out.String()
	assert.Contains(t, text, "Files:      4\n")
	assert.Contains(t, text, "Imports:    2\n")
	assert.Contains(t, text, "Unresolved: 0\n")
	assert.Contains(t, text, "Most imported:\n")
	assert.Contains(t, text, "     1  app/b.js\n")
	assert.Contains(t, text, "     1  util.py\n")
	assert.NotContains(t, text, "node_modules")
	assert.NotContains(t, text, "Cycles:")
}

func TestExecuteGraph_DOT(t *testing.T) {
	t.Parallel()

	root := setupProject(t)
	var out bytes.Buffer
	require.NoError(t, executeGraph(context.Background(), config.Default(), root, logging.Discard().Logger, true, 0, &out))

	dot := out.String()
	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, `"app/a.js" -> "app/b.js"`)
	assert.Contains(t, dot, `"main.py" -> "util.py"`)
}

func TestPrintSummary_Cycles(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printSummary(&out, &graph.Summary{
		Files:    2,
		Edges:    2,
		MostUsed: []graph.Ranked{{ID: "a.py", Count: 1}, {ID: "b.py", Count: 1}},
		Cycles:   [][]string{{"a.py", "b.py"}},
	})

	assert.Equal(t, strings.Join([]string{
		"Files:      2",
		"Imports:    2",
		"Unresolved: 0",
		"",
		"Most imported:",
		"     1  a.py",
		"     1  b.py",
		"",
		"Cycles:",
		"  a.py -> b.py -> a.py",
		"",
	}, "\n"), out.String())
}

func TestExecuteTree(t *testing.T) {
	t.Parallel()

	root := setupProject(t)
	var out bytes.Buffer
	require.NoError(t, executeTree(root, []string{"node_modules"}, &out))

	assert.Equal(t, tree.Render(root, func(name string) bool { return name == "node_modules" })+"\n", out.String())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, filepath.Base(root)+"/", lines[0])
	assert.Contains(t, lines, "│   └── ...")
	assert.NotContains(t, out.String(), "dep")

	require.Error(t, executeTree(root, []string{"[bad"}, &out))
}
