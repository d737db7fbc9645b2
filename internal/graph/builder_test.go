package graph

import (
	"bytes"
	"errors"
	pathpkg "path"
	"testing"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Build:
// - Relative JavaScript imports resolve against the importing folder, with or without extension
// - Bare JavaScript and Swift imports resolve by case-insensitive file name suffix
// - Python dotted and relative imports resolve to modules and packages
// - HTML references resolve relative to the page
// - Imports that map to no parsed file are counted as unresolved
// - Failed files are not vertices
// - Duplicate imports produce one edge; self-imports produce none
// - Summary ranks most-imported files and reports cycles
// - WriteDOT emits a digraph with the resolved edges

func detail(path string, lang parsers.Language, imports ...string) indexer.FileDetail {
	name := pathpkg.Base(path)
	var elements []extraction.Element
	if len(imports) > 0 {
		if lang == parsers.LanguageHTML {
			elements = append(elements, extraction.MarkupFile{Name: name, Description: "HTML file", Imports: imports})
		} else {
			elements = append(elements, extraction.FileImports{Name: name, Imports: imports})
		}
	}
	return indexer.FileDetail{Name: name, Path: path, Language: lang, Elements: elements}
}

func sampleFolders() []indexer.FolderResult {
	return []indexer.FolderResult{
		{
			Folder: indexer.Folder{Path: "."},
			Details: []indexer.FileDetail{
				detail("main.py", parsers.LanguagePython, "app.models", "pkg", "missing"),
			},
		},
		{
			Folder: indexer.Folder{Path: "app"},
			Details: []indexer.FileDetail{
				detail("app/models.py", parsers.LanguagePython, ".helpers"),
				detail("app/helpers.py", parsers.LanguagePython, "..main"),
			},
		},
		{
			Folder: indexer.Folder{Path: "pkg"},
			Details: []indexer.FileDetail{
				detail("pkg/__init__.py", parsers.LanguagePython),
			},
		},
		{
			Folder: indexer.Folder{Path: "web"},
			Details: []indexer.FileDetail{
				detail("web/index.html", parsers.LanguageHTML, "js/app.js", "/web/style.css"),
				detail("web/js/app.js", parsers.LanguageJavaScript, "./util", "../lib/Format", "Helpers", "./util.js", "./app"),
				detail("web/js/util.js", parsers.LanguageJavaScript),
				detail("web/js/broken.js", parsers.LanguageJavaScript),
			},
		},
		{
			Folder: indexer.Folder{Path: "web/lib"},
			Details: []indexer.FileDetail{
				detail("web/lib/Format.mjs", parsers.LanguageJavaScript),
				detail("web/lib/helpers.js", parsers.LanguageJavaScript),
			},
		},
	}
}

func TestBuild_ResolvesImports(t *testing.T) {
	t.Parallel()

	folders := sampleFolders()
	folders[3].Details[3].Err = errors.New("boom")

	g, err := Build(folders)
	require.NoError(t, err)

	ids := make([]string, 0, len(g.Nodes()))
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.NotContains(t, ids, "web/js/broken.js")
	assert.Len(t, ids, 9)

	assert.Equal(t, []string{"app/models.py", "pkg/__init__.py"}, g.Dependencies("main.py"))
	assert.Equal(t, []string{"app/helpers.py"}, g.Dependencies("app/models.py"))
	assert.Equal(t, []string{"main.py"}, g.Dependencies("app/helpers.py"))
	assert.Equal(t, []string{"web/js/app.js"}, g.Dependencies("web/index.html"), "style.css is not a parsed file")
	assert.Equal(t, []string{"web/js/util.js", "web/lib/Format.mjs", "web/lib/helpers.js"}, g.Dependencies("web/js/app.js"))
	assert.Equal(t, []string{"web/index.html"}, g.Dependents("web/js/app.js"))

	summary, err := g.Summary(2)
	require.NoError(t, err)
	assert.Equal(t, 9, summary.Files)
	assert.Equal(t, 8, summary.Edges)
	assert.Equal(t, 2, summary.Unresolved, "missing and /web/style.css")
	assert.Len(t, summary.MostUsed, 2)
	assert.Equal(t, [][]string{{"app/helpers.py", "app/models.py", "main.py"}}, summary.Cycles)
}

func TestBuild_Swift(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{{
		Folder: indexer.Folder{Path: "Sources"},
		Details: []indexer.FileDetail{
			detail("Sources/App.swift", parsers.LanguageSwift, "NetworkKit"),
			detail("Sources/networkkit.swift", parsers.LanguageSwift),
		},
	}}

	g, err := Build(folders)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sources/networkkit.swift"}, g.Dependencies("Sources/App.swift"))
	assert.Equal(t, []Edge{{From: "Sources/App.swift", To: "Sources/networkkit.swift", Import: "NetworkKit"}}, g.Edges())
}

func TestSummary_RanksByDependents(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{{
		Folder: indexer.Folder{Path: "."},
		Details: []indexer.FileDetail{
			detail("a.js", parsers.LanguageJavaScript, "./c"),
			detail("b.js", parsers.LanguageJavaScript, "./c", "./d"),
			detail("c.js", parsers.LanguageJavaScript),
			detail("d.js", parsers.LanguageJavaScript),
		},
	}}

	g, err := Build(folders)
	require.NoError(t, err)

	summary, err := g.Summary(0)
	require.NoError(t, err)
	assert.Equal(t, []Ranked{{ID: "c.js", Count: 2}, {ID: "d.js", Count: 1}}, summary.MostUsed)
	assert.Empty(t, summary.Cycles)
}

func TestWriteDOT(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{{
		Folder: indexer.Folder{Path: "."},
		Details: []indexer.FileDetail{
			detail("a.js", parsers.LanguageJavaScript, "./b"),
			detail("b.js", parsers.LanguageJavaScript),
		},
	}}

	g, err := Build(folders)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.WriteDOT(&buf))
	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"a.js" -> "b.js"`)
}
