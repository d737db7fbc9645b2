package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
	"github.com/stretchr/testify/assert"
)

// Test Plan for Compose:
// - The tree is fenced under "## Project structure"
// - Folders are sorted; files within a folder are sorted
// - A folder without visible files shows the "no files" marker
// - Each element kind renders its label, description, fields, methods and imports
// - A failed file gets an inline error note and other files are unaffected

func TestCompose_Layout(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{
		{
			Folder: indexer.Folder{Path: "src", Files: []string{"util.py", "app.js"}},
			Details: []indexer.FileDetail{
				{
					Name:     "app.js",
					Language: parsers.LanguageJavaScript,
					Elements: []extraction.Element{
						extraction.FileComment{Name: "app.js", Description: "Entry point."},
						extraction.Class{
							Name:        "App",
							Keyword:     "class",
							Description: "Main app.",
							Fields:      []string{"state", "router"},
							Methods: []extraction.Method{
								{Name: "start", Description: "Boots."},
								{Name: "stop"},
							},
						},
						extraction.Function{Name: "main"},
						extraction.FileImports{Name: "app.js", Imports: []string{"./router", "./state"}},
					},
				},
				{
					Name:     "util.py",
					Language: parsers.LanguagePython,
					Err:      errors.New("permission denied"),
				},
			},
		},
		{Folder: indexer.Folder{Path: "."}},
	}

	got := Compose("proj/\n└── src/", folders)

	want := []string{
		"## Project structure",
		"",
		"```",
		"proj/",
		"└── src/",
		"```",
		"",
		"### Folder: .",
		NoFiles,
		"",
		"### Folder: src",
		"Files:",
		"- app.js",
		"- util.py",
		"",
		"**File details:**",
		"- **File**: app.js (language: js)",
		"  - File comment: **app.js**",
		"    - *Description:* Entry point.",
		"  - Class: **App**",
		"    - *Description:* Main app.",
		"    - *Fields:* state, router",
		"    - *Method:* start - Boots.",
		"    - *Method:* stop",
		"  - Function: **main**",
		"  - Imports: **app.js**",
		"    - *Imports:* ./router, ./state",
		"- **File**: util.py (language: python)",
		"**Error processing file util.py: permission denied**",
		"",
	}
	assert.Equal(t, want, got)
}

func TestCompose_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{
		{Folder: indexer.Folder{Path: "b", Files: []string{"z", "a"}}},
		{Folder: indexer.Folder{Path: "a"}},
	}
	_ = Compose("", folders)

	assert.Equal(t, "b", folders[0].Path)
	assert.Equal(t, []string{"z", "a"}, folders[0].Files)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		el   extraction.Element
		want string
	}{
		{extraction.Class{Name: "P", Keyword: "struct"}, "Struct"},
		{extraction.Class{Name: "P", Keyword: "protocol"}, "Protocol"},
		{extraction.Class{Name: "P"}, "Class"},
		{extraction.MarkupFile{Name: "i.html"}, "HTML"},
		{extraction.FileImports{Name: "x"}, "Imports"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.el))
	}
}

func TestCompose_MarkupFile(t *testing.T) {
	t.Parallel()

	folders := []indexer.FolderResult{{
		Folder: indexer.Folder{Path: "web", Files: []string{"index.html"}},
		Details: []indexer.FileDetail{{
			Name:     "index.html",
			Language: parsers.LanguageHTML,
			Elements: []extraction.Element{
				extraction.MarkupFile{Name: "index.html", Description: "HTML file", Imports: []string{"app.js"}},
			},
		}},
	}}

	out := strings.Join(Compose("web/", folders), "\n")
	assert.Contains(t, out, "  - HTML: **index.html**\n    - *Description:* HTML file\n    - *Imports:* app.js")
}
