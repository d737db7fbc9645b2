package parsers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Registry:
// - Extension dispatch is case-insensitive
// - Unsupported extensions are rejected with ErrUnsupportedLanguage
// - Missing files surface the read error to the caller
// - Invalid UTF-8 is rejected with ErrInvalidEncoding
// - A cancelled context stops parsing before the file is read
// - HTML files produce a single MarkupFile record with local references only
// - CRLF line endings and a BOM do not leak into records

func TestRegistry_ForFile(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	tests := []struct {
		name string
		want Language
		ok   bool
	}{
		{"App.SWIFT", LanguageSwift, true},
		{"tool.py", LanguagePython, true},
		{"bundle.MJS", LanguageJavaScript, true},
		{"index.Htm", LanguageHTML, true},
		{"README.md", "", false},
		{"Makefile", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.ForFile(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, p.Language())
			}
		})
	}
}

func TestRegistry_ParseFileErrors(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	ctx := context.Background()
	dir := t.TempDir()

	_, _, err := r.ParseFile(ctx, filepath.Join(dir, "notes.txt"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, lang, err := r.ParseFile(ctx, filepath.Join(dir, "missing.py"), nil)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, LanguagePython, lang)

	bad := filepath.Join(dir, "bad.js")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 'x'}, 0644))
	_, _, err = r.ParseFile(ctx, bad, nil)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = r.ParseFile(cancelled, bad, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTMLParser_Fixture(t *testing.T) {
	t.Parallel()

	elements, lang, err := DefaultRegistry().ParseFile(context.Background(), "../../../testdata/code/html/index.html", nil)
	require.NoError(t, err)
	assert.Equal(t, LanguageHTML, lang)

	assert.Equal(t, []extraction.Element{
		extraction.MarkupFile{
			Name:        "index.html",
			Description: "HTML file",
			Imports:     []string{"css/site.css", "js/app.js"},
		},
	}, elements)
}

func TestSplitLines_CRLFAndBOM(t *testing.T) {
	t.Parallel()

	lines := SplitLines("\ufeff\"\"\"Doc.\"\"\"\r\ndef f():\r\n    pass\r\n")
	assert.Equal(t, []string{`"""Doc."""`, "def f():", "    pass", ""}, lines)

	elements := NewPythonParser().Parse("f.py", lines, nil)
	assert.Equal(t, []extraction.Element{
		extraction.FileComment{Name: "f.py", Description: "Doc."},
		extraction.Function{Name: "f"},
	}, elements)
}
