package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Merge:
// - A single well-formed region is replaced; content around it is untouched
// - Missing markers append a fresh region after the existing content
// - Reversed or duplicated markers are treated as missing
// - Merging the same content twice gives the same document
// - A marker mentioned inside a line is not a marker
// - CRLF line endings around the region are preserved
// - Custom markers work the same way

const (
	sm = StartMarker
	em = EndMarker
)

func TestMerge_ReplacesRegion(t *testing.T) {
	t.Parallel()

	existing := "# Title\n\nIntro text.\n" + sm + "\nold\nstuff\n" + em + "\n\n## Notes\nkept\n"
	got := Merge(existing, "new")

	assert.Equal(t, "# Title\n\nIntro text.\n"+sm+"\nnew\n"+em+"\n\n## Notes\nkept\n", got)
}

func TestMerge_MissingMarkersAppend(t *testing.T) {
	t.Parallel()

	got := Merge("# Doc\nhand written", "gen")
	assert.Equal(t, "# Doc\nhand written\n"+sm+"\ngen\n"+em+"\n", got)
}

func TestMerge_NewDocument(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	assert.Equal(t, "# ARCHITECTURE.md\n\n"+sm+"\n"+em+"\n", doc)
	assert.Equal(t, "# ARCHITECTURE.md\n\n"+sm+"\nbody\n"+em+"\n", Merge(doc, "body"))
}

func TestMerge_MalformedMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
	}{
		{"reversed", "a\n" + em + "\nb\n" + sm + "\nc\n"},
		{"duplicated", sm + "\n1\n" + em + "\n" + sm + "\n2\n" + em + "\nfooter\n"},
		{"start only", "a\n" + sm + "\nb\n"},
		{"end only", "a\n" + em + "\n"},
		{"inline mention", "see " + sm + " and " + em + " here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, "gen")
			assert.Equal(t, tt.existing+"\n"+sm+"\ngen\n"+em+"\n", got)
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"# Doc\n",
		"# Doc\n" + sm + "\nold\n" + em + "\ntail",
		"a\n" + em + "\nb\n" + sm + "\nc\n",
		sm + "\n1\n" + em + "\n" + sm + "\n2\n" + em + "\nfooter\n",
	}

	for _, in := range inputs {
		once := Merge(in, "content\nmore")
		twice := Merge(once, "content\nmore")
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestMerge_PreservesCRLF(t *testing.T) {
	t.Parallel()

	existing := "head\r\n" + sm + "\r\nold\r\n" + em + "\r\ntail\r\n"
	got := Merge(existing, "new")
	assert.Equal(t, "head\r\n"+sm+"\nnew\n"+em+"\r\ntail\r\n", got)
}

func TestMarkers_Custom(t *testing.T) {
	t.Parallel()

	m := Markers{Start: "<!-- BEGIN -->", End: "<!-- FINISH -->"}
	doc := m.NewDocument("README.md")
	assert.Equal(t, "# README.md\n\n<!-- BEGIN -->\n<!-- FINISH -->\n", doc)

	got := m.Merge(doc+"footer\n", "x")
	assert.Equal(t, "# README.md\n\n<!-- BEGIN -->\nx\n<!-- FINISH -->\nfooter\n", got)

	// Default markers are ordinary text to a custom pair.
	assert.Equal(t, sm+"\n"+em+"\n\n<!-- BEGIN -->\nx\n<!-- FINISH -->\n", m.Merge(sm+"\n"+em+"\n", "x"))
}
