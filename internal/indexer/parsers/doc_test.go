package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for CommentStyle.Extract:
// - Contiguous line comments are joined with a single space
// - A blank line ends a line-comment run
// - A block opened and closed on one line consumes exactly one line
// - A multi-line block keeps text from the opening and closing lines
// - An unterminated block consumes the rest of the input and returns partial text
// - A line that opens no comment returns empty text and the same index
// - Leading '*' on C-style continuation lines is stripped
// - Out-of-range indexes are returned unchanged

func TestExtract_LineRun(t *testing.T) {
	t.Parallel()

	lines := []string{"# first", "  # second", "x = 1"}
	text, next := pythonComments.Extract(lines, 0)

	assert.Equal(t, "first second", text)
	assert.Equal(t, 2, next)
}

func TestExtract_BlankLineEndsRun(t *testing.T) {
	t.Parallel()

	lines := []string{"// a", "", "// b"}
	text, next := javaScriptComments.Extract(lines, 0)

	assert.Equal(t, "a", text)
	assert.Equal(t, 1, next)
}

func TestExtract_InlineBlock(t *testing.T) {
	t.Parallel()

	lines := []string{`    """Short doc."""`, "x = 1"}
	text, next := pythonComments.Extract(lines, 0)

	assert.Equal(t, "Short doc.", text)
	assert.Equal(t, 1, next)
}

func TestExtract_MultiLineBlock(t *testing.T) {
	t.Parallel()

	lines := []string{`"""Summary`, "  more text", "", `  end."""`, "x = 1"}
	text, next := pythonComments.Extract(lines, 0)

	assert.Equal(t, "Summary more text end.", text)
	assert.Equal(t, 4, next)
}

func TestExtract_UnterminatedBlock(t *testing.T) {
	t.Parallel()

	lines := []string{`'''never`, "closed", "still"}
	text, next := pythonComments.Extract(lines, 0)

	assert.Equal(t, "never closed still", text)
	assert.Equal(t, len(lines), next)
}

func TestExtract_NoComment(t *testing.T) {
	t.Parallel()

	lines := []string{"x = 1"}
	text, next := pythonComments.Extract(lines, 0)

	assert.Empty(t, text)
	assert.Equal(t, 0, next)
}

func TestExtract_StarBlock(t *testing.T) {
	t.Parallel()

	lines := []string{"/**", " * Adds numbers.", " * @param a", " */", "function add(a) {}"}
	text, next := javaScriptComments.Extract(lines, 0)

	assert.Equal(t, "Adds numbers. @param a", text)
	assert.Equal(t, 4, next)

	text, next = swiftComments.Extract([]string{"/** Computes distance. */"}, 0)
	assert.Equal(t, "Computes distance.", text)
	assert.Equal(t, 1, next)
}

func TestExtract_SwiftTripleSlash(t *testing.T) {
	t.Parallel()

	lines := []string{"/// One.", "/// Two.", "// not a doc", "func f() {}"}
	text, next := swiftComments.Extract(lines, 0)

	assert.Equal(t, "One. Two.", text)
	assert.Equal(t, 2, next)

	// Plain "//" comments are not Swift docs.
	text, next = swiftComments.Extract(lines, 2)
	assert.Empty(t, text)
	assert.Equal(t, 2, next)
}

func TestExtract_OutOfRange(t *testing.T) {
	t.Parallel()

	text, next := pythonComments.Extract([]string{"# a"}, 5)
	assert.Empty(t, text)
	assert.Equal(t, 5, next)
}
