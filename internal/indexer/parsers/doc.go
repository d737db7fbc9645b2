package parsers

import "strings"

// BlockDelimiter is an opening/closing pair for delimited doc comments.
type BlockDelimiter struct {
	Open  string
	Close string
}

// CommentStyle describes how a language writes doc comments.
type CommentStyle struct {
	// LinePrefixes are single-line comment markers, longest first.
	LinePrefixes []string

	// Blocks are delimited comment forms, tried in order.
	Blocks []BlockDelimiter

	// StripStars removes the leading '*' from continuation lines of a block.
	StripStars bool
}

var (
	pythonComments = CommentStyle{
		LinePrefixes: []string{"#"},
		Blocks: []BlockDelimiter{
			{Open: `"""`, Close: `"""`},
			{Open: `'''`, Close: `'''`},
		},
	}

	javaScriptComments = CommentStyle{
		LinePrefixes: []string{"///", "//"},
		Blocks:       []BlockDelimiter{{Open: "/*", Close: "*/"}},
		StripStars:   true,
	}

	swiftComments = CommentStyle{
		LinePrefixes: []string{"///"},
		Blocks:       []BlockDelimiter{{Open: "/**", Close: "*/"}},
		StripStars:   true,
	}
)

// Opens reports whether line starts a doc comment in this style.
func (s CommentStyle) Opens(line string) bool {
	trimmed := strings.TrimSpace(line)
	if _, ok := s.blockAt(trimmed); ok {
		return true
	}
	return s.linePrefix(trimmed) != ""
}

// Extract consumes the doc comment starting at lines[i], if any.
// It returns the joined description and the index of the first line after
// the comment. When lines[i] does not open a comment it returns ("", i).
// An unterminated block consumes the remaining input and yields the text
// gathered so far.
func (s CommentStyle) Extract(lines []string, i int) (string, int) {
	if i < 0 || i >= len(lines) {
		return "", i
	}

	trimmed := strings.TrimSpace(lines[i])
	if block, ok := s.blockAt(trimmed); ok {
		return s.extractBlock(lines, i, block)
	}
	if s.linePrefix(trimmed) != "" {
		return s.extractLineRun(lines, i)
	}
	return "", i
}

func (s CommentStyle) blockAt(trimmed string) (BlockDelimiter, bool) {
	for _, b := range s.Blocks {
		if strings.HasPrefix(trimmed, b.Open) {
			return b, true
		}
	}
	return BlockDelimiter{}, false
}

func (s CommentStyle) linePrefix(trimmed string) string {
	for _, p := range s.LinePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return p
		}
	}
	return ""
}

func (s CommentStyle) extractBlock(lines []string, i int, block BlockDelimiter) (string, int) {
	rest := strings.TrimPrefix(strings.TrimSpace(lines[i]), block.Open)

	// Opening and closing delimiter on the same line.
	if idx := strings.Index(rest, block.Close); idx >= 0 {
		return cleanFragment(rest[:idx], s.StripStars), i + 1
	}

	parts := []string{rest}
	j := i + 1
	for ; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if idx := strings.Index(line, block.Close); idx >= 0 {
			parts = append(parts, line[:idx])
			j++
			return joinFragments(parts, s.StripStars), j
		}
		parts = append(parts, line)
	}

	return joinFragments(parts, s.StripStars), j
}

func (s CommentStyle) extractLineRun(lines []string, i int) (string, int) {
	var parts []string
	j := i
	for ; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		prefix := s.linePrefix(trimmed)
		if prefix == "" {
			break
		}
		parts = append(parts, strings.TrimPrefix(trimmed, prefix))
	}
	return joinFragments(parts, false), j
}

func cleanFragment(fragment string, stripStars bool) string {
	fragment = strings.TrimSpace(fragment)
	if stripStars {
		fragment = strings.TrimSpace(strings.TrimLeft(fragment, "*"))
	}
	return fragment
}

func joinFragments(parts []string, stripStars bool) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = cleanFragment(p, stripStars); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// SkipBlank returns the index of the first non-blank line at or after i.
func SkipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// indentOf counts leading whitespace characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
