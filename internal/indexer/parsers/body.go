package parsers

import "strings"

// openSeekLimit bounds how far past a declaration line the opening brace is searched.
const openSeekLimit = 3

// braceBody is the extent of a brace-delimited body.
// Lines [start, end) belong to the body; the final line holds the closing brace.
// open is the depth directly after the opening brace and identifies the
// body's immediate nesting level.
type braceBody struct {
	start int
	end   int
	open  int
}

// empty reports whether no body lines were found.
func (b braceBody) empty() bool {
	return b.end <= b.start
}

// braceDelta returns the net brace count of a line.
// Braces inside string or comment literals are counted too.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// braceExtent computes the body opened at lines[opener].
// The depth counter is seeded from the opening line and updated per line
// until it returns to zero; an unterminated body runs to the end of input.
// opener is the index of the line holding the opening brace, or -1.
func braceExtent(lines []string, opener int) braceBody {
	if opener < 0 || opener >= len(lines) {
		return braceBody{start: len(lines), end: len(lines)}
	}

	depth := braceDelta(lines[opener])
	body := braceBody{start: opener + 1, open: depth}
	j := opener + 1
	for j < len(lines) && depth > 0 {
		depth += braceDelta(lines[j])
		j++
	}
	body.end = j
	return body
}

// findOpener locates the line carrying the opening brace of the declaration
// at lines[decl]. When the declaration line has no brace, up to
// openSeekLimit following non-blank lines are tried; the search stops at a
// line that closes a brace or that stop rejects. Returns -1 if none is found.
func findOpener(lines []string, decl int, stop func(string) bool) int {
	if strings.Contains(lines[decl], "{") {
		return decl
	}

	seen := 0
	for j := decl + 1; j < len(lines) && seen < openSeekLimit; j++ {
		if isBlank(lines[j]) {
			continue
		}
		seen++
		if strings.Contains(lines[j], "}") || stop(lines[j]) {
			return -1
		}
		if strings.Contains(lines[j], "{") {
			return j
		}
	}
	return -1
}

// indentExtent returns the index of the first non-blank line at or after
// from whose indentation is at most declIndent.
func indentExtent(lines []string, declIndent, from int) int {
	j := from
	for j < len(lines) {
		if !isBlank(lines[j]) && indentOf(lines[j]) <= declIndent {
			break
		}
		j++
	}
	return j
}

// headerStart skips leading blank lines and a "#!" interpreter line.
func headerStart(lines []string) int {
	i := SkipBlank(lines, 0)
	if i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "#!") {
		i = SkipBlank(lines, i+1)
	}
	return i
}

// isAttributeLine reports lines such as decorators or Swift attributes that
// sit between a doc comment and its declaration.
func isAttributeLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "@")
}

// appendDescription joins two description fragments with a single space.
func appendDescription(desc, text string) string {
	switch {
	case text == "":
		return desc
	case desc == "":
		return text
	default:
		return desc + " " + text
	}
}
