package parsers

import (
	"regexp"
	"strings"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

// braceGrammar holds the line patterns of a brace-delimited language.
// Every pattern is matched against the trimmed line. Patterns name their
// captures: "name" (required) and, for classes, "kw".
type braceGrammar struct {
	comments CommentStyle
	class    *regexp.Regexp
	function *regexp.Regexp
	method   []*regexp.Regexp
	field    *regexp.Regexp

	// reserved names are never reported as classes, methods or fields.
	reserved map[string]bool
}

// match returns the "name" (and "kw") captures of re on line.
func (g *braceGrammar) match(re *regexp.Regexp, line string) (name, keyword string, ok bool) {
	if re == nil {
		return "", "", false
	}
	m := re.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	if i := re.SubexpIndex("name"); i > 0 {
		name = m[i]
	}
	if i := re.SubexpIndex("kw"); i > 0 {
		keyword = m[i]
	}
	if name == "" || g.reserved[name] {
		return "", "", false
	}
	return name, keyword, true
}

func (g *braceGrammar) isDeclaration(line string) bool {
	if _, _, ok := g.match(g.class, line); ok {
		return true
	}
	_, _, ok := g.match(g.function, line)
	return ok
}

// scan runs the line state machine over a brace-delimited file.
func (g *braceGrammar) scan(name string, lines []string) []extraction.Element {
	var out []extraction.Element
	var pending string

	// File header: a leading doc block belongs to the file unless it sits
	// directly on top of a declaration.
	i := headerStart(lines)
	if i < len(lines) && g.comments.Opens(lines[i]) {
		text, next := g.comments.Extract(lines, i)
		if next < len(lines) && g.isDeclaration(lines[next]) {
			pending = text
		} else if text != "" {
			out = append(out, extraction.FileComment{Name: name, Description: text})
		}
		i = next
	}

	for i < len(lines) {
		line := lines[i]

		if g.comments.Opens(line) {
			text, next := g.comments.Extract(lines, i)
			pending = appendDescription(pending, text)
			i = next
			continue
		}

		if className, keyword, ok := g.match(g.class, line); ok {
			cls, next := g.scanClass(lines, i, className, keyword, pending)
			out = append(out, cls)
			pending = ""
			i = next
			continue
		}

		if funcName, _, ok := g.match(g.function, line); ok {
			out = append(out, extraction.Function{Name: funcName, Description: pending})
			pending = ""
			i++
			continue
		}

		if !isBlank(line) && !isAttributeLine(line) {
			pending = ""
		}
		i++
	}

	return out
}

// scanClass builds a Class from the declaration at lines[decl] and returns
// the index of the first line after its body.
func (g *braceGrammar) scanClass(lines []string, decl int, name, keyword, pending string) (extraction.Class, int) {
	cls := extraction.Class{Name: name, Keyword: keyword, Description: pending}

	opener := findOpener(lines, decl, g.isDeclaration)
	if opener < 0 {
		return cls, decl + 1
	}
	body := braceExtent(lines, opener)
	if body.empty() {
		return cls, body.end
	}

	k := body.start
	depth := body.open

	// A doc block opening the body describes the class when none preceded it.
	if cls.Description == "" {
		if first := SkipBlank(lines[:body.end], k); first < body.end && g.comments.Opens(lines[first]) {
			text, next := g.comments.Extract(lines[:body.end], first)
			cls.Description = text
			for ; k < next; k++ {
				depth += braceDelta(lines[k])
			}
		}
	}

	var memberDoc string
	for k < body.end {
		line := lines[k]

		if depth != body.open {
			depth += braceDelta(line)
			k++
			continue
		}

		if g.comments.Opens(line) {
			text, next := g.comments.Extract(lines[:body.end], k)
			memberDoc = appendDescription(memberDoc, text)
			for ; k < next; k++ {
				depth += braceDelta(lines[k])
			}
			continue
		}

		if methodName, ok := g.matchMethod(line); ok {
			cls.Methods = append(cls.Methods, extraction.Method{Name: methodName, Description: memberDoc})
			memberDoc = ""
		} else if fieldName, _, ok := g.match(g.field, line); ok {
			cls.Fields = append(cls.Fields, fieldName)
			memberDoc = ""
		} else if !isBlank(line) && !isAttributeLine(line) {
			memberDoc = ""
		}

		depth += braceDelta(line)
		k++
	}

	return cls, body.end
}

func (g *braceGrammar) matchMethod(line string) (string, bool) {
	for _, re := range g.method {
		if name, _, ok := g.match(re, line); ok {
			return name, true
		}
	}
	return "", false
}
