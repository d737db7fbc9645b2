package parsers

import (
	"regexp"
	"strings"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

var (
	pyClassRe = regexp.MustCompile(`^class\s+([A-Za-z0-9_]+)\s*[(:]`)
	pyFuncRe  = regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z0-9_]+)\s*\(`)
	pyFieldRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(?::[^=]*)?=\s*[^=\s]`)
)

// pythonParser parses Python files. Bodies are delimited by indentation and
// declarations are described by the docstring or comment run that follows them.
type pythonParser struct{}

// NewPythonParser creates a new Python parser.
func NewPythonParser() Parser {
	return &pythonParser{}
}

func (p *pythonParser) Language() Language { return LanguagePython }

func (p *pythonParser) Extensions() []string { return []string{".py"} }

// Parse extracts the module docstring, classes, functions and imports.
func (p *pythonParser) Parse(name string, lines []string, inv *Inventory) []extraction.Element {
	var out []extraction.Element

	i := headerStart(lines)
	if text, next := pythonComments.Extract(lines, i); next > i {
		if text != "" {
			out = append(out, extraction.FileComment{Name: name, Description: text})
		}
		i = next
	}

	var pending string
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if pythonComments.Opens(line) {
			text, next := pythonComments.Extract(lines, i)
			pending = appendDescription(pending, text)
			i = next
			continue
		}

		if m := pyClassRe.FindStringSubmatch(trimmed); m != nil {
			cls, next := p.parseClass(lines, i, m[1], pending)
			out = append(out, cls)
			pending = ""
			i = next
			continue
		}

		if m := pyFuncRe.FindStringSubmatch(trimmed); m != nil {
			doc, next := trailingDoc(lines, pyHeaderEnd(lines, i)+1)
			if doc == "" {
				doc = pending
			}
			out = append(out, extraction.Function{Name: m[1], Description: doc})
			pending = ""
			i = next
			continue
		}

		if trimmed != "" && !isAttributeLine(line) {
			pending = ""
		}
		i++
	}

	if imports := ResolveImports(lines, LanguagePython, inv); len(imports) > 0 {
		out = append(out, extraction.FileImports{Name: name, Imports: imports})
	}
	return out
}

// parseClass reads the class declared at lines[decl] and returns the index
// of the first line after its indented body.
func (p *pythonParser) parseClass(lines []string, decl int, name, pending string) (extraction.Class, int) {
	cls := extraction.Class{Name: name, Keyword: "class"}

	doc, start := trailingDoc(lines, pyHeaderEnd(lines, decl)+1)
	if doc == "" {
		doc = pending
	}
	cls.Description = doc

	end := indentExtent(lines, indentOf(lines[decl]), start)
	body := lines[:end]

	memberIndent := -1
	for k := start; k < end; {
		line := body[k]
		if isBlank(line) {
			k++
			continue
		}

		indent := indentOf(line)
		if memberIndent < 0 {
			memberIndent = indent
		}
		if indent != memberIndent {
			k++
			continue
		}

		trimmed := strings.TrimSpace(line)
		if m := pyFuncRe.FindStringSubmatch(trimmed); m != nil {
			methodDoc, next := trailingDoc(body, pyHeaderEnd(body, k)+1)
			cls.Methods = append(cls.Methods, extraction.Method{Name: m[1], Description: methodDoc})
			k = next
			continue
		}
		if m := pyFieldRe.FindStringSubmatch(trimmed); m != nil {
			cls.Fields = append(cls.Fields, m[1])
		}
		k++
	}

	return cls, end
}

// pyHeaderEnd returns the index of the last line of the declaration header
// starting at lines[decl]. Headers continue while brackets are open or a
// line ends with a backslash.
func pyHeaderEnd(lines []string, decl int) int {
	depth := 0
	for j := decl; j < len(lines); j++ {
		code := lines[j]
		if k := strings.IndexByte(code, '#'); k >= 0 {
			code = code[:k]
		}
		depth += strings.Count(code, "(") + strings.Count(code, "[") + strings.Count(code, "{")
		depth -= strings.Count(code, ")") + strings.Count(code, "]") + strings.Count(code, "}")
		if depth <= 0 && !strings.HasSuffix(strings.TrimSpace(code), "\\") {
			return j
		}
	}
	return decl
}

// trailingDoc reads the docstring or comment run that directly follows a
// declaration, skipping blank lines. Without one it returns ("", from).
func trailingDoc(lines []string, from int) (string, int) {
	j := SkipBlank(lines, from)
	if j >= len(lines) || !pythonComments.Opens(lines[j]) {
		return "", from
	}
	return pythonComments.Extract(lines, j)
}
