package parsers

import (
	"regexp"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

var (
	jsClassRe = regexp.MustCompile(`^(?:export\s+(?:default\s+)?)?(?P<kw>class)\s+(?P<name>[A-Za-z0-9_$]+)\s*(?:extends\s+[A-Za-z0-9_$.]+\s*)?\{`)
	jsFuncRe  = regexp.MustCompile(`^(?:export\s+(?:default\s+)?)?(?:async\s+)?function\s*\*?\s*(?P<name>[A-Za-z0-9_$]+)\s*\(`)

	jsMethodRe = regexp.MustCompile(`^(?:static\s+)?(?:async\s+)?(?:(?:get|set)\s+)?\*?\s*(?P<name>#?[A-Za-z_$][A-Za-z0-9_$]*)\s*\([^)]*\)\s*\{`)
	jsFieldRe  = regexp.MustCompile(`^(?:static\s+)?(?P<name>#?[A-Za-z0-9_$]+)\s*=\s*[^=\s]`)
)

// jsReserved are keywords that look like method calls at the start of a line.
var jsReserved = map[string]bool{
	"if":       true,
	"for":      true,
	"while":    true,
	"switch":   true,
	"catch":    true,
	"function": true,
	"return":   true,
	"with":     true,
}

// javaScriptParser parses JavaScript files.
type javaScriptParser struct {
	grammar *braceGrammar
}

// NewJavaScriptParser creates a new JavaScript parser.
func NewJavaScriptParser() Parser {
	return &javaScriptParser{
		grammar: &braceGrammar{
			comments: javaScriptComments,
			class:    jsClassRe,
			function: jsFuncRe,
			method:   []*regexp.Regexp{jsMethodRe},
			field:    jsFieldRe,
			reserved: jsReserved,
		},
	}
}

func (p *javaScriptParser) Language() Language { return LanguageJavaScript }

func (p *javaScriptParser) Extensions() []string { return []string{".js", ".mjs", ".cjs"} }

// Parse extracts classes, functions and imports from a JavaScript file.
func (p *javaScriptParser) Parse(name string, lines []string, inv *Inventory) []extraction.Element {
	elements := p.grammar.scan(name, lines)
	if imports := ResolveImports(lines, LanguageJavaScript, inv); len(imports) > 0 {
		elements = append(elements, extraction.FileImports{Name: name, Imports: imports})
	}
	return elements
}
