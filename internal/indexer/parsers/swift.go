package parsers

import (
	"regexp"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

// swiftModifiers matches any run of access modifiers and attributes before a keyword.
const swiftModifiers = `(?:(?:@[A-Za-z_]+(?:\([^)]*\))?|public|private|fileprivate|internal|package|open|final|static|class|override|mutating|nonmutating|lazy|weak|unowned|nonisolated|dynamic|required|convenience|indirect)(?:\([a-z]+\))?\s+)*`

var (
	swiftClassRe = regexp.MustCompile(`^` + swiftModifiers + `(?P<kw>class|struct|enum|protocol|actor|extension)\s+(?P<name>[A-Za-z_][A-Za-z0-9_]*)`)
	swiftFuncRe  = regexp.MustCompile(`^` + swiftModifiers + `func\s+(?P<name>[A-Za-z_][A-Za-z0-9_]*)\s*[(<]`)
	swiftInitRe  = regexp.MustCompile(`^` + swiftModifiers + `(?P<name>init|deinit)\b`)
	swiftFieldRe = regexp.MustCompile(`^` + swiftModifiers + `(?:var|let)\s+(?P<name>[A-Za-z_][A-Za-z0-9_]*)\s*[:=]`)
)

// swiftReserved rejects "class func", "class var" and similar modifier uses of "class".
var swiftReserved = map[string]bool{
	"func": true,
	"var":  true,
	"let":  true,
}

// swiftParser parses Swift files.
type swiftParser struct {
	grammar *braceGrammar
}

// NewSwiftParser creates a new Swift parser.
func NewSwiftParser() Parser {
	return &swiftParser{
		grammar: &braceGrammar{
			comments: swiftComments,
			class:    swiftClassRe,
			function: swiftFuncRe,
			method:   []*regexp.Regexp{swiftFuncRe, swiftInitRe},
			field:    swiftFieldRe,
			reserved: swiftReserved,
		},
	}
}

func (p *swiftParser) Language() Language { return LanguageSwift }

func (p *swiftParser) Extensions() []string { return []string{".swift"} }

// Parse extracts types, functions and imports from a Swift file.
func (p *swiftParser) Parse(name string, lines []string, inv *Inventory) []extraction.Element {
	elements := p.grammar.scan(name, lines)
	if imports := ResolveImports(lines, LanguageSwift, inv); len(imports) > 0 {
		elements = append(elements, extraction.FileImports{Name: name, Imports: imports})
	}
	return elements
}
