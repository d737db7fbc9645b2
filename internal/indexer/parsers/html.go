package parsers

import "github.com/mvp-joe/project-atlas/internal/indexer/extraction"

// htmlDescription labels the synthetic record emitted for markup files.
const htmlDescription = "HTML file"

// htmlParser reports only the local scripts and stylesheets a page loads.
type htmlParser struct{}

// NewHTMLParser creates a new HTML parser.
func NewHTMLParser() Parser {
	return &htmlParser{}
}

func (p *htmlParser) Language() Language { return LanguageHTML }

func (p *htmlParser) Extensions() []string { return []string{".html", ".htm"} }

// Parse emits a single MarkupFile record; no structural scan is done.
func (p *htmlParser) Parse(name string, lines []string, inv *Inventory) []extraction.Element {
	return []extraction.Element{
		extraction.MarkupFile{
			Name:        name,
			Description: htmlDescription,
			Imports:     ResolveImports(lines, LanguageHTML, inv),
		},
	}
}
