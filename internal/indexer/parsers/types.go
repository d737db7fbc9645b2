package parsers

import "github.com/mvp-joe/project-atlas/internal/indexer/extraction"

// Language identifies a supported source language.
type Language string

const (
	LanguageSwift      Language = "swift"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "js"
	LanguageHTML       Language = "html"
)

// Parser turns the lines of one file into element records.
type Parser interface {
	// Language returns the language this parser handles.
	Language() Language

	// Extensions lists the lower-case file extensions routed to this parser.
	Extensions() []string

	// Parse extracts elements from lines. name is the file's base name and
	// inv is the project inventory used for import resolution.
	// Parse never fails; unrecognized lines simply produce no elements.
	Parse(name string, lines []string, inv *Inventory) []extraction.Element
}
