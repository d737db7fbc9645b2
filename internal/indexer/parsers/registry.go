package parsers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

var (
	// ErrUnsupportedLanguage indicates a file extension with no registered parser
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidEncoding indicates a file that is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid UTF-8 content")
)

// Registry routes files to parsers by extension.
type Registry struct {
	byExt map[string]Parser
}

// NewRegistry creates a registry for the given parsers. Later parsers
// replace earlier ones registered for the same extension.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{byExt: make(map[string]Parser)}
	for _, p := range parsers {
		for _, ext := range p.Extensions() {
			r.byExt[strings.ToLower(ext)] = p
		}
	}
	return r
}

// DefaultRegistry returns a registry with every built-in parser.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewSwiftParser(),
		NewPythonParser(),
		NewJavaScriptParser(),
		NewHTMLParser(),
	)
}

// ForFile returns the parser for a file name. Matching is case-insensitive.
func (r *Registry) ForFile(name string) (Parser, bool) {
	p, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	return p, ok
}

// ParseFile reads and parses a file. Read and decode failures are returned
// to the caller unchanged in kind; nothing is recovered here.
func (r *Registry) ParseFile(ctx context.Context, filePath string, inv *Inventory) ([]extraction.Element, Language, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	p, ok := r.ForFile(filePath)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, filepath.Base(filePath))
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, p.Language(), err
	}
	if !utf8.Valid(content) {
		return nil, p.Language(), fmt.Errorf("%w: %s", ErrInvalidEncoding, filepath.Base(filePath))
	}

	return p.Parse(filepath.Base(filePath), SplitLines(string(content)), inv), p.Language(), nil
}

// SplitLines splits file content into lines without line terminators.
func SplitLines(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
