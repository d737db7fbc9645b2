// Package document assembles the generated architecture section and splices
// it into a Markdown file between sentinel marker lines.
package document

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
)

// NoFiles is written for a folder without visible files.
const NoFiles = "*(No files)*"

// Compose returns the generated section as lines: the fenced directory tree
// followed by one block per folder, folders sorted by path.
func Compose(tree string, folders []indexer.FolderResult) []string {
	lines := []string{"## Project structure", "", "```"}
	lines = append(lines, strings.Split(tree, "\n")...)
	lines = append(lines, "```", "")

	sorted := make([]indexer.FolderResult, len(folders))
	copy(sorted, folders)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, f := range sorted {
		lines = append(lines, composeFolder(f)...)
	}
	return lines
}

func composeFolder(f indexer.FolderResult) []string {
	lines := []string{"### Folder: " + f.Path}

	if len(f.Files) == 0 {
		lines = append(lines, NoFiles)
	} else {
		files := append([]string(nil), f.Files...)
		sort.Strings(files)
		lines = append(lines, "Files:")
		for _, name := range files {
			lines = append(lines, "- "+name)
		}
	}

	if len(f.Details) > 0 {
		lines = append(lines, "", "**File details:**")
		for _, d := range f.Details {
			lines = append(lines, fmt.Sprintf("- **File**: %s (language: %s)", d.Name, d.Language))
			if d.Err != nil {
				lines = append(lines, fmt.Sprintf("**Error processing file %s: %v**", d.Name, d.Err))
				continue
			}
			for _, el := range d.Elements {
				lines = append(lines, composeElement(el)...)
			}
		}
	}

	return append(lines, "")
}

func composeElement(el extraction.Element) []string {
	lines := []string{fmt.Sprintf("  - %s: **%s**", Label(el), el.ElementName())}
	describe := func(desc string) {
		if desc != "" {
			lines = append(lines, "    - *Description:* "+desc)
		}
	}
	imports := func(imps []string) {
		if len(imps) > 0 {
			lines = append(lines, "    - *Imports:* "+strings.Join(imps, ", "))
		}
	}

	switch e := el.(type) {
	case extraction.FileComment:
		describe(e.Description)
	case extraction.Class:
		describe(e.Description)
		if len(e.Fields) > 0 {
			lines = append(lines, "    - *Fields:* "+strings.Join(e.Fields, ", "))
		}
		for _, m := range e.Methods {
			if m.Description != "" {
				lines = append(lines, fmt.Sprintf("    - *Method:* %s - %s", m.Name, m.Description))
			} else {
				lines = append(lines, "    - *Method:* "+m.Name)
			}
		}
	case extraction.Function:
		describe(e.Description)
	case extraction.FileImports:
		imports(e.Imports)
	case extraction.MarkupFile:
		describe(e.Description)
		imports(e.Imports)
	}
	return lines
}

// Label is the heading word used for an element in the document.
func Label(el extraction.Element) string {
	switch e := el.(type) {
	case extraction.FileComment:
		return "File comment"
	case extraction.Class:
		if e.Keyword != "" {
			return capitalize(e.Keyword)
		}
		return "Class"
	case extraction.Function:
		return "Function"
	case extraction.FileImports:
		return "Imports"
	case extraction.MarkupFile:
		return "HTML"
	}
	return capitalize(string(el.Kind()))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
