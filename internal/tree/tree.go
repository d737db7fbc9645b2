// Package tree renders a directory as indented text in the style of the
// tree(1) command.
package tree

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	space      = "    "

	// Collapsed is the single child rendered under an ignored directory.
	Collapsed = "..."
)

// Render returns the tree under root. The first line is the root's base
// name followed by "/". Entries are sorted by name in byte order with files
// and directories mixed; hidden entries are skipped. Directories for which
// isIgnoredDir returns true are shown with a single Collapsed child and not
// read. Unreadable directories are shown without children.
//
// Symbolic links are listed as plain entries and never followed.
func Render(root string, isIgnoredDir func(name string) bool) string {
	if isIgnoredDir == nil {
		isIgnoredDir = func(string) bool { return false }
	}

	name := filepath.Base(root)
	if abs, err := filepath.Abs(root); err == nil {
		name = filepath.Base(abs)
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("/")
	renderDir(&sb, root, "", isIgnoredDir)
	return sb.String()
}

func renderDir(sb *strings.Builder, dir, prefix string, isIgnoredDir func(string) bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	visible := entries[:0]
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			visible = append(visible, e)
		}
	}

	for i, e := range visible {
		connector, ext := branch, pipe
		if i == len(visible)-1 {
			connector, ext = lastBranch, space
		}

		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(e.Name())
		if !e.IsDir() {
			continue
		}
		sb.WriteString("/")

		if isIgnoredDir(e.Name()) {
			sb.WriteString("\n")
			sb.WriteString(prefix + ext + lastBranch + Collapsed)
			continue
		}
		renderDir(sb, filepath.Join(dir, e.Name()), prefix+ext, isIgnoredDir)
	}
}
