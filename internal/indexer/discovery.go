package indexer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// nameMatcher matches entry names exactly or against glob patterns.
type nameMatcher struct {
	exact    map[string]bool
	patterns []compiledPattern
}

func newNameMatcher(patterns []string) (*nameMatcher, error) {
	m := &nameMatcher{exact: make(map[string]bool)}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m.exact[p] = true
		if !strings.ContainsAny(p, "*?[{") {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, compiledPattern{pattern: p, glob: g})
	}
	return m, nil
}

func (m *nameMatcher) match(name string) bool {
	if m.exact[name] {
		return true
	}
	for _, cp := range m.patterns {
		if cp.glob.Match(name) {
			return true
		}
	}
	return false
}

// Rules decides which directory entries a scan skips.
type Rules struct {
	dirs  *nameMatcher
	files *nameMatcher
}

// NewRules compiles the ignore lists. Entries without glob metacharacters
// match names exactly.
func NewRules(ignoreDirs, ignoreFiles []string) (*Rules, error) {
	dirs, err := newNameMatcher(ignoreDirs)
	if err != nil {
		return nil, err
	}
	files, err := newNameMatcher(ignoreFiles)
	if err != nil {
		return nil, err
	}
	return &Rules{dirs: dirs, files: files}, nil
}

// IgnoreDir reports whether a directory with this name is collapsed and never descended.
func (r *Rules) IgnoreDir(name string) bool {
	return r.dirs.match(name)
}

// IgnoreFile reports whether a file with this name is left out of listings.
func (r *Rules) IgnoreFile(name string) bool {
	return r.files.match(name)
}

// IsHidden reports whether an entry name is hidden (leading dot).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Discover walks the root directory and returns the folder listing and the
// file inventory. Hidden entries, ignored directories and ignored files are
// skipped. Unreadable subdirectories are left out and logged; only a failure
// on the root itself is returned.
func Discover(opts Options) (*Snapshot, error) {
	rules, err := NewRules(opts.IgnoreDirs, opts.IgnoreFiles)
	if err != nil {
		return nil, err
	}
	return discover(opts, rules)
}

func discover(opts Options, rules *Rules) (*Snapshot, error) {
	root := filepath.Clean(opts.RootDir)
	log := opts.logger()

	folders := make(map[string]*Folder)
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if rel == RootFolder {
				return walkErr
			}
			log.Warn("skipping unreadable entry", "path", rel, "error", walkErr)
			delete(folders, rel)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if rel != RootFolder && (IsHidden(name) || rules.IgnoreDir(name)) {
				return fs.SkipDir
			}
			folders[rel] = &Folder{Path: rel}
			return nil
		}

		if IsHidden(name) || rules.IgnoreFile(name) {
			return nil
		}

		dir := filepath.ToSlash(filepath.Dir(rel))
		if f, ok := folders[dir]; ok {
			f.Files = append(f.Files, name)
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	snap := &Snapshot{Inventory: parsers.NewInventory(paths)}
	for _, f := range folders {
		sort.Strings(f.Files)
		snap.Folders = append(snap.Folders, *f)
	}
	sort.Slice(snap.Folders, func(i, j int) bool {
		return snap.Folders[i].Path < snap.Folders[j].Path
	})
	return snap, nil
}
