package parsers

import (
	"path"
	"sort"
	"strings"

	"github.com/maypok86/otter"
)

// lookupCacheSize bounds the memo of suffix lookups kept for one run.
const lookupCacheSize = 4096

// Inventory is the set of project-relative file paths collected before parsing.
// Paths use forward slashes. An Inventory is never mutated after construction.
type Inventory struct {
	paths   []string
	folded  []string
	set     map[string]struct{}
	lookups *otter.Cache[string, bool]
}

// NewInventory builds an inventory from project-relative paths.
func NewInventory(paths []string) *Inventory {
	inv := &Inventory{
		set: make(map[string]struct{}, len(paths)),
	}

	for _, p := range paths {
		p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
		if _, dup := inv.set[p]; dup {
			continue
		}
		inv.set[p] = struct{}{}
		inv.paths = append(inv.paths, p)
	}
	sort.Strings(inv.paths)

	inv.folded = make([]string, len(inv.paths))
	for i, p := range inv.paths {
		inv.folded[i] = strings.ToLower(p)
	}

	if cache, err := otter.MustBuilder[string, bool](lookupCacheSize).Build(); err == nil {
		inv.lookups = &cache
	}

	return inv
}

// Len returns the number of paths.
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.paths)
}

// Paths returns a sorted copy of all paths.
func (inv *Inventory) Paths() []string {
	if inv == nil {
		return nil
	}
	out := make([]string, len(inv.paths))
	copy(out, inv.paths)
	return out
}

// Contains reports whether p is a project file.
func (inv *Inventory) Contains(p string) bool {
	if inv == nil {
		return false
	}
	_, ok := inv.set[path.Clean(p)]
	return ok
}

// HasSuffix reports whether any project path ends with suffix.
// The first match wins; no ranking is done between several candidates.
func (inv *Inventory) HasSuffix(suffix string, foldCase bool) bool {
	if inv == nil || suffix == "" {
		return false
	}

	key := "s:" + suffix
	if foldCase {
		key = "f:" + suffix
	}
	if inv.lookups != nil {
		if hit, ok := inv.lookups.Get(key); ok {
			return hit
		}
	}

	candidates := inv.paths
	if foldCase {
		candidates = inv.folded
		suffix = strings.ToLower(suffix)
	}

	found := false
	for _, p := range candidates {
		if strings.HasSuffix(p, suffix) {
			found = true
			break
		}
	}

	if inv.lookups != nil {
		inv.lookups.Set(key, found)
	}
	return found
}

// Close releases the lookup memo.
func (inv *Inventory) Close() {
	if inv != nil && inv.lookups != nil {
		inv.lookups.Close()
	}
}
