package graph

import (
	"path"
	"sort"
	"strings"

	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
)

var jsExtensions = []string{"", ".js", ".mjs", ".cjs", "/index.js"}

// fileIndex answers path lookups against the set of parsed files.
type fileIndex struct {
	ids   []string            // sorted
	exact map[string]bool     // id -> present
	lower map[string][]string // lower-cased id -> ids
}

func newFileIndex(ids []string) *fileIndex {
	idx := &fileIndex{
		ids:   append([]string(nil), ids...),
		exact: make(map[string]bool, len(ids)),
		lower: make(map[string][]string, len(ids)),
	}
	sort.Strings(idx.ids)
	for _, id := range idx.ids {
		idx.exact[id] = true
		l := strings.ToLower(id)
		idx.lower[l] = append(idx.lower[l], id)
	}
	return idx
}

// suffix returns the first id (in sorted order) equal to rel or ending
// with "/"+rel.
func (idx *fileIndex) suffix(rel string, foldCase bool) (string, bool) {
	if foldCase {
		rel = strings.ToLower(rel)
	}
	for _, id := range idx.ids {
		cand := id
		if foldCase {
			cand = strings.ToLower(id)
		}
		if cand == rel || strings.HasSuffix(cand, "/"+rel) {
			return id, true
		}
	}
	return "", false
}

// resolve maps an import written in a file under folder to a project file.
func (idx *fileIndex) resolve(lang parsers.Language, folder, imp string) (string, bool) {
	switch lang {
	case parsers.LanguageJavaScript:
		if rel, ok := relativeTo(folder, imp); ok {
			for _, ext := range jsExtensions {
				if idx.exact[rel+ext] {
					return rel + ext, true
				}
			}
			return "", false
		}
		return idx.suffix(imp+".js", true)

	case parsers.LanguagePython:
		if strings.HasPrefix(imp, ".") {
			dots := len(imp) - len(strings.TrimLeft(imp, "."))
			base := folder
			for i := 1; i < dots; i++ {
				if base == "." {
					return "", false
				}
				base = path.Dir(base)
			}
			mod := strings.ReplaceAll(strings.TrimLeft(imp, "."), ".", "/")
			rel := path.Join(base, mod)
			if strings.HasPrefix(rel, "..") {
				return "", false
			}
			cands := []string{path.Join(rel, "__init__.py")}
			if mod != "" {
				cands = append([]string{rel + ".py"}, cands...)
			}
			for _, cand := range cands {
				if idx.exact[cand] {
					return cand, true
				}
			}
			return "", false
		}
		mod := strings.ReplaceAll(imp, ".", "/")
		for _, cand := range []string{mod + ".py", imp + ".py", mod + "/__init__.py"} {
			if id, ok := idx.suffix(cand, false); ok {
				return id, true
			}
		}
		return "", false

	case parsers.LanguageSwift:
		return idx.suffix(imp+".swift", true)

	case parsers.LanguageHTML:
		rel, ok := relativeTo(folder, imp)
		if !ok {
			rel = path.Join(folder, imp)
		}
		if idx.exact[rel] {
			return rel, true
		}
		if ids := idx.lower[strings.ToLower(rel)]; len(ids) > 0 {
			return ids[0], true
		}
		return "", false
	}
	return "", false
}

// relativeTo resolves "./x", "../x" against folder and "/x" against the
// root. Bare names are not relative.
func relativeTo(folder, ref string) (string, bool) {
	var rel string
	switch {
	case strings.HasPrefix(ref, "/"):
		rel = path.Clean(strings.TrimLeft(ref, "/"))
	case strings.HasPrefix(ref, "."):
		rel = path.Join(folder, ref)
	default:
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
