package parsers

import (
	"regexp"
	"sort"
	"strings"
)

var (
	pythonImportRe = regexp.MustCompile(`^\s*(?:import\s+([A-Za-z0-9_.]+)|from\s+([A-Za-z0-9_.]+)\s+import)`)
	swiftImportRe  = regexp.MustCompile(`^\s*(?:@testable\s+)?import\s+([A-Za-z0-9_]+)`)

	jsImportFromRe  = regexp.MustCompile(`^\s*import\s+.*\s+from\s+['"](.+?)['"]`)
	jsImportBareRe  = regexp.MustCompile(`^\s*import\s+['"](.+?)['"]`)
	jsExportFromRe  = regexp.MustCompile(`^\s*export\s+.*\s+from\s+['"](.+?)['"]`)
	jsRequireRe     = regexp.MustCompile(`^\s*(?:const|let|var)\s+.*=\s*require\(\s*['"](.+?)['"]\s*\)`)
	htmlScriptSrcRe = regexp.MustCompile(`(?i)<script\s+[^>]*src=["'](.+?)["']`)
	htmlLinkHrefRe  = regexp.MustCompile(`(?i)<link\s+[^>]*href=["'](.+?)["']`)
)

// ResolveImports extracts the references a file makes to other project files.
// Lines that do not look like imports are skipped. The result is sorted and
// free of duplicates.
func ResolveImports(lines []string, lang Language, inv *Inventory) []string {
	seen := make(map[string]struct{})
	add := func(ref string) {
		if ref != "" {
			seen[ref] = struct{}{}
		}
	}

	for _, line := range lines {
		switch lang {
		case LanguagePython:
			if m := pythonImportRe.FindStringSubmatch(line); m != nil {
				module := m[1]
				if module == "" {
					module = m[2]
				}
				if resolvesPython(module, inv) {
					add(module)
				}
			}
		case LanguageSwift:
			if m := swiftImportRe.FindStringSubmatch(line); m != nil {
				if inv.HasSuffix(m[1]+".swift", true) {
					add(m[1])
				}
			}
		case LanguageJavaScript:
			if module := matchJavaScriptImport(line); module != "" && resolvesJavaScript(module, inv) {
				add(module)
			}
		case LanguageHTML:
			for _, re := range []*regexp.Regexp{htmlScriptSrcRe, htmlLinkHrefRe} {
				for _, m := range re.FindAllStringSubmatch(line, -1) {
					if !isExternalURL(m[1]) {
						add(m[1])
					}
				}
			}
		}
	}

	imports := make([]string, 0, len(seen))
	for ref := range seen {
		imports = append(imports, ref)
	}
	sort.Strings(imports)
	return imports
}

func matchJavaScriptImport(line string) string {
	for _, re := range []*regexp.Regexp{jsImportFromRe, jsImportBareRe, jsExportFromRe, jsRequireRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

func resolvesPython(module string, inv *Inventory) bool {
	if strings.HasPrefix(module, ".") {
		return true
	}
	asPath := strings.ReplaceAll(module, ".", "/")
	return inv.HasSuffix(asPath+".py", false) ||
		inv.HasSuffix(module+".py", false) ||
		inv.HasSuffix(asPath+"/__init__.py", false)
}

func resolvesJavaScript(module string, inv *Inventory) bool {
	if strings.HasPrefix(module, ".") || strings.HasPrefix(module, "/") {
		return true
	}
	return inv.HasSuffix(module+".js", true)
}

func isExternalURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//")
}
