package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for ResolveImports and Inventory:
// - Relative Python and JavaScript imports are kept without an inventory match
// - Bare module names are kept only when an inventory path ends with them
// - Python packages resolve through __init__.py
// - Swift matching is case-insensitive
// - HTML references with an absolute network scheme are dropped
// - Results are de-duplicated and sorted
// - Malformed lines are skipped silently
// - Inventory lookups are nil-safe and stable across repeated calls

func TestResolveImports_PythonRelativeAlwaysKept(t *testing.T) {
	t.Parallel()

	lines := []string{
		"import os",
		"from .models import User",
		"from ..shared import helpers",
	}
	imports := ResolveImports(lines, LanguagePython, NewInventory(nil))

	assert.Equal(t, []string{"..shared", ".models"}, imports)
}

func TestResolveImports_PythonInventoryMatch(t *testing.T) {
	t.Parallel()

	inv := NewInventory([]string{"app/utils.py", "pkg/__init__.py", "./tools.py"})
	lines := []string{
		"import app.utils",
		"from pkg import thing",
		"import tools",
		"import missing.module",
		"import",
	}

	imports := ResolveImports(lines, LanguagePython, inv)
	assert.Equal(t, []string{"app.utils", "pkg", "tools"}, imports)
}

func TestResolveImports_JavaScript(t *testing.T) {
	t.Parallel()

	inv := NewInventory([]string{"src/Helpers.js"})
	lines := []string{
		"import x from './a';",
		`const y = require("lodash");`,
		"import z from 'helpers';",
		"import './side.css';",
		"export { b } from '/abs/b';",
		"import x2 from './a';",
		"import broken from",
	}

	imports := ResolveImports(lines, LanguageJavaScript, inv)
	assert.Equal(t, []string{"./a", "./side.css", "/abs/b", "helpers"}, imports)
}

func TestResolveImports_SwiftCaseInsensitive(t *testing.T) {
	t.Parallel()

	inv := NewInventory([]string{"Sources/networkclient.swift"})
	lines := []string{"import Foundation", "@testable import NetworkClient"}

	imports := ResolveImports(lines, LanguageSwift, inv)
	assert.Equal(t, []string{"NetworkClient"}, imports)
}

func TestResolveImports_HTMLDropsNetworkReferences(t *testing.T) {
	t.Parallel()

	lines := []string{
		`<script src="js/app.js"></script><link rel="stylesheet" href="css/site.css">`,
		`<script src="https://cdn.example.com/x.js"></script>`,
		`<link href="http://example.com/y.css">`,
		`<script src="//cdn.example.com/z.js"></script>`,
		`<SCRIPT SRC="js/app.js"></SCRIPT>`,
	}

	imports := ResolveImports(lines, LanguageHTML, nil)
	assert.Equal(t, []string{"css/site.css", "js/app.js"}, imports)
}

func TestInventory_Lookups(t *testing.T) {
	t.Parallel()

	inv := NewInventory([]string{"b/One.py", "a/two.js", "a/two.js"})
	defer inv.Close()

	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, []string{"a/two.js", "b/One.py"}, inv.Paths())
	assert.True(t, inv.Contains("a/two.js"))
	assert.False(t, inv.Contains("two.js"))

	assert.True(t, inv.HasSuffix("one.py", true))
	assert.False(t, inv.HasSuffix("one.py", false))
	// Memoised answers stay the same.
	assert.True(t, inv.HasSuffix("one.py", true))
	assert.False(t, inv.HasSuffix("one.py", false))

	var empty *Inventory
	assert.False(t, empty.HasSuffix("x", true))
	assert.False(t, empty.Contains("x"))
	assert.Zero(t, empty.Len())
}
