// Package language maps file extensions to loaded tree-sitter grammars.
//
// Five extension keys are supported: js, jsx, ts, tsx, py. The JS family
// shares one grammar module (the TSX variant parses the JSX dialects), and
// Python has its own. Unknown extensions resolve to nil rather than an
// error so a missing grammar disables analysis without stopping traversal.
package language

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Family identifies which reduction passes apply to a grammar.
type Family string

const (
	FamilyJS     Family = "javascript"
	FamilyPython Family = "python"
)

type grammar struct {
	language *sitter.Language
	family   Family
}

var grammars = map[string]grammar{
	"js":  {sitter.NewLanguage(typescript.LanguageTypescript()), FamilyJS},
	"ts":  {sitter.NewLanguage(typescript.LanguageTypescript()), FamilyJS},
	"jsx": {sitter.NewLanguage(typescript.LanguageTSX()), FamilyJS},
	"tsx": {sitter.NewLanguage(typescript.LanguageTSX()), FamilyJS},
	"py":  {sitter.NewLanguage(python.Language()), FamilyPython},
}

// Ext returns the normalized extension key for a path: lowercase, no dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Supported reports whether the extension key has a loaded grammar.
func Supported(ext string) bool {
	_, ok := grammars[strings.ToLower(ext)]
	return ok
}

// ForExt returns the grammar and family for an extension key, or nil when
// the extension is not one of the supported keys.
func ForExt(ext string) (*sitter.Language, Family) {
	g, ok := grammars[strings.ToLower(ext)]
	if !ok {
		return nil, ""
	}
	return g.language, g.family
}
