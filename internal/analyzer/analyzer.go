// Package analyzer reduces parsed syntax trees to compact per-file symbol
// tables: functions, variables, classes, imports, and exports with precise
// source positions. Extraction is pure given fixed input and keeps no state
// across files.
package analyzer

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/AB498/code-context-provider-mcp/internal/language"
)

// Extract parses one source file and returns its symbol table. It returns
// (nil, nil) when the file's extension maps to no loaded grammar, and an
// error when parsing fails outright; the caller logs and skips, it never
// aborts the traversal.
func Extract(path string, source []byte) (*FileSymbols, error) {
	lang, family := language.ForExt(language.Ext(path))
	if lang == nil {
		return nil, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse failed for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	switch family {
	case language.FamilyJS:
		return extractJS(path, root, source), nil
	case language.FamilyPython:
		return extractPython(path, root, source), nil
	}
	return nil, nil
}
