package analyzer

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// fieldText reads a named field's text, or "" when the field is absent.
func fieldText(node *sitter.Node, field string, source []byte) string {
	return nodeText(node.ChildByFieldName(field), source)
}

// nodePosition converts a node's 0-based row/column span into the 1-based
// line, 0-based column form used by symbol records.
func nodePosition(node *sitter.Node) Position {
	start := node.StartPosition()
	end := node.EndPosition()
	return Position{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column),
	}
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor prunes that subtree.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// findChildrenByType finds all direct child nodes with the given type.
func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}

// hasChildOfKind reports whether any direct child (named or anonymous token)
// has the given type tag.
func hasChildOfKind(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(uint(i)).Kind() == nodeType {
			return true
		}
	}
	return false
}

// findAncestor returns the nearest ancestor whose type tag is one of kinds.
func findAncestor(node *sitter.Node, kinds ...string) *sitter.Node {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		for _, k := range kinds {
			if parent.Kind() == k {
				return parent
			}
		}
	}
	return nil
}

// stripQuotes removes one layer of string quoting from a literal's text.
func stripQuotes(s string) string {
	return strings.Trim(s, "\"'`")
}
