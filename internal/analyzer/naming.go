package analyzer

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// A nameRecognizer inspects the ancestor chain of an anonymous function node
// and returns the name the surrounding syntax gives it, or "" when it does
// not apply. Recognizers run in priority order and the first non-empty
// answer wins; keeping them as an explicit list makes the ordering testable
// on its own.
type nameRecognizer func(node *sitter.Node, source []byte) string

var nameRecognizers = []nameRecognizer{
	boundVariableName,
	objectKeyName,
	assignmentTargetName,
	callbackPropertyName,
}

// anonymousName is the fallback when no recognizer applies.
const anonymousName = "anonymous"

// inferName resolves the contextual name of an expression-form function.
func inferName(node *sitter.Node, source []byte) string {
	for _, recognize := range nameRecognizers {
		if name := recognize(node, source); name != "" {
			return name
		}
	}
	return anonymousName
}

// boundVariableName handles `const f = () => ...`: the function is the
// right-hand side of a variable binding.
func boundVariableName(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	if parent == nil || parent.Kind() != "variable_declarator" {
		return ""
	}
	return fieldText(parent, "name", source)
}

// objectKeyName handles `{ handler: () => ... }`: the function is the value
// of a key-value pair. Quotes around the key are stripped.
func objectKeyName(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	if parent == nil || parent.Kind() != "pair" {
		return ""
	}
	return stripQuotes(fieldText(parent, "key", source))
}

// assignmentTargetName handles `obj.onClick = () => ...` and
// `handler = () => ...`: the name comes from the assignment target; a dotted
// target yields its rightmost property.
func assignmentTargetName(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	if parent == nil || parent.Kind() != "assignment_expression" {
		return ""
	}
	left := parent.ChildByFieldName("left")
	if left == nil {
		return ""
	}
	if left.Kind() == "member_expression" {
		return fieldText(left, "property", source)
	}
	return nodeText(left, source)
}

// callbackPropertyName handles `promise.then(() => ...)`: the function is an
// inline argument to a method call, and the preceding property name stands
// in for a function name.
func callbackPropertyName(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	if parent == nil || parent.Kind() != "arguments" {
		return ""
	}
	call := parent.Parent()
	if call == nil || call.Kind() != "call_expression" {
		return ""
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Kind() != "member_expression" {
		return ""
	}
	return fieldText(fn, "property", source)
}
