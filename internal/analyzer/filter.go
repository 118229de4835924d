package analyzer

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Thresholds for the significance filter. Applies to expression-form
// functions only: declared functions and methods always survive.
const (
	trivialInlineLimit   = 15  // below this, an inline function is noise
	callbackLengthLimit  = 50  // short callbacks in iteration chains are noise
	anonymousCodeLimit   = 100 // anonymous bodies up to this length are noise
	callContextByteLimit = 30  // how much of the call text the filter inspects
)

// iterationCallbacks are the member-call prefixes whose short inline
// arguments get dropped (`arr.map(x => x * 2)` and friends).
var iterationCallbacks = []string{".map(", ".filter(", ".foreach(", ".find(", ".reduce("}

// isSignificant decides whether an expression-form function earns a symbol
// record. name is the inferred name, code the node's raw source text.
func isSignificant(node *sitter.Node, name, code string, source []byte) bool {
	if len(code) < trivialInlineLimit {
		return false
	}
	if len(code) < callbackLengthLimit && inIterationCallback(node, source) {
		return false
	}
	if name == anonymousName && len(code) <= anonymousCodeLimit {
		return false
	}
	return true
}

// inIterationCallback reports whether the node sits inside a call whose
// leading text looks like a collection-iteration chain. The check is a
// case-insensitive substring match over the leading bytes of the nearest
// call or member-access ancestor's text; the cut may land mid-rune, which
// is fine for an ASCII marker search.
func inIterationCallback(node *sitter.Node, source []byte) bool {
	ctx := findAncestor(node, "call_expression", "member_expression")
	if ctx == nil {
		return false
	}
	leading := strings.ToLower(nodeText(ctx, source))
	if len(leading) > callContextByteLimit {
		leading = leading[:callContextByteLimit]
	}
	for _, marker := range iterationCallbacks {
		if strings.Contains(leading, marker) {
			return true
		}
	}
	return false
}
