package walker

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/AB498/code-context-provider-mcp/internal/language"
)

// IsEligible decides whether a file may be handed to the extractor. With a
// non-empty allow-list a file qualifies when its basename matches any
// pattern; otherwise the static extension map decides. Pure function, no
// filesystem access.
//
// Pattern forms:
//   - contains `*`: compiled as a glob over the full basename ("*.test.js")
//   - starts with `.`: exact suffix match (".spec.ts")
//   - anything else: case-insensitive extension ("py") or exact filename
func IsEligible(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return language.Supported(language.Ext(path))
	}

	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matchesPattern(base, path, pattern) {
			return true
		}
	}
	return false
}

func matchesPattern(base, path, pattern string) bool {
	switch {
	case strings.Contains(pattern, "*"):
		g, err := glob.Compile(pattern)
		return err == nil && g.Match(base)
	case strings.HasPrefix(pattern, "."):
		return strings.HasSuffix(base, pattern)
	default:
		return strings.EqualFold(language.Ext(path), pattern) || base == pattern
	}
}
