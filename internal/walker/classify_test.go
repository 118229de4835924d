package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for file eligibility:
// - Empty pattern list falls back to the supported-extension map
// - Glob patterns match the basename
// - Dot-prefixed patterns match as suffixes
// - Bare patterns match extension (case-insensitive) or exact filename

func TestIsEligible_DefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEligible("src/app.js", nil))
	assert.True(t, IsEligible("src/app.tsx", nil))
	assert.True(t, IsEligible("lib/util.py", nil))
	assert.False(t, IsEligible("README.md", nil))
	assert.False(t, IsEligible("main.go", nil))
	assert.False(t, IsEligible("Makefile", nil))
}

func TestIsEligible_GlobPattern(t *testing.T) {
	t.Parallel()

	patterns := []string{"*.test.js"}
	assert.True(t, IsEligible("src/app.test.js", patterns))
	assert.False(t, IsEligible("src/app.js", patterns))
}

func TestIsEligible_SuffixPattern(t *testing.T) {
	t.Parallel()

	patterns := []string{".spec.ts"}
	assert.True(t, IsEligible("api/users.spec.ts", patterns))
	assert.False(t, IsEligible("api/users.ts", patterns))
}

func TestIsEligible_ExtensionOrFilename(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEligible("lib/util.py", []string{"py"}))
	assert.True(t, IsEligible("lib/util.PY", []string{"py"}), "extension comparison is case-insensitive")
	assert.True(t, IsEligible("conf/settings.py", []string{"settings.py"}))
	assert.False(t, IsEligible("lib/util.js", []string{"py"}))
}

func TestIsEligible_AnyPatternSuffices(t *testing.T) {
	t.Parallel()

	patterns := []string{"py", "*.jsx"}
	assert.True(t, IsEligible("a.py", patterns))
	assert.True(t, IsEligible("b.jsx", patterns))
	assert.False(t, IsEligible("c.ts", patterns))
}
