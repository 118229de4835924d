package walker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the tree walker:
// - Ignore file excludes whole subtrees from the rendered tree
// - Analysis depth obeys maxDepth while the tree itself never truncates
// - maxDepth 0 analyzes root-level files only
// - Depth comparators are intentionally asymmetric (strict for directory
//   propagation, inclusive for files) - exercised, not corrected
// - Oversized files are listed but never read for analysis
// - Unreadable directories render an inline error entry, siblings continue
// - Missing root renders a one-line notice
// - Anonymous records never reach the functions listing
// - Summary reports raw counts, including filtered inline functions
// - Root validation rejects relative paths and filesystem roots

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWalk_GitignoreExcludesSubtree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.js", "function foo(){return 1;}")
	writeFile(t, dir, ".gitignore", "dist/\n")
	writeFile(t, dir, "dist/bundle.js", "var x = 1;")

	result := Walk(dir, DefaultOptions())

	assert.Contains(t, result.Tree, "index.js")
	assert.NotContains(t, result.Tree, "dist")
	assert.NotContains(t, result.Tree, "bundle.js")
	assert.Len(t, result.Analyzed, 1)
}

func TestWalk_IgnoreRulesScopedToSubtree(t *testing.T) {
	t.Parallel()

	// A nested ignore file applies below its directory, not to siblings.
	dir := t.TempDir()
	writeFile(t, dir, "a/.gitignore", "generated/\n")
	writeFile(t, dir, "a/generated/x.js", "var x = 1;")
	writeFile(t, dir, "b/generated/y.js", "var y = 1;")

	result := Walk(dir, DefaultOptions())

	assert.NotContains(t, result.Tree, "x.js")
	assert.Contains(t, result.Tree, "y.js")
}

func TestWalk_TreeNeverDepthLimited(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a/b/c/deep.js", "function deep(){return 42;}")

	opts := DefaultOptions()
	opts.MaxDepth = 1
	result := Walk(dir, opts)

	// Listing goes all the way down; analysis stops.
	assert.Contains(t, result.Tree, "deep.js")
	assert.Empty(t, result.Analyzed)
}

func TestWalk_MaxDepthZero(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "root.js", "function r(){return 1;}")
	writeFile(t, dir, "sub/nested.js", "function n(){return 2;}")

	opts := DefaultOptions()
	opts.MaxDepth = 0
	result := Walk(dir, opts)

	require.Len(t, result.Analyzed, 1)
	assert.Equal(t, "root.js", filepath.Base(result.Analyzed[0]))

	// The nested file is still listed, just without a symbol summary.
	assert.Contains(t, result.Tree, "nested.js")
	for _, line := range strings.Split(result.Tree, "\n") {
		if strings.Contains(line, "nested.js") {
			assert.NotContains(t, line, "functions")
		}
	}
}

func TestWalk_DepthComparatorAsymmetry(t *testing.T) {
	t.Parallel()

	// Files at depth == maxDepth are analyzed (inclusive test) even though
	// directories at that depth no longer propagate analysis (strict test).
	// Observed behavior, kept as is.
	dir := t.TempDir()
	writeFile(t, dir, "sub/at_limit.js", "function a(){return 1;}")
	writeFile(t, dir, "sub/deeper/past_limit.js", "function b(){return 2;}")

	opts := DefaultOptions()
	opts.MaxDepth = 1
	result := Walk(dir, opts)

	require.Len(t, result.Analyzed, 1)
	assert.Equal(t, "at_limit.js", filepath.Base(result.Analyzed[0]))
}

func TestWalk_OversizedFileSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "big.js", "function big(){return 1;}"+strings.Repeat("//x\n", 100))
	writeFile(t, dir, "small.js", "function small(){return 2;}")

	opts := DefaultOptions()
	opts.MaxFileSize = 64
	result := Walk(dir, opts)

	require.Len(t, result.Analyzed, 1)
	assert.Equal(t, "small.js", filepath.Base(result.Analyzed[0]))

	assert.Contains(t, result.Tree, "big.js", "oversized files stay in the listing")
	for _, line := range strings.Split(result.Tree, "\n") {
		if strings.Contains(line, "big.js") {
			assert.NotContains(t, line, "functions")
		}
	}
}

func TestWalk_MaxFileSizeZeroDisablesBound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "big.js", "function big(){return 1;}"+strings.Repeat("//x\n", 100))

	opts := DefaultOptions()
	opts.MaxFileSize = 0
	result := Walk(dir, opts)

	assert.Len(t, result.Analyzed, 1)
}

func TestWalk_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "function a(){return 1;}")
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	result := Walk(dir, DefaultOptions())

	assert.Contains(t, result.Tree, "[error reading directory]")
	assert.Contains(t, result.Tree, "ok.js", "readable siblings still render")
	assert.Len(t, result.Analyzed, 1)
}

func TestWalk_MissingRoot(t *testing.T) {
	t.Parallel()

	result := Walk(filepath.Join(t.TempDir(), "does-not-exist"), DefaultOptions())
	assert.Contains(t, result.Tree, "Directory not found")
	assert.Empty(t, result.Analyzed)
}

func TestWalk_SummaryCountsRawFunctions(t *testing.T) {
	t.Parallel()

	// `const f = () => 1;` is dropped from the functions list by the
	// significance filter, but the summary still counts it.
	dir := t.TempDir()
	writeFile(t, dir, "index.js", "const f = () => 1;\n")

	result := Walk(dir, DefaultOptions())

	require.Len(t, result.Analyzed, 1)
	assert.Contains(t, result.Tree, "[1 functions, 1 variables, 0 classes]")
	assert.Contains(t, result.Summary(), "Analyzed 1 files: 1 functions")
}

func TestWalk_AnonymousNeverListed(t *testing.T) {
	t.Parallel()

	source := `setTimeout(function () {
  console.log("first message from the timer callback body");
  console.log("second message to push the body well past the limit");
}, 1000);
`
	dir := t.TempDir()
	writeFile(t, dir, "timer.js", source)

	opts := DefaultOptions()
	opts.IncludeSymbols = true
	opts.SymbolKind = KindFunctions
	result := Walk(dir, opts)

	assert.Contains(t, result.Tree, "[1 functions")
	assert.NotContains(t, result.Tree, "function anonymous")
}

func TestWalk_SymbolListing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.py", "class A:\n    @staticmethod\n    def f(): pass\n")

	opts := DefaultOptions()
	opts.IncludeSymbols = true
	result := Walk(dir, opts)

	assert.Contains(t, result.Tree, "- class A")
	assert.Contains(t, result.Tree, "- method f [static]")
}

func TestWalk_FilePatternRestrictsAnalysis(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.js", "function a(){return 1;}")
	writeFile(t, dir, "app.py", "def b(): pass\n")

	opts := DefaultOptions()
	opts.FilePatterns = []string{"*.py"}
	result := Walk(dir, opts)

	require.Len(t, result.Analyzed, 1)
	assert.Equal(t, "app.py", filepath.Base(result.Analyzed[0]))
	assert.Contains(t, result.Tree, "app.js", "excluded files are still listed")
}

func TestWalk_DotfilesSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".env", "SECRET=1")
	writeFile(t, dir, ".github/workflow.yml", "on: push")
	writeFile(t, dir, "main.js", "var ok = true;")

	result := Walk(dir, DefaultOptions())

	assert.NotContains(t, result.Tree, ".env")
	assert.NotContains(t, result.Tree, ".github")
	assert.Contains(t, result.Tree, "main.js")
}

func TestWalk_ExtraIgnorePatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fixtures/sample.js", "var s = 1;")
	writeFile(t, dir, "main.js", "var ok = true;")

	opts := DefaultOptions()
	opts.IgnorePatterns = []string{"fixtures"}
	result := Walk(dir, opts)

	assert.NotContains(t, result.Tree, "fixtures")
	assert.Contains(t, result.Tree, "main.js")
}

func TestWalk_FileSizeRendered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", strings.Repeat("x", 1500))

	result := Walk(dir, DefaultOptions())
	assert.Contains(t, result.Tree, "notes.txt (2 KB)", "sizes round up to whole kilobytes")
}

func TestValidateRoot(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateRoot("relative/path"))
	assert.Error(t, ValidateRoot("/"))
	assert.NoError(t, ValidateRoot(t.TempDir()))
}

func TestReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.js", "function foo(){return 1;}")

	result := Walk(dir, DefaultOptions())

	withSummary := result.Report(true)
	assert.True(t, strings.HasPrefix(withSummary, "Analyzed 1 files"))
	assert.Equal(t, result.Tree, result.Report(false))
}
