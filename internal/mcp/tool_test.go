package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the get_code_context tool:
// - Registration succeeds on a fresh server
// - Valid request returns a tree report with a summary line
// - Missing or empty absolutePath is a tool error
// - Relative and filesystem-root paths are rejected before traversal
// - Missing directory is a partial result, not a tool error
// - Optional arguments (maxDepth, analyze, filePatterns) take effect

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "content should be text")
	return textContent.Text
}

func TestAddCodeContextTool(t *testing.T) {
	t.Parallel()

	mcpServer := server.NewMCPServer("test", "1.0.0", server.WithToolCapabilities(true))
	AddCodeContextTool(mcpServer)
	assert.NotNil(t, mcpServer)
}

func TestHandleCodeContext_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte("function foo(){return 1;}"), 0644))

	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": dir,
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError, "should not be error result")
	text := resultText(t, result)
	assert.Contains(t, text, "Analyzed 1 files")
	assert.Contains(t, text, "index.js")
}

func TestHandleCodeContext_MissingPath(t *testing.T) {
	t.Parallel()

	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{}))

	require.NoError(t, err)
	assert.True(t, result.IsError, "should be error result")
	assert.Contains(t, resultText(t, result), "absolutePath parameter is required")
}

func TestHandleCodeContext_RelativePathRejected(t *testing.T) {
	t.Parallel()

	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": "relative/path",
	}))

	require.NoError(t, err)
	assert.True(t, result.IsError, "should be error result")
	assert.Contains(t, resultText(t, result), "must be absolute")
}

func TestHandleCodeContext_FilesystemRootRejected(t *testing.T) {
	t.Parallel()

	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": "/",
	}))

	require.NoError(t, err)
	assert.True(t, result.IsError, "should be error result")
	assert.Contains(t, resultText(t, result), "filesystem root")
}

func TestHandleCodeContext_MissingDirectoryIsPartialResult(t *testing.T) {
	t.Parallel()

	// A syntactically valid path that does not exist yields a notice inside
	// the report rather than a tool error.
	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": filepath.Join(t.TempDir(), "gone"),
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError, "should not be error result")
	assert.Contains(t, resultText(t, result), "Directory not found")
}

func TestHandleCodeContext_AnalyzeDisabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte("function foo(){return 1;}"), 0644))

	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": dir,
		"analyze":      false,
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.NotContains(t, text, "Analyzed")
	assert.Contains(t, text, "index.js")
}

func TestHandleCodeContext_OptionalArguments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("function a(){return 1;}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("def b(): pass\n"), 0644))

	// JSON numbers arrive as float64 and arrays as []interface{}.
	result, err := handleCodeContext(context.Background(), callRequest(map[string]interface{}{
		"absolutePath": dir,
		"maxDepth":     float64(2),
		"filePatterns": []interface{}{"py"},
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Analyzed 1 files")
	assert.Contains(t, text, "app.py (1 KB) [1 functions")
}

func TestHandleCodeContext_InvalidArgumentsFormat(t *testing.T) {
	t.Parallel()

	result, err := handleCodeContext(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: "not a map"},
	})

	require.NoError(t, err)
	assert.True(t, result.IsError, "should be error result")
	assert.Contains(t, resultText(t, result), "invalid arguments format")
}
