package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AB498/code-context-provider-mcp/internal/walker"
)

// AddCodeContextTool registers the get_code_context tool with an MCP server.
// This function is composable - it can be combined with other tool
// registrations.
func AddCodeContextTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		"get_code_context",
		mcp.WithDescription("Render a directory tree and, for recognized source files (js, jsx, ts, tsx, py), extract functions, variables, classes, imports, and exports. Returns a textual report for a caller that cannot browse the filesystem."),
		mcp.WithString("absolutePath",
			mcp.Required(),
			mcp.Description("Absolute path of the directory to inspect")),
		mcp.WithBoolean("analyze",
			mcp.Description("Extract symbols from recognized source files (default: true)")),
		mcp.WithBoolean("includeSymbols",
			mcp.Description("Append per-file symbol listings to the tree (default: false)")),
		mcp.WithString("symbolType",
			mcp.Description("Which symbols to list: functions, variables, classes, imports, exports, or all (default: all)")),
		mcp.WithArray("filePatterns",
			mcp.Description("Restrict analysis to matching file basenames. Forms: glob ('*.test.js'), dot suffix ('.spec.ts'), bare extension ('py'), or exact filename. Empty means all supported extensions.")),
		mcp.WithNumber("maxDepth",
			mcp.Description("Maximum depth for code analysis; the tree itself is never truncated (default: 5)")),
	)

	s.AddTool(tool, handleCodeContext)
}

// handleCodeContext parses the tool arguments, validates the root, runs the
// walk, and returns the rendered report. Every failure becomes either a
// partial result or a tool error; nothing propagates past this boundary.
func handleCodeContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	root, ok := argsMap["absolutePath"].(string)
	if !ok || root == "" {
		return mcp.NewToolResultError("absolutePath parameter is required"), nil
	}

	opts := walker.DefaultOptions()
	if analyze, ok := argsMap["analyze"].(bool); ok {
		opts.Analyze = analyze
	}
	if include, ok := argsMap["includeSymbols"].(bool); ok {
		opts.IncludeSymbols = include
	}
	if kind, ok := argsMap["symbolType"].(string); ok && kind != "" {
		opts.SymbolKind = kind
	}
	if depth, ok := argsMap["maxDepth"].(float64); ok {
		opts.MaxDepth = int(depth)
	}
	if patterns, ok := argsMap["filePatterns"].([]interface{}); ok {
		opts.FilePatterns = make([]string, 0, len(patterns))
		for _, p := range patterns {
			if s, ok := p.(string); ok {
				opts.FilePatterns = append(opts.FilePatterns, s)
			}
		}
	}

	if err := walker.ValidateRoot(root); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := walker.Walk(root, opts)
	return mcp.NewToolResultText(result.Report(opts.Analyze)), nil
}
