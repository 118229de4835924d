// Package mcp exposes the traversal-and-extraction engine over the Model
// Context Protocol. One tool, get_code_context, answers "what does this
// directory contain, and what symbols does its source define?" for a calling
// agent that cannot browse the filesystem itself.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// Server manages the MCP server lifecycle over stdio.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates the MCP server and registers the get_code_context tool.
func NewServer(name, version string) *Server {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)
	AddCodeContextTool(mcpServer)
	return &Server{mcp: mcpServer}
}

// Serve starts the stdio transport and blocks until a shutdown signal or a
// transport error.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
