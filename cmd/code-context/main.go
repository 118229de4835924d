package main

import "github.com/AB498/code-context-provider-mcp/internal/cli"

func main() {
	cli.Execute()
}
