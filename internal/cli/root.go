// Package cli wires the cobra command tree. All semantics live in the
// walker, analyzer, and mcp packages; commands stay thin.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "code-context",
	Short: "Directory tree and source symbol reports for coding agents",
	Long: `code-context walks a directory tree, renders it as text, and extracts
functions, variables, classes, imports, and exports from recognized source
files (js, jsx, ts, tsx, py).

Run it as an MCP server for agents, or one-shot from the shell.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verbose)
	},
}

// configureLogging routes operator diagnostics (skipped files, unreadable
// directories, server lifecycle) to stderr only when verbose output was
// requested; the rendered report always goes to stdout untouched.
func configureLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
