package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AB498/code-context-provider-mcp/internal/config"
	"github.com/AB498/code-context-provider-mcp/internal/walker"
)

var (
	contextAnalyze        bool
	contextIncludeSymbols bool
	contextSymbolType     string
	contextMaxDepth       int
	contextFilePatterns   []string
)

// contextCmd represents the context command
var contextCmd = &cobra.Command{
	Use:   "context [path]",
	Short: "Print the tree and symbol report for a directory",
	Long: `Walk a directory once and print the same report the MCP tool returns:
an ignore-aware tree with per-file symbol summaries.

Examples:
  code-context context .
  code-context context --symbols --symbol-type functions ./src
  code-context context --pattern '*.ts' --max-depth 2 /srv/app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContext,
}

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.Flags().BoolVar(&contextAnalyze, "analyze", true, "extract symbols from recognized source files")
	contextCmd.Flags().BoolVar(&contextIncludeSymbols, "symbols", false, "append per-file symbol listings")
	contextCmd.Flags().StringVar(&contextSymbolType, "symbol-type", walker.KindAll, "symbol listing filter: functions, variables, classes, imports, exports, all")
	contextCmd.Flags().IntVar(&contextMaxDepth, "max-depth", -1, "analysis depth bound (-1 means configured default)")
	contextCmd.Flags().StringSliceVar(&contextFilePatterns, "pattern", nil, "analysis allow-list pattern (repeatable)")
}

func runContext(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg, err := config.NewLoader(absRoot).Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := walker.Options{
		FilePatterns:   contextFilePatterns,
		IgnorePatterns: cfg.Walk.IgnorePatterns,
		MaxDepth:       contextMaxDepth,
		MaxFileSize:    cfg.Walk.MaxFileSize,
		Analyze:        contextAnalyze,
		IncludeSymbols: contextIncludeSymbols,
		SymbolKind:     contextSymbolType,
	}
	if opts.MaxDepth < 0 {
		opts.MaxDepth = cfg.Walk.MaxDepth
	}
	if len(opts.FilePatterns) == 0 {
		opts.FilePatterns = cfg.Walk.FilePatterns
	}

	if err := walker.ValidateRoot(absRoot); err != nil {
		return err
	}

	result := walker.Walk(absRoot, opts)
	fmt.Fprint(os.Stdout, result.Report(opts.Analyze))
	return nil
}
