// Package walker traverses a directory tree, merges ignore rules per level,
// invokes the symbol extractor on eligible files, and renders a box-drawing
// tree report augmented with symbol summaries.
package walker

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AB498/code-context-provider-mcp/internal/analyzer"
	"github.com/AB498/code-context-provider-mcp/internal/ignore"
)

// DefaultMaxDepth bounds code analysis when the caller does not say
// otherwise. Directory listing is never depth-limited.
const DefaultMaxDepth = 5

// DefaultMaxFileSize bounds how large a file the extractor will read.
// Oversized files stay in the listing but are never analyzed.
const DefaultMaxFileSize int64 = 1 << 20

const ignoreFileName = ".gitignore"

// SymbolKind selects which symbol listing the report includes.
const (
	KindFunctions = "functions"
	KindVariables = "variables"
	KindClasses   = "classes"
	KindImports   = "imports"
	KindExports   = "exports"
	KindAll       = "all"
)

// Options configures one traversal.
type Options struct {
	// FilePatterns restricts analysis to matching basenames. Empty means
	// the static extension map decides.
	FilePatterns []string
	// IgnorePatterns are extra ignore-file lines merged with the default
	// set at every level, typically from configuration.
	IgnorePatterns []string
	// MaxDepth bounds analysis depth: files at depth <= MaxDepth are
	// analyzed, child directories propagate analysis while depth < MaxDepth.
	MaxDepth int
	// MaxFileSize bounds analysis to files of at most this many bytes.
	// Zero disables the bound. Listing is never size-limited.
	MaxFileSize int64
	// Analyze enables symbol extraction.
	Analyze bool
	// IncludeSymbols appends per-file symbol listings to the tree.
	IncludeSymbols bool
	// SymbolKind filters the listing: one of the Kind constants.
	SymbolKind string
}

// DefaultOptions returns the caller-facing defaults.
func DefaultOptions() Options {
	return Options{
		MaxDepth:    DefaultMaxDepth,
		MaxFileSize: DefaultMaxFileSize,
		Analyze:     true,
		SymbolKind:  KindAll,
	}
}

// Result is the owned outcome of one traversal. Each call returns a fresh
// value, so concurrent top-level requests never share state.
type Result struct {
	Tree     string
	Files    map[string]*analyzer.FileSymbols
	Analyzed []string
}

// ValidateRoot rejects structurally disallowed roots before traversal
// starts: relative paths and filesystem roots.
func ValidateRoot(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}
	clean := filepath.Clean(path)
	if clean == string(filepath.Separator) || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("refusing to walk filesystem root %s", clean)
	}
	return nil
}

// Walk traverses root and renders the tree. A missing root yields a one-line
// notice instead of an error; unreadable directories and failed extractions
// are logged and traversal continues.
func Walk(root string, opts Options) *Result {
	result := &Result{
		Files:    make(map[string]*analyzer.FileSymbols),
		Analyzed: []string{},
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		result.Tree = fmt.Sprintf("Directory not found: %s\n", root)
		return result
	}

	w := &walkState{
		root:   root,
		opts:   opts,
		result: result,
		static: append(ignore.DefaultRules(), ignore.CompileLines(opts.IgnorePatterns)...),
	}
	var out strings.Builder
	out.WriteString(filepath.Base(root) + "\n")
	w.walk(root, "", 0, nil, opts.Analyze, &out)
	result.Tree = out.String()
	return result
}

type walkState struct {
	root   string
	opts   Options
	result *Result
	static []ignore.Rule // default set plus configured extras
}

// walk renders one directory level. inherited carries the rules of every
// ancestor's ignore file; the level itself re-merges the default set and
// appends its own ignore file, which applies to this subtree only.
func (w *walkState) walk(dir, prefix string, depth int, inherited []ignore.Rule, analyze bool, out *strings.Builder) {
	own := ignore.ParseFile(filepath.Join(dir, ignoreFileName))
	merged := make([]ignore.Rule, 0, len(w.static)+len(inherited)+len(own))
	merged = append(merged, w.static...)
	merged = append(merged, inherited...)
	merged = append(merged, own...)
	// Children inherit ancestor and own rules; the static set is re-merged
	// at every level rather than passed down.
	childInherited := append(append([]ignore.Rule{}, inherited...), own...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("cannot read directory %s: %v", dir, err)
		out.WriteString(prefix + "└── [error reading directory]\n")
		return
	}

	var visible []os.DirEntry
	for _, entry := range entries {
		name := entry.Name()
		// Dotfiles and the ignore file itself are filtered before any
		// pattern test.
		if strings.HasPrefix(name, ".") {
			continue
		}
		rel := w.relPath(filepath.Join(dir, name))
		if ignore.Matched(merged, rel, name, entry.IsDir()) {
			continue
		}
		visible = append(visible, entry)
	}

	for i, entry := range visible {
		last := i == len(visible)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			out.WriteString(prefix + connector + entry.Name() + "\n")
			// Directory structure is never truncated by depth; only the
			// analysis flag is depth-limited, and with a strict bound while
			// file analysis below uses an inclusive one.
			childAnalyze := analyze && depth < w.opts.MaxDepth
			w.walk(path, childPrefix, depth+1, childInherited, childAnalyze, out)
			continue
		}

		line := prefix + connector + entry.Name() + w.sizeSuffix(entry)
		if analyze && depth <= w.opts.MaxDepth && IsEligible(path, w.opts.FilePatterns) && w.withinSizeLimit(entry) {
			if table := w.analyzeFile(path); table != nil {
				line += fmt.Sprintf(" [%d functions, %d variables, %d classes]",
					table.FunctionTotal, len(table.Variables), len(table.Classes))
				out.WriteString(line + "\n")
				if w.opts.IncludeSymbols {
					writeSymbolListing(out, childPrefix, table, w.opts.SymbolKind)
				}
				continue
			}
		}
		out.WriteString(line + "\n")
	}
}

// analyzeFile extracts one file's symbols and records them in the result.
// Returns nil when the file has no grammar or fails to read or parse.
func (w *walkState) analyzeFile(path string) *analyzer.FileSymbols {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Printf("cannot read %s: %v", path, err)
		return nil
	}
	table, err := analyzer.Extract(path, source)
	if err != nil {
		log.Printf("cannot analyze %s: %v", path, err)
		return nil
	}
	if table == nil {
		return nil
	}
	w.result.Files[path] = table
	w.result.Analyzed = append(w.result.Analyzed, path)
	return table
}

// withinSizeLimit reports whether a file is small enough to hand to the
// extractor. An unstattable entry counts as oversized.
func (w *walkState) withinSizeLimit(entry os.DirEntry) bool {
	if w.opts.MaxFileSize <= 0 {
		return true
	}
	info, err := entry.Info()
	if err != nil {
		return false
	}
	return info.Size() <= w.opts.MaxFileSize
}

// sizeSuffix renders a file's size in ceiling-rounded kilobytes.
func (w *walkState) sizeSuffix(entry os.DirEntry) string {
	info, err := entry.Info()
	if err != nil {
		return ""
	}
	kb := (info.Size() + 1023) / 1024
	return fmt.Sprintf(" (%d KB)", kb)
}

// relPath returns the forward-slash path relative to the traversal root for
// ignore-rule matching.
func (w *walkState) relPath(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
