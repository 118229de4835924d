package walker

import (
	"fmt"
	"strings"

	"github.com/AB498/code-context-provider-mcp/internal/analyzer"
)

// writeSymbolListing appends the filtered symbol listing for one analyzed
// file, indented under its tree entry.
func writeSymbolListing(out *strings.Builder, indent string, table *analyzer.FileSymbols, kind string) {
	if kind == "" {
		kind = KindAll
	}
	if kind == KindFunctions || kind == KindAll {
		for _, fn := range table.Functions {
			// Anonymous records never make the listing, whatever the
			// significance filter let through.
			if fn.Name == "anonymous" {
				continue
			}
			label := fn.Name
			if fn.Class != "" {
				label = fn.Class + "." + fn.Name
			}
			fmt.Fprintf(out, "%s- function %s %s\n", indent, label, lineSpan(fn.Position))
		}
	}
	if kind == KindVariables || kind == KindAll {
		for _, v := range table.Variables {
			label := v.Name
			if v.Kind != "" {
				label = v.Kind + " " + v.Name
			}
			fmt.Fprintf(out, "%s- variable %s %s\n", indent, label, lineSpan(v.Position))
		}
	}
	if kind == KindClasses || kind == KindAll {
		for _, c := range table.Classes {
			fmt.Fprintf(out, "%s- class %s %s\n", indent, c.Name, lineSpan(c.Position))
			for _, m := range c.Methods {
				marker := ""
				if m.IsStatic {
					marker = " [static]"
				}
				fmt.Fprintf(out, "%s    - method %s%s %s\n", indent, m.Name, marker, lineSpan(m.Position))
			}
		}
	}
	if kind == KindImports || kind == KindAll {
		for _, imp := range table.Imports {
			fmt.Fprintf(out, "%s- import %s%s %s\n", indent, imp.Module, itemList(imp.Items), lineSpan(imp.Position))
		}
	}
	if kind == KindExports || kind == KindAll {
		for _, exp := range table.Exports {
			label := "export"
			if exp.IsDefault {
				label = "export default"
			}
			suffix := ""
			if exp.Source != "" {
				suffix = " from " + exp.Source
			}
			fmt.Fprintf(out, "%s- %s%s%s %s\n", indent, label, exportItems(exp.Items), suffix, lineSpan(exp.Position))
		}
	}
}

func lineSpan(p analyzer.Position) string {
	if p.StartLine == p.EndLine {
		return fmt.Sprintf("(line %d)", p.StartLine)
	}
	return fmt.Sprintf("(lines %d-%d)", p.StartLine, p.EndLine)
}

func itemList(items []analyzer.ImportItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Name
		if item.Alias != "" {
			parts[i] += " as " + item.Alias
		}
	}
	return " {" + strings.Join(parts, ", ") + "}"
}

func exportItems(items []analyzer.ExportItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Name
		if item.Alias != "" {
			parts[i] += " as " + item.Alias
		}
	}
	return " " + strings.Join(parts, ", ")
}
