package walker

import "fmt"

// Summary reduces the run's symbol tables to a short block prepended to the
// rendered tree: files analyzed plus raw totals by kind. Pure, synchronous.
func (r *Result) Summary() string {
	var functions, variables, classes int
	for _, table := range r.Files {
		functions += table.FunctionTotal
		variables += len(table.Variables)
		classes += len(table.Classes)
	}
	return fmt.Sprintf("Analyzed %d files: %d functions, %d variables, %d classes\n\n",
		len(r.Analyzed), functions, variables, classes)
}

// Report renders the final text: summary block (when analysis ran) followed
// by the tree.
func (r *Result) Report(analyzed bool) string {
	if !analyzed {
		return r.Tree
	}
	return r.Summary() + r.Tree
}
