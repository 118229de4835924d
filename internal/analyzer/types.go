package analyzer

// Position locates a symbol in its source file. Lines are 1-based, columns
// 0-based, both taken directly from tree-sitter node spans.
type Position struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// FunctionSymbol is one extracted function, method, or function expression.
type FunctionSymbol struct {
	Name     string // synthesized "anonymous" when no name could be inferred
	Class    string // enclosing class name for methods, empty otherwise
	Position Position
	Code     string
}

// VariableSymbol is one module-scope or class-scope binding.
type VariableSymbol struct {
	Name     string
	Kind     string // "const", "let", "var", or empty when the grammar has no keyword
	Position Position
	Code     string
}

// MethodSymbol is one method inside a class body.
type MethodSymbol struct {
	Name     string
	IsStatic bool
	Position Position
	Code     string
}

// ClassSymbol is one class definition with its direct methods in source order.
type ClassSymbol struct {
	Name     string
	Methods  []MethodSymbol
	Position Position
	Code     string
}

// ImportItem is one imported name. Alias is empty when the name is not
// rebound locally.
type ImportItem struct {
	Name  string
	Alias string
}

// ImportSymbol is one import statement (or one module of a multi-module
// import form).
type ImportSymbol struct {
	Module   string
	Items    []ImportItem
	Position Position
	Code     string
}

// ExportItem is one exported name with an optional alias.
type ExportItem struct {
	Name  string
	Alias string
}

// ExportSymbol is one export statement.
type ExportSymbol struct {
	Source    string // re-export source module, empty for local exports
	Items     []ExportItem
	IsDefault bool
	Position  Position
	Code      string
}

// FileSymbols is the symbol table for one analyzed file. List order follows
// source order.
type FileSymbols struct {
	Path      string
	Functions []FunctionSymbol
	Variables []VariableSymbol
	Classes   []ClassSymbol
	Imports   []ImportSymbol
	Exports   []ExportSymbol

	// FunctionTotal counts every collected function node before the
	// significance filter runs; summary lines report this raw figure while
	// Functions holds only the records that survived filtering.
	FunctionTotal int
}

func newFileSymbols(path string) *FileSymbols {
	return &FileSymbols{
		Path:      path,
		Functions: []FunctionSymbol{},
		Variables: []VariableSymbol{},
		Classes:   []ClassSymbol{},
		Imports:   []ImportSymbol{},
		Exports:   []ExportSymbol{},
	}
}
