package analyzer

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// pythonExtractor runs the reduction passes for the Python grammar. Python
// has no export statements, so the Exports list stays empty.
type pythonExtractor struct {
	source []byte
	table  *FileSymbols
}

func extractPython(path string, root *sitter.Node, source []byte) *FileSymbols {
	e := &pythonExtractor{source: source, table: newFileSymbols(path)}
	e.functions(root)
	e.variables(root)
	e.classes(root)
	e.imports(root)
	return e.table
}

// functions collects module-level function definitions. Methods are reported
// through their class records and additionally as functions carrying the
// enclosing class name.
func (e *pythonExtractor) functions(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "function_definition" {
			return true
		}
		e.table.FunctionTotal++
		e.table.Functions = append(e.table.Functions, FunctionSymbol{
			Name:     fieldText(n, "name", e.source),
			Class:    e.enclosingClassName(n),
			Position: nodePosition(n),
			Code:     nodeText(n, e.source),
		})
		return true
	})
}

// enclosingClassName walks up past decorator wrappers to find the class a
// method is defined in.
func (e *pythonExtractor) enclosingClassName(fn *sitter.Node) string {
	parent := fn.Parent()
	if parent != nil && parent.Kind() == "decorated_definition" {
		parent = parent.Parent()
	}
	if parent == nil || parent.Kind() != "block" {
		return ""
	}
	class := parent.Parent()
	if class == nil || class.Kind() != "class_definition" {
		return ""
	}
	return fieldText(class, "name", e.source)
}

// variables collects plain assignments at module scope and in class bodies.
// Python assignments have no declaration keyword, so Kind stays empty.
func (e *pythonExtractor) variables(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "assignment" {
			return true
		}
		if !e.isDeclarationScope(n) {
			return true
		}
		left := n.ChildByFieldName("left")
		if left == nil {
			return true
		}
		e.table.Variables = append(e.table.Variables, VariableSymbol{
			Name:     nodeText(left, e.source),
			Position: nodePosition(n),
			Code:     nodeText(n, e.source),
		})
		return true
	})
}

// isDeclarationScope reports whether an assignment sits at module scope or
// directly in a class body, never inside a function.
func (e *pythonExtractor) isDeclarationScope(n *sitter.Node) bool {
	for parent := n.Parent(); parent != nil; parent = parent.Parent() {
		switch parent.Kind() {
		case "function_definition":
			return false
		case "class_definition", "module":
			return true
		}
	}
	return true
}

// classes collects class definitions and their direct methods. A method is
// static when it is wrapped in a @staticmethod decorator.
func (e *pythonExtractor) classes(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "class_definition" {
			return true
		}
		class := ClassSymbol{
			Name:     fieldText(n, "name", e.source),
			Methods:  []MethodSymbol{},
			Position: nodePosition(n),
			Code:     nodeText(n, e.source),
		}
		if body := n.ChildByFieldName("body"); body != nil {
			for i := 0; i < int(body.ChildCount()); i++ {
				child := body.Child(uint(i))
				switch child.Kind() {
				case "function_definition":
					class.Methods = append(class.Methods, e.method(child, false))
				case "decorated_definition":
					def := child.ChildByFieldName("definition")
					if def == nil || def.Kind() != "function_definition" {
						continue
					}
					class.Methods = append(class.Methods, e.method(def, e.hasStaticDecorator(child)))
				}
			}
		}
		e.table.Classes = append(e.table.Classes, class)
		return true
	})
}

func (e *pythonExtractor) method(def *sitter.Node, isStatic bool) MethodSymbol {
	return MethodSymbol{
		Name:     fieldText(def, "name", e.source),
		IsStatic: isStatic,
		Position: nodePosition(def),
		Code:     nodeText(def, e.source),
	}
}

func (e *pythonExtractor) hasStaticDecorator(decorated *sitter.Node) bool {
	for _, dec := range findChildrenByType(decorated, "decorator") {
		if nodeText(dec, e.source) == "@staticmethod" {
			return true
		}
	}
	return false
}

// imports collects both import forms. `import a, b` emits one record per
// module path; `from m import x, y` emits one record carrying the item list.
func (e *pythonExtractor) imports(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "import_statement":
			for i := 0; i < int(n.ChildCount()); i++ {
				child := n.Child(uint(i))
				switch child.Kind() {
				case "dotted_name":
					e.table.Imports = append(e.table.Imports, ImportSymbol{
						Module:   nodeText(child, e.source),
						Items:    []ImportItem{},
						Position: nodePosition(n),
						Code:     nodeText(n, e.source),
					})
				case "aliased_import":
					module := fieldText(child, "name", e.source)
					e.table.Imports = append(e.table.Imports, ImportSymbol{
						Module: module,
						Items: []ImportItem{{
							Name:  module,
							Alias: fieldText(child, "alias", e.source),
						}},
						Position: nodePosition(n),
						Code:     nodeText(n, e.source),
					})
				}
			}
		case "import_from_statement":
			record := ImportSymbol{
				Module:   fieldText(n, "module_name", e.source),
				Items:    []ImportItem{},
				Position: nodePosition(n),
				Code:     nodeText(n, e.source),
			}
			module := n.ChildByFieldName("module_name")
			for i := 0; i < int(n.ChildCount()); i++ {
				child := n.Child(uint(i))
				if module != nil && child.StartByte() == module.StartByte() {
					continue // the module path itself, not an imported name
				}
				switch child.Kind() {
				case "dotted_name":
					record.Items = append(record.Items, ImportItem{Name: nodeText(child, e.source)})
				case "aliased_import":
					record.Items = append(record.Items, ImportItem{
						Name:  fieldText(child, "name", e.source),
						Alias: fieldText(child, "alias", e.source),
					})
				case "wildcard_import":
					record.Items = append(record.Items, ImportItem{Name: "*"})
				}
			}
			e.table.Imports = append(e.table.Imports, record)
		}
		return true
	})
}
