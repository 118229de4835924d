package analyzer

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// jsExtractor runs the five reduction passes for the JS grammar family
// (js, jsx, ts, tsx). All node access goes through named fields so the
// passes stay stable across grammar minor versions; unrecognized node kinds
// are a no-op.
type jsExtractor struct {
	source []byte
	table  *FileSymbols
}

func extractJS(path string, root *sitter.Node, source []byte) *FileSymbols {
	e := &jsExtractor{source: source, table: newFileSymbols(path)}
	e.functions(root)
	e.variables(root)
	e.classes(root)
	e.imports(root)
	e.exports(root)
	return e.table
}

// functions collects declared functions, methods, and expression-form
// functions (named or anonymous).
func (e *jsExtractor) functions(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "function_declaration", "generator_function_declaration":
			e.table.FunctionTotal++
			e.table.Functions = append(e.table.Functions, FunctionSymbol{
				Name:     fieldText(n, "name", e.source),
				Position: nodePosition(n),
				Code:     nodeText(n, e.source),
			})
		case "method_definition":
			e.table.FunctionTotal++
			e.table.Functions = append(e.table.Functions, FunctionSymbol{
				Name:     fieldText(n, "name", e.source),
				Class:    e.enclosingClassName(n),
				Position: nodePosition(n),
				Code:     nodeText(n, e.source),
			})
		case "function_expression", "function", "arrow_function", "generator_function":
			e.table.FunctionTotal++
			code := nodeText(n, e.source)
			name := fieldText(n, "name", e.source)
			if name == "" {
				name = inferName(n, e.source)
			}
			if !isSignificant(n, name, code, e.source) {
				return true
			}
			e.table.Functions = append(e.table.Functions, FunctionSymbol{
				Name:     name,
				Position: nodePosition(n),
				Code:     code,
			})
		}
		return true
	})
}

// enclosingClassName resolves the class a method belongs to when its
// immediate structural ancestor is a class body.
func (e *jsExtractor) enclosingClassName(method *sitter.Node) string {
	body := method.Parent()
	if body == nil || body.Kind() != "class_body" {
		return ""
	}
	class := body.Parent()
	if class == nil {
		return ""
	}
	return fieldText(class, "name", e.source)
}

// variables collects module-scope const/let/var declarations and class-body
// field definitions.
func (e *jsExtractor) variables(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "lexical_declaration", "variable_declaration":
			if !e.isModuleScope(n) {
				return true
			}
			kind := e.declarationKeyword(n)
			for _, decl := range findChildrenByType(n, "variable_declarator") {
				name := fieldText(decl, "name", e.source)
				if name == "" {
					continue
				}
				e.table.Variables = append(e.table.Variables, VariableSymbol{
					Name:     name,
					Kind:     kind,
					Position: nodePosition(decl),
					Code:     nodeText(decl, e.source),
				})
			}
		case "public_field_definition":
			name := fieldText(n, "name", e.source)
			if name == "" {
				name = fieldText(n, "property", e.source)
			}
			if name == "" {
				return true
			}
			e.table.Variables = append(e.table.Variables, VariableSymbol{
				Name:     name,
				Position: nodePosition(n),
				Code:     nodeText(n, e.source),
			})
		}
		return true
	})
}

// isModuleScope reports whether a declaration sits at the top of the module,
// directly or wrapped in an export statement.
func (e *jsExtractor) isModuleScope(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	if parent.Kind() == "export_statement" {
		parent = parent.Parent()
	}
	return parent != nil && parent.Kind() == "program"
}

// declarationKeyword reads the leading keyword of a declaration node.
func (e *jsExtractor) declarationKeyword(n *sitter.Node) string {
	first := n.Child(0)
	switch kw := nodeText(first, e.source); kw {
	case "const", "let", "var":
		return kw
	}
	return ""
}

// classes collects class definitions with their direct methods in source
// order. A method is static when the grammar emits the `static` keyword.
func (e *jsExtractor) classes(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "class_declaration" && n.Kind() != "class" {
			return true
		}
		name := fieldText(n, "name", e.source)
		if name == "" {
			return true
		}

		class := ClassSymbol{
			Name:     name,
			Methods:  []MethodSymbol{},
			Position: nodePosition(n),
			Code:     nodeText(n, e.source),
		}
		if body := n.ChildByFieldName("body"); body != nil {
			for _, method := range findChildrenByType(body, "method_definition") {
				class.Methods = append(class.Methods, MethodSymbol{
					Name:     fieldText(method, "name", e.source),
					IsStatic: hasChildOfKind(method, "static"),
					Position: nodePosition(method),
					Code:     nodeText(method, e.source),
				})
			}
		}
		e.table.Classes = append(e.table.Classes, class)
		return true
	})
}

// imports collects import statements. A bare default import is represented
// as a synthetic "default" item aliased to the bound identifier.
func (e *jsExtractor) imports(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "import_statement" {
			return true
		}

		record := ImportSymbol{
			Module:   stripQuotes(fieldText(n, "source", e.source)),
			Items:    []ImportItem{},
			Position: nodePosition(n),
			Code:     nodeText(n, e.source),
		}
		for _, clause := range findChildrenByType(n, "import_clause") {
			record.Items = append(record.Items, e.importClauseItems(clause)...)
		}
		e.table.Imports = append(e.table.Imports, record)
		return true
	})
}

// importClauseItems flattens one import clause into its items.
func (e *jsExtractor) importClauseItems(clause *sitter.Node) []ImportItem {
	var items []ImportItem
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(uint(i))
		switch child.Kind() {
		case "identifier":
			items = append(items, ImportItem{Name: "default", Alias: nodeText(child, e.source)})
		case "namespace_import":
			for _, ident := range findChildrenByType(child, "identifier") {
				items = append(items, ImportItem{Name: "*", Alias: nodeText(ident, e.source)})
			}
		case "named_imports":
			for _, spec := range findChildrenByType(child, "import_specifier") {
				items = append(items, ImportItem{
					Name:  fieldText(spec, "name", e.source),
					Alias: fieldText(spec, "alias", e.source),
				})
			}
		}
	}
	return items
}

// exports collects export statements, re-deriving the declared name for
// wrapped declarations.
func (e *jsExtractor) exports(root *sitter.Node) {
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "export_statement" {
			return true
		}

		record := ExportSymbol{
			Source:    stripQuotes(fieldText(n, "source", e.source)),
			Items:     []ExportItem{},
			IsDefault: hasChildOfKind(n, "default"),
			Position:  nodePosition(n),
			Code:      nodeText(n, e.source),
		}

		for _, clause := range findChildrenByType(n, "export_clause") {
			for _, spec := range findChildrenByType(clause, "export_specifier") {
				record.Items = append(record.Items, ExportItem{
					Name:  fieldText(spec, "name", e.source),
					Alias: fieldText(spec, "alias", e.source),
				})
			}
		}

		if decl := n.ChildByFieldName("declaration"); decl != nil {
			if name := e.declaredName(decl); name != "" {
				record.Items = append(record.Items, ExportItem{Name: name})
			}
		}
		if n.ChildByFieldName("value") != nil && len(record.Items) == 0 {
			// `export default <expression>` carries no name of its own.
			record.Items = append(record.Items, ExportItem{Name: "default"})
		}

		e.table.Exports = append(e.table.Exports, record)
		return true
	})
}

// declaredName reads the name of an exported declaration: the function or
// class name, or the first declared binding of a variable form.
func (e *jsExtractor) declaredName(decl *sitter.Node) string {
	switch decl.Kind() {
	case "function_declaration", "generator_function_declaration", "class_declaration":
		return fieldText(decl, "name", e.source)
	case "lexical_declaration", "variable_declaration":
		for _, d := range findChildrenByType(decl, "variable_declarator") {
			if name := fieldText(d, "name", e.source); name != "" {
				return name
			}
		}
	}
	return ""
}
