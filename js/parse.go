package js

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Function is one parsed function expression. It keeps its syntax tree
// alive so downstream consumers can walk the body.
type Function struct {
	Name       *Name
	Parameters []*Name
	Scope      *Scope
	Location   string
	StartLine  int

	root *sitter.Node
	tree *sitter.Tree
	src  []byte
}

// Root returns the function_expression node.
func (f *Function) Root() *sitter.Node {
	return f.root
}

// Body returns the function's statement block, or nil.
func (f *Function) Body() *sitter.Node {
	return f.root.ChildByFieldName("body")
}

// Text returns n's source text.
func (f *Function) Text(n *sitter.Node) string {
	return string(f.src[n.StartByte():n.EndByte()])
}

// FreeNames returns the shared-scope names the body references, in no
// particular order.
func (f *Function) FreeNames() []*Name {
	var out []*Name
	seen := make(map[*Name]bool)
	Walk(f.root, func(n *sitter.Node) bool {
		if n.Type() == "identifier" {
			if name := f.Scope.Lookup(f.Text(n)); name != nil && name.Scope() != f.Scope {
				if !seen[name] {
					seen[name] = true
					out = append(out, name)
				}
			}
		}
		return true
	})
	return out
}

// Close releases the syntax tree. The tree is also released by the garbage
// collector, so Close is optional.
func (f *Function) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

func (f *Function) String() string {
	name := "<anonymous>"
	if f.Name != nil {
		name = f.Name.Ident()
	}
	return fmt.Sprintf("%s at %s", name, f.Location)
}

// ParseError is a syntax failure. Line and Column are 1-based within the
// parsed text.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseFunction parses src, which must hold exactly one function expression
// or declaration, into prog. Grammar failures come back as the ParseError;
// the error return is reserved for parser-runtime failures, which mean the
// input was never judged at all.
//
// Parameters bind into a fresh scope below the program scope. Identifiers
// the body references without declaring intern into the program's shared
// scope. location and startLine describe where the text came from and are
// recorded on the returned Function.
func ParseFunction(ctx context.Context, prog *Program, src, location string, startLine int) (*Function, *ParseError, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	content := []byte(src)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", location, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		perr := firstSyntaxError(root)
		if perr == nil {
			perr = &ParseError{Line: 1, Column: 1, Message: "syntax error"}
		}
		tree.Close()
		return nil, perr, nil
	}

	fn := findFunctionNode(root)
	if fn == nil {
		tree.Close()
		return nil, &ParseError{Line: 1, Column: 1, Message: "expected a single function expression"}, nil
	}

	f := &Function{
		Scope:     prog.Scope().Child(),
		Location:  location,
		StartLine: startLine,
		root:      fn,
		tree:      tree,
		src:       content,
	}
	if nameNode := fn.ChildByFieldName("name"); nameNode != nil {
		f.Name = f.Scope.Intern(f.Text(nameNode))
	}
	if params := fn.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			child := params.Child(i)
			if child.Type() == "identifier" {
				f.Parameters = append(f.Parameters, f.Scope.Intern(f.Text(child)))
			}
		}
	}
	bindFreeIdentifiers(f, prog)

	prog.parsed++
	return f, nil, nil
}

// bindFreeIdentifiers interns every identifier the body mentions that the
// function does not bind itself, as a parameter or through a declaration.
// This is what makes the program scope a shared symbol table across
// fragments.
func bindFreeIdentifiers(f *Function, prog *Program) {
	Walk(f.root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "variable_declarator", "function_declaration", "generator_function_declaration":
			if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				f.Scope.Intern(f.Text(name))
			}
		}
		return true
	})
	Walk(f.root, func(n *sitter.Node) bool {
		if n.Type() == "identifier" {
			ident := f.Text(n)
			if f.Scope.Lookup(ident) == nil {
				prog.Scope().Intern(ident)
			}
		}
		return true
	})
}

// findFunctionNode locates the function node inside the parsed program.
// Wrappers arrive as a single expression statement. The grammar names the
// node function_expression; older revisions said function.
func findFunctionNode(root *sitter.Node) *sitter.Node {
	var fn *sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if fn != nil {
			return false
		}
		switch n.Type() {
		case "function_expression", "function", "function_declaration", "generator_function":
			fn = n
			return false
		}
		return true
	})
	return fn
}

// firstSyntaxError finds the earliest ERROR or missing node.
func firstSyntaxError(node *sitter.Node) *ParseError {
	if !node.HasError() && !node.IsMissing() {
		return nil
	}
	if node.IsMissing() || node.Type() == "ERROR" {
		point := node.StartPoint()
		msg := "syntax error"
		if node.IsMissing() {
			msg = fmt.Sprintf("missing %s", node.Type())
		}
		return &ParseError{
			Line:    int(point.Row) + 1,
			Column:  int(point.Column) + 1,
			Message: msg,
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if perr := firstSyntaxError(node.Child(i)); perr != nil {
			return perr
		}
	}
	return nil
}
