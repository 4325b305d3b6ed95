// Package js parses JavaScript function wrappers with tree-sitter and
// exposes the parsed functions together with a program-wide symbol table.
package js

// Program owns the scope shared by every function parsed into it. Names
// that a function references without declaring intern into this shared
// scope, so two fragments referring to the same global resolve to the same
// Name. The scope is mutated on every parse and is not synchronized:
// callers must serialize parsing and scope access.
type Program struct {
	scope  *Scope
	parsed int
}

func NewProgram() *Program {
	return &Program{scope: newScope(nil)}
}

// Scope returns the program's root scope.
func (p *Program) Scope() *Scope {
	return p.scope
}

// Parsed reports how many functions have been parsed into the program.
func (p *Program) Parsed() int {
	return p.parsed
}

// Scope is a lexical name table. Interned names are canonical within their
// scope: interning the same identifier twice returns the same Name.
type Scope struct {
	parent *Scope
	names  map[string]*Name
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, names: make(map[string]*Name)}
}

// Child creates a scope nested in s.
func (s *Scope) Child() *Scope {
	return newScope(s)
}

func (s *Scope) Intern(ident string) *Name {
	if n, ok := s.names[ident]; ok {
		return n
	}
	n := &Name{ident: ident, scope: s}
	s.names[ident] = n
	return n
}

// Lookup finds ident in s or any enclosing scope, or returns nil.
func (s *Scope) Lookup(ident string) *Name {
	for cur := s; cur != nil; cur = cur.parent {
		if n, ok := cur.names[ident]; ok {
			return n
		}
	}
	return nil
}

// Len reports how many names are interned directly in s.
func (s *Scope) Len() int {
	return len(s.names)
}

// Name is a canonical identifier within one scope.
type Name struct {
	ident string
	scope *Scope
}

func (n *Name) Ident() string {
	return n.ident
}

// Scope returns the scope the name was interned into.
func (n *Name) Scope() *Scope {
	return n.scope
}
