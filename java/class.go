package java

type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindEnum      ClassKind = "enum"
	ClassKindRecord    ClassKind = "record"
)

// Class is a type declaration. Binary is the JVM binary name, package
// separated by dots and nesting by '$' (com.example.Outer$Inner); it is what
// implementation signatures embed.
type Class struct {
	Name    string
	Binary  string
	Kind    ClassKind
	Methods []*Method
	Classes []*Class
}

// NativeMethods returns the class's native methods in declaration order.
func (c *Class) NativeMethods() []*Method {
	var out []*Method
	for _, m := range c.Methods {
		if m.Native {
			out = append(out, m)
		}
	}
	return out
}
