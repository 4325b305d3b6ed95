package java

// Method is a method declaration harvested by the scanner.
//
// Span covers the declaration from its first modifier through the end of
// its body or terminating semicolon. Body is the source region the
// implementation occupies: the braced block for a concrete method, or the
// region between the parameter list (or throws clause) and the semicolon
// for a native or abstract method. For native methods that region is where
// the implementation comment sits.
type Method struct {
	Name       string
	Modifiers  []string
	Return     Type
	Parameters []Parameter
	Throws     []string
	Span       Span
	Body       Span
	Native     bool
	Abstract   bool
}

// Line is the 1-based line the declaration starts on.
func (m *Method) Line() int {
	return m.Span.Start.Line
}

// ParameterNames returns the declared parameter names in order.
func (m *Method) ParameterNames() []string {
	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		names[i] = p.Name
	}
	return names
}

// Descriptor renders the parameter segment of the method's JVM
// signature, parentheses included.
func (m *Method) Descriptor(r *Resolver) string {
	return "(" + EncodeParameters(m.Parameters, r) + ")"
}
