package java

type Import struct {
	Name     string
	Wildcard bool
	Static   bool
}

// File is the scanned declaration structure of one Java source file.
type File struct {
	Path    string
	Package string
	Imports []Import
	Classes []*Class
}

// AllClasses returns every class in the file, nested classes included, in
// declaration order.
func (f *File) AllClasses() []*Class {
	var out []*Class
	var walk func(classes []*Class)
	walk = func(classes []*Class) {
		for _, c := range classes {
			out = append(out, c)
			walk(c.Classes)
		}
	}
	walk(f.Classes)
	return out
}
