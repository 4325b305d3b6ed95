package java

import "strings"

// Resolver maps simple type names from one file to qualified binary names,
// using the file's imports, the java.lang namespace and the file's own
// nested classes. Names that cannot be resolved fall back to the file's
// package, which matches how an unqualified reference compiles when the
// type lives alongside the file.
type Resolver struct {
	pkg     string
	imports []Import
	nested  map[string]string
}

func NewResolver(f *File) *Resolver {
	r := &Resolver{
		pkg:     f.Package,
		imports: f.Imports,
		nested:  make(map[string]string),
	}
	var register func(classes []*Class)
	register = func(classes []*Class) {
		for _, c := range classes {
			r.nested[c.Name] = c.Binary
			register(c.Classes)
		}
	}
	register(f.Classes)
	return r
}

var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "Class": true, "System": true,
	"Throwable": true, "Exception": true, "RuntimeException": true, "Error": true,
	"Integer": true, "Long": true, "Short": true, "Byte": true,
	"Float": true, "Double": true, "Character": true, "Boolean": true,
	"Number": true, "Comparable": true, "CharSequence": true,
	"Iterable": true, "Cloneable": true, "Runnable": true,
	"Thread": true, "StringBuilder": true, "StringBuffer": true,
	"Math": true, "Enum": true, "Record": true,
	"Override": true, "Deprecated": true, "SuppressWarnings": true, "FunctionalInterface": true,
}

func (r *Resolver) Resolve(simpleName string) string {
	if simpleName == "" {
		return ""
	}

	if strings.Contains(simpleName, ".") {
		return simpleName
	}

	switch simpleName {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double", "void":
		return simpleName
	}

	if binary, ok := r.nested[simpleName]; ok {
		return binary
	}

	for _, imp := range r.imports {
		if imp.Wildcard || imp.Static {
			continue
		}
		if i := strings.LastIndexByte(imp.Name, '.'); imp.Name[i+1:] == simpleName {
			return imp.Name
		}
	}

	if javaLangTypes[simpleName] {
		return "java.lang." + simpleName
	}

	if r.pkg != "" {
		return r.pkg + "." + simpleName
	}

	return simpleName
}
