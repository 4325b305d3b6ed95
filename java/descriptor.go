package java

import (
	"fmt"
	"strings"
)

var primitiveDescriptors = map[string]string{
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"double":  "D",
	"float":   "F",
	"int":     "I",
	"long":    "J",
	"short":   "S",
	"void":    "V",
}

// EncodeDescriptor renders t as a JVM field descriptor. Reference type
// names resolve through r to binary names; a nil resolver uses t.Name as
// given.
func EncodeDescriptor(t Type, r *Resolver) string {
	var sb strings.Builder
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteByte('[')
	}
	if d, ok := primitiveDescriptors[t.Name]; ok {
		sb.WriteString(d)
		return sb.String()
	}
	name := t.Name
	if r != nil {
		name = r.Resolve(t.Name)
	}
	sb.WriteByte('L')
	sb.WriteString(strings.ReplaceAll(name, ".", "/"))
	sb.WriteByte(';')
	return sb.String()
}

// EncodeParameters renders the parameter segment of a method signature:
// each parameter type's descriptor, concatenated.
func EncodeParameters(params []Parameter, r *Resolver) string {
	var sb strings.Builder
	for _, p := range params {
		sb.WriteString(EncodeDescriptor(p.Type, r))
	}
	return sb.String()
}

// DecodeDescriptor parses a single JVM field descriptor back into a Type
// with a source-form name (dots for slashes).
func DecodeDescriptor(desc string) (Type, error) {
	t, consumed, err := decodeFieldType(desc, 0)
	if err != nil {
		return Type{}, err
	}
	if consumed != len(desc) {
		return Type{}, fmt.Errorf("trailing characters in descriptor %q", desc)
	}
	return t, nil
}

// DecodeParameters parses a concatenated parameter-descriptor segment, the
// text between the parentheses of a method signature.
func DecodeParameters(desc string) ([]Type, error) {
	var out []Type
	i := 0
	for i < len(desc) {
		t, consumed, err := decodeFieldType(desc, i)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		i += consumed
	}
	return out, nil
}

func decodeFieldType(desc string, start int) (Type, int, error) {
	i := start
	depth := 0
	for i < len(desc) && desc[i] == '[' {
		depth++
		i++
	}
	if i >= len(desc) {
		return Type{}, 0, fmt.Errorf("truncated descriptor %q", desc[start:])
	}

	switch desc[i] {
	case 'B':
		return Type{Name: "byte", ArrayDepth: depth}, i - start + 1, nil
	case 'C':
		return Type{Name: "char", ArrayDepth: depth}, i - start + 1, nil
	case 'D':
		return Type{Name: "double", ArrayDepth: depth}, i - start + 1, nil
	case 'F':
		return Type{Name: "float", ArrayDepth: depth}, i - start + 1, nil
	case 'I':
		return Type{Name: "int", ArrayDepth: depth}, i - start + 1, nil
	case 'J':
		return Type{Name: "long", ArrayDepth: depth}, i - start + 1, nil
	case 'S':
		return Type{Name: "short", ArrayDepth: depth}, i - start + 1, nil
	case 'Z':
		return Type{Name: "boolean", ArrayDepth: depth}, i - start + 1, nil
	case 'V':
		return Type{Name: "void", ArrayDepth: depth}, i - start + 1, nil
	case 'L':
		semicolon := strings.IndexByte(desc[i:], ';')
		if semicolon == -1 {
			return Type{}, 0, fmt.Errorf("unterminated class name in descriptor %q", desc[start:])
		}
		name := strings.ReplaceAll(desc[i+1:i+semicolon], "/", ".")
		return Type{Name: name, ArrayDepth: depth}, i - start + semicolon + 1, nil
	default:
		return Type{}, 0, fmt.Errorf("invalid descriptor character %q in %q", desc[i], desc[start:])
	}
}
