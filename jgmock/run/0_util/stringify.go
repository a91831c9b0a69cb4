// Package astutil renders DST type expressions back to Go source text.
package astutil

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/dave/dst"
)

// ExpandFieldListTypes returns one type string per declared name, so that "a, b int" yields
// two entries. Unnamed fields yield one entry each.
func ExpandFieldListTypes(fields []*dst.Field, typeFormatter func(dst.Expr) string) []string {
	types := make([]string, 0, len(fields))

	for _, field := range fields {
		typeStr := typeFormatter(field.Type)

		count := len(field.Names)
		if count == 0 {
			count = 1
		}

		for range count {
			types = append(types, typeStr)
		}
	}

	return types
}

// IsBuiltin reports whether name is a predeclared Go type.
func IsBuiltin(name string) bool {
	_, ok := builtinTypes[name]

	return ok
}

// Stringifier renders type expressions. When Qualifier is set, bare exported identifiers
// (types declared in the symbol's own package) are prefixed with it. Every package name the
// rendered text refers to is recorded in Used.
type Stringifier struct {
	Qualifier string
	Used      map[string]bool
}

// Expr renders expr as Go source text.
//
//nolint:cyclop // one case per expression kind
func (s *Stringifier) Expr(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typed := expr.(type) {
	case *dst.Ident:
		return s.ident(typed)
	case *dst.SelectorExpr:
		if pkg, ok := typed.X.(*dst.Ident); ok {
			s.Use(pkg.Name)

			return pkg.Name + "." + typed.Sel.Name
		}

		return s.Expr(typed.X) + "." + typed.Sel.Name
	case *dst.BasicLit:
		return typed.Value
	case *dst.StarExpr:
		return "*" + s.Expr(typed.X)
	case *dst.ArrayType:
		if typed.Len == nil {
			return "[]" + s.Expr(typed.Elt)
		}

		return "[" + s.Expr(typed.Len) + "]" + s.Expr(typed.Elt)
	case *dst.MapType:
		return "map[" + s.Expr(typed.Key) + "]" + s.Expr(typed.Value)
	case *dst.ChanType:
		return chanPrefix(typed.Dir) + s.Expr(typed.Value)
	case *dst.Ellipsis:
		return "..." + s.Expr(typed.Elt)
	case *dst.FuncType:
		return "func" + s.Signature(typed)
	case *dst.InterfaceType:
		return s.interfaceType(typed)
	case *dst.StructType:
		return s.structType(typed)
	case *dst.IndexExpr:
		return s.Expr(typed.X) + "[" + s.Expr(typed.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typed.Indices))
		for i, index := range typed.Indices {
			indices[i] = s.Expr(index)
		}

		return s.Expr(typed.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + s.Expr(typed.X) + ")"
	case *dst.UnaryExpr:
		return typed.Op.String() + s.Expr(typed.X)
	case *dst.BinaryExpr:
		return s.Expr(typed.X) + " " + typed.Op.String() + " " + s.Expr(typed.Y)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// Signature renders the parameter and result lists of a function type, as they follow the
// function name: "(int, ...string) (string, error)".
func (s *Stringifier) Signature(funcType *dst.FuncType) string {
	var buf strings.Builder

	buf.WriteString("(")

	if funcType.Params != nil {
		buf.WriteString(strings.Join(ExpandFieldListTypes(funcType.Params.List, s.Expr), ", "))
	}

	buf.WriteString(")")

	if funcType.Results == nil {
		return buf.String()
	}

	results := ExpandFieldListTypes(funcType.Results.List, s.Expr)

	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" " + results[0])
	default:
		buf.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	return buf.String()
}

// StringifyExpr renders expr as Go source text, unqualified.
func StringifyExpr(expr dst.Expr) string {
	return (&Stringifier{}).Expr(expr)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // lookup table of predeclared types
	builtinTypes = map[string]struct{}{
		"any": {}, "bool": {}, "byte": {}, "comparable": {}, "complex64": {}, "complex128": {},
		"error": {}, "float32": {}, "float64": {}, "int": {}, "int8": {}, "int16": {}, "int32": {},
		"int64": {}, "rune": {}, "string": {}, "uint": {}, "uint8": {}, "uint16": {}, "uint32": {},
		"uint64": {}, "uintptr": {},
	}
)

func chanPrefix(dir dst.ChanDir) string {
	switch dir {
	case dst.SEND:
		return "chan<- "
	case dst.RECV:
		return "<-chan "
	default:
		return "chan "
	}
}

func (s *Stringifier) ident(ident *dst.Ident) string {
	if ident.Path != "" {
		return ident.Path + "." + ident.Name
	}

	if s.Qualifier == "" || IsBuiltin(ident.Name) || !token.IsExported(ident.Name) {
		return ident.Name
	}

	s.Use(s.Qualifier)

	return s.Qualifier + "." + ident.Name
}

func (s *Stringifier) interfaceType(iface *dst.InterfaceType) string {
	if iface.Methods == nil || len(iface.Methods.List) == 0 {
		return "interface{}"
	}

	elements := make([]string, 0, len(iface.Methods.List))

	for _, field := range iface.Methods.List {
		funcType, isMethod := field.Type.(*dst.FuncType)
		if isMethod && len(field.Names) > 0 {
			elements = append(elements, field.Names[0].Name+s.Signature(funcType))

			continue
		}

		elements = append(elements, s.Expr(field.Type))
	}

	return "interface{ " + strings.Join(elements, "; ") + " }"
}

func (s *Stringifier) structType(structType *dst.StructType) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var text strings.Builder

		if len(field.Names) > 0 {
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}

			text.WriteString(strings.Join(names, ", ") + " ")
		}

		text.WriteString(s.Expr(field.Type))

		if field.Tag != nil {
			text.WriteString(" " + field.Tag.Value)
		}

		fields = append(fields, text.String())
	}

	return "struct{ " + strings.Join(fields, "; ") + " }"
}

// Use records that the rendered text refers to pkg.
func (s *Stringifier) Use(pkg string) {
	if s.Used == nil {
		s.Used = make(map[string]bool)
	}

	s.Used[pkg] = true
}
