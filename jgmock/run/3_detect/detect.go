// Package detect finds the symbol to mock and collects what generation needs about it.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/hashicorp/go-multierror"
)

// Exported variables.
var (
	ErrBlackBoxNeedsQualifier = errors.New("symbol from a black-box test package must be qualified")
	ErrGeneric                = errors.New("generic symbols are not supported")
	ErrNotExported            = errors.New("symbol of another package must be exported")
	ErrPackageNotImported     = errors.New("package not found in imports")
	ErrSymbolNotFound         = errors.New("symbol not found")
	ErrUnsupportedEmbedded    = errors.New("unsupported embedded interface")
)

// Method is one method of a mocked interface.
type Method struct {
	Name string
	Type *dst.FuncType
}

// PackageLoader loads the files of a package by import path. "." is the package of the
// go:generate directive.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// Symbol is a resolved mock target.
type Symbol struct {
	Kind SymbolKind
	Name string
	// PkgPath is the import path of the declaring package, "." when it is the local one.
	PkgPath string
	// Qualifier is the package name generated code refers to the symbol's package by, empty
	// when the symbol is local.
	Qualifier string
	// Func is the signature of a function or function type.
	Func *dst.FuncType
	// Methods of an interface, with embedded interfaces flattened.
	Methods []Method
	// Imports of the declaring package's files.
	Imports []*dst.ImportSpec
}

// SymbolKind identifies the kind of symbol found.
type SymbolKind int

// SymbolKind values.
const (
	SymbolInterface SymbolKind = iota
	SymbolFunction
	SymbolFunctionType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolInterface:
		return "interface"
	case SymbolFunction:
		return "function"
	case SymbolFunctionType:
		return "function type"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// Find resolves symbolName ("Name" or "pkg.Name") as seen from the local package. localPkg is
// the package clause of the file holding the go:generate directive.
func Find(loader PackageLoader, symbolName, localPkg string) (Symbol, error) {
	qualifier, name, qualified := strings.Cut(symbolName, ".")
	if !qualified {
		qualifier, name = "", symbolName
	}

	localFiles, _, err := loader.Load(".")
	if err != nil {
		return Symbol{}, fmt.Errorf("failed to load local package: %w", err)
	}

	if !qualified {
		return findLocal(localFiles, name, localPkg)
	}

	if !token.IsExported(name) {
		return Symbol{}, fmt.Errorf("%w: %s", ErrNotExported, symbolName)
	}

	importPath, err := FindImportPath(localFiles, qualifier)
	if err != nil {
		return Symbol{}, err
	}

	files, _, err := loader.Load(importPath)
	if err != nil {
		return Symbol{}, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	symbol, err := findIn(files, name)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w (package %q)", err, importPath)
	}

	symbol.PkgPath = importPath
	symbol.Qualifier = qualifier

	return symbol, nil
}

// FindImportPath returns the import path the local files import pkgName from.
func FindImportPath(files []*dst.File, pkgName string) (string, error) {
	return ImportPathOf(importsOf(files), pkgName)
}

// ImportPathOf returns the import path of pkgName among imports, matching an explicit alias
// first and the last path element otherwise.
func ImportPathOf(imports []*dst.ImportSpec, pkgName string) (string, error) {
	var byElement string

	for _, spec := range imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return "", fmt.Errorf("failed to unquote import path %s: %w", spec.Path.Value, err)
		}

		if spec.Name != nil {
			if spec.Name.Name == pkgName {
				return importPath, nil
			}

			continue
		}

		if byElement == "" && path.Base(importPath) == pkgName {
			byElement = importPath
		}
	}

	if byElement == "" {
		return "", fmt.Errorf("%w: %q", ErrPackageNotImported, pkgName)
	}

	return byElement, nil
}

// unexported variables.
var (
	//nolint:gochecknoglobals // signature of the predeclared error interface's only method
	errorMethod = Method{
		Name: "Error",
		Type: &dst.FuncType{
			Params:  &dst.FieldList{},
			Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("string")}}},
		},
	}
)

// collectMethods flattens the methods of iface, resolving embedded interfaces declared in the
// same package. Every unsupported embed is reported.
func collectMethods(files []*dst.File, iface *dst.InterfaceType, visited map[string]bool) ([]Method, error) {
	var (
		methods []Method
		errs    *multierror.Error
	)

	if iface.Methods == nil {
		return nil, nil
	}

	for _, field := range iface.Methods.List {
		if funcType, ok := field.Type.(*dst.FuncType); ok {
			for _, name := range field.Names {
				methods = append(methods, Method{Name: name.Name, Type: funcType})
			}

			continue
		}

		embedded, err := embeddedMethods(files, field.Type, visited)
		if err != nil {
			errs = multierror.Append(errs, err)

			continue
		}

		methods = append(methods, embedded...)
	}

	return methods, errs.ErrorOrNil()
}

func embeddedMethods(files []*dst.File, expr dst.Expr, visited map[string]bool) ([]Method, error) {
	ident, ok := expr.(*dst.Ident)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEmbedded, describeExpr(expr))
	}

	if ident.Name == "error" {
		return []Method{errorMethod}, nil
	}

	if visited[ident.Name] {
		return nil, nil
	}

	visited[ident.Name] = true

	spec, _ := lookupType(files, ident.Name)
	if spec == nil {
		return nil, fmt.Errorf("%w: %s is not declared in this package", ErrUnsupportedEmbedded, ident.Name)
	}

	iface, ok := spec.Type.(*dst.InterfaceType)
	if !ok || spec.TypeParams != nil {
		return nil, fmt.Errorf("%w: %s is not a plain interface", ErrUnsupportedEmbedded, ident.Name)
	}

	return collectMethods(files, iface, visited)
}

// dedupe drops repeated methods, which overlapping embedded interfaces may declare.
func dedupe(methods []Method) []Method {
	seen := make(map[string]bool, len(methods))
	unique := methods[:0]

	for _, method := range methods {
		if seen[method.Name] {
			continue
		}

		seen[method.Name] = true
		unique = append(unique, method)
	}

	return unique
}

func describeExpr(expr dst.Expr) string {
	switch typed := expr.(type) {
	case *dst.SelectorExpr:
		if pkg, ok := typed.X.(*dst.Ident); ok {
			return pkg.Name + "." + typed.Sel.Name + " is declared in another package"
		}
	case *dst.BinaryExpr, *dst.UnaryExpr:
		return "type constraint elements"
	}

	return fmt.Sprintf("%T", expr)
}

func findIn(files []*dst.File, name string) (Symbol, error) {
	symbol := Symbol{Name: name, Imports: importsOf(files)}

	if spec, _ := lookupType(files, name); spec != nil {
		if spec.TypeParams != nil {
			return Symbol{}, fmt.Errorf("%w: %s", ErrGeneric, name)
		}

		switch typed := spec.Type.(type) {
		case *dst.InterfaceType:
			methods, err := collectMethods(files, typed, map[string]bool{name: true})
			if err != nil {
				return Symbol{}, fmt.Errorf("interface %s: %w", name, err)
			}

			symbol.Kind = SymbolInterface
			symbol.Methods = dedupe(methods)

			return symbol, nil
		case *dst.FuncType:
			symbol.Kind = SymbolFunctionType
			symbol.Func = typed

			return symbol, nil
		}
	}

	if decl := lookupFunc(files, name); decl != nil {
		if decl.Type.TypeParams != nil {
			return Symbol{}, fmt.Errorf("%w: %s", ErrGeneric, name)
		}

		symbol.Kind = SymbolFunction
		symbol.Func = decl.Type

		return symbol, nil
	}

	return Symbol{}, fmt.Errorf("%w: no interface, function, or function type named %q", ErrSymbolNotFound, name)
}

// findLocal resolves an unqualified symbol in the local package. A black-box test package
// cannot refer to the package under test without a qualifier.
func findLocal(files []*dst.File, name, localPkg string) (Symbol, error) {
	symbol, err := findIn(files, name)
	if err != nil {
		return Symbol{}, err
	}

	if _, file := lookupDecl(files, name); file != nil && localPkg != "" && file.Name.Name != localPkg {
		return Symbol{}, fmt.Errorf("%w: %s is declared in package %s, use %s.%s",
			ErrBlackBoxNeedsQualifier, name, file.Name.Name, file.Name.Name, name)
	}

	symbol.PkgPath = "."

	return symbol, nil
}

func importsOf(files []*dst.File) []*dst.ImportSpec {
	var imports []*dst.ImportSpec

	for _, file := range files {
		imports = append(imports, file.Imports...)
	}

	return imports
}

func lookupDecl(files []*dst.File, name string) (dst.Node, *dst.File) {
	if spec, file := lookupType(files, name); spec != nil {
		return spec, file
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*dst.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == name {
				return fn, file
			}
		}
	}

	return nil, nil
}

func lookupFunc(files []*dst.File, name string) *dst.FuncDecl {
	node, _ := lookupDecl(files, name)
	fn, _ := node.(*dst.FuncDecl)

	return fn
}

func lookupType(files []*dst.File, name string) (*dst.TypeSpec, *dst.File) {
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*dst.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				if typeSpec, ok := spec.(*dst.TypeSpec); ok && typeSpec.Name.Name == name {
					return typeSpec, file
				}
			}
		}
	}

	return nil, nil
}
