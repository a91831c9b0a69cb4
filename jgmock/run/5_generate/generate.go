// Package generate renders mock source code for a detected symbol.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/dave/dst"

	astutil "github.com/JohannGerellTobii/jg/jgmock/run/0_util"
	detect "github.com/JohannGerellTobii/jg/jgmock/run/3_detect"
)

// Exported constants.
const (
	// RuntimePath is the import path of the package generated code depends on.
	RuntimePath = "github.com/JohannGerellTobii/jg"
)

// Exported variables.
var (
	ErrFormat                 = errors.New("generated code does not format")
	ErrProxyNeedsFunction     = errors.New("--proxy needs a function or function type")
	ErrReferenceNeedsFunction = errors.New("--reference needs a function or function type")
)

// Options control what is generated.
type Options struct {
	// PkgName is the package clause of the generated file.
	PkgName string
	// Name overrides the default mock name.
	Name string
	// Suffix is appended to every generated identifier.
	Suffix string
	// Reference is the import path of a package that already defines the mock.
	Reference string
	// Proxy generates a forwarding function instead of a mock.
	Proxy bool
}

// Code renders the mock of symbol as gofmt-formatted Go source.
func Code(symbol detect.Symbol, opts Options) (string, error) {
	isFunc := symbol.Kind != detect.SymbolInterface

	switch {
	case opts.Reference != "" && !isFunc:
		return "", fmt.Errorf("%w: %s is an interface", ErrReferenceNeedsFunction, symbol.Name)
	case opts.Proxy && !isFunc:
		return "", fmt.Errorf("%w: %s is an interface", ErrProxyNeedsFunction, symbol.Name)
	}

	gen := &generator{
		symbol:     symbol,
		opts:       opts,
		name:       MockName(symbol, opts),
		stringify:  &astutil.Stringifier{Qualifier: symbol.Qualifier},
		templates:  NewTemplateRegistry(),
		extraPaths: map[string]string{},
	}

	var body bytes.Buffer

	switch {
	case opts.Reference != "":
		gen.extraPaths["_ref"] = opts.Reference
		gen.reference(&body)
	case opts.Proxy:
		gen.proxy(&body)
	case isFunc:
		gen.functionMock(&body)
	default:
		gen.interfaceMock(&body)
	}

	imports, err := gen.imports()
	if err != nil {
		return "", err
	}

	var file bytes.Buffer

	gen.templates.WriteHeader(&file, newFileData(opts.PkgName, imports))
	file.Write(body.Bytes())

	formatted, err := format.Source(file.Bytes())
	if err != nil {
		return "", fmt.Errorf("%w: %w\n%s", ErrFormat, err, file.String())
	}

	return string(formatted), nil
}

// MockName returns the name of the generated mock: Name when given, otherwise <Symbol>Mock for
// interfaces, the symbol itself for proxies, and Mock<Symbol> for functions. Suffix is appended.
func MockName(symbol detect.Symbol, opts Options) string {
	name := opts.Name

	if name == "" {
		switch {
		case symbol.Kind == detect.SymbolInterface:
			name = symbol.Name + "Mock"
		case opts.Proxy:
			name = symbol.Name
		default:
			name = "Mock" + symbol.Name
		}
	}

	return name + opts.Suffix
}

type callableData struct {
	Name         string
	Label        string
	Receiver     string
	State        string
	Field        string
	Prototype    string
	FuncType     string
	InfoType     string
	NewInfo      string
	ParamDecl    string
	ResultDecl   string
	NamedResults string
	CallArgs     string
	Body         string
	ArgsType     string
	Accessor     string
	ArgFields    []fieldData
	ResultsType  string
	ResultFields []fieldData
	RefPath      string
}

type fieldData struct {
	Name  string
	Type  string
	Index int
}

type fileData struct {
	PkgName    string
	StdImports []importData
	Imports    []importData
}

type generator struct {
	symbol     detect.Symbol
	opts       Options
	name       string
	stringify  *astutil.Stringifier
	templates  *TemplateRegistry
	extraPaths map[string]string
}

// callable describes one mocked function or method. owner is the mock type name for methods,
// empty for functions.
func (g *generator) callable(name string, funcType *dst.FuncType, owner string) callableData {
	sig := newSignature(g.stringify, funcType)

	data := callableData{
		Name:         name,
		FuncType:     sig.funcType(),
		ParamDecl:    sig.paramDecl(),
		ResultDecl:   resultList(sig.results),
		NamedResults: sig.namedResults(),
		CallArgs:     sig.callArgs(),
		ArgFields:    sig.argFields(),
	}

	typePrefix := g.name

	if owner == "" {
		data.Label = g.symbolRef()
		data.Prototype = "func " + g.symbol.Name + sig.tail()
		data.Field = name + "_"
		data.State = data.Field
		data.Accessor = name + "LastArgs"
	} else {
		data.Label = g.symbolRef() + "." + name
		data.Prototype = "func (" + g.symbolRef() + ") " + name + sig.tail()
		data.Receiver = "(m *" + owner + ") "
		data.Field = name + "_"
		data.State = "m." + data.Field
		data.Accessor = name + "LastArgs"
		typePrefix += name
	}

	data.ArgsType = typePrefix + "Args"

	switch len(sig.results) {
	case 0:
		data.InfoType = "*_jg.VoidInfo[" + data.FuncType + "]"
		data.NewInfo = "_jg.NewVoidInfo[" + data.FuncType + "]"
	case 1:
		data.InfoType = "*_jg.Info[" + data.FuncType + ", " + sig.results[0] + "]"
		data.NewInfo = "_jg.NewInfo[" + data.FuncType + ", " + sig.results[0] + "]"
	default:
		data.ResultsType = typePrefix + "Results"
		data.ResultFields = sig.resultFields()
		data.InfoType = "*_jg.Info[" + data.FuncType + ", " + data.ResultsType + "]"
		data.NewInfo = "_jg.NewInfo[" + data.FuncType + ", " + data.ResultsType + "]"
	}

	data.Body = sig.body(data.State, data.FuncType, data.ResultsType)

	return data
}

func (g *generator) functionMock(buf *bytes.Buffer) {
	data := g.callable(g.name, g.symbol.Func, "")

	g.templates.WriteFunctionMock(buf, data)
	g.writeArgsAndResults(buf, data)
}

func (g *generator) imports() ([]importData, error) {
	imports := []importData{{Alias: "_jg", Path: RuntimePath}}

	for alias, importPath := range g.extraPaths {
		imports = append(imports, importData{Alias: alias, Path: importPath})
	}

	names := make([]string, 0, len(g.stringify.Used))
	for name := range g.stringify.Used {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		importPath := g.symbol.PkgPath

		if name != g.symbol.Qualifier {
			var err error

			importPath, err = detect.ImportPathOf(g.symbol.Imports, name)
			if err != nil {
				return nil, fmt.Errorf("resolving %s in the signature of %s: %w", name, g.symbol.Name, err)
			}
		}

		imports = append(imports, newImport(name, importPath))
	}

	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })

	return imports, nil
}

func (g *generator) interfaceMock(buf *bytes.Buffer) {
	methods := make([]callableData, 0, len(g.symbol.Methods))
	for _, method := range g.symbol.Methods {
		methods = append(methods, g.callable(method.Name, method.Type, g.name))
	}

	if g.symbol.Qualifier != "" {
		g.stringify.Use(g.symbol.Qualifier)
	}

	g.templates.WriteInterfaceMock(buf, struct {
		Name    string
		Iface   string
		Methods []callableData
	}{Name: g.name, Iface: g.symbolRef(), Methods: methods})

	for _, method := range methods {
		g.templates.WriteMethod(buf, method)
		g.writeArgsAndResults(buf, method)
	}
}

func (g *generator) proxy(buf *bytes.Buffer) {
	data := g.callable(g.name, g.symbol.Func, "")
	data.Field = g.name + "Proxy"

	g.templates.WriteProxy(buf, data)
}

func (g *generator) reference(buf *bytes.Buffer) {
	data := g.callable(g.name, g.symbol.Func, "")
	data.RefPath = g.opts.Reference

	g.templates.WriteReference(buf, data)
}

// symbolRef is how generated code names the mocked symbol.
func (g *generator) symbolRef() string {
	if g.symbol.Qualifier == "" {
		return g.symbol.Name
	}

	return g.symbol.Qualifier + "." + g.symbol.Name
}

func (g *generator) writeArgsAndResults(buf *bytes.Buffer, data callableData) {
	if len(data.ArgFields) > 0 {
		g.templates.WriteArgs(buf, data)
	}

	if len(data.ResultFields) > 0 {
		g.templates.WriteResults(buf, data)
	}
}

type importData struct {
	Alias string
	Path  string
}

// standard reports whether the import is from the standard library: its first path element
// has no dot.
func (i importData) standard() bool {
	first, _, _ := strings.Cut(i.Path, "/")

	return !strings.Contains(first, ".")
}

// signature holds the rendered parameter and result types of a callable. A variadic last
// parameter keeps its "..." prefix.
type signature struct {
	params  []string
	results []string
}

func (s signature) argFields() []fieldData {
	fields := make([]fieldData, len(s.params))

	for i, param := range s.params {
		fieldType := param
		if rest, variadic := strings.CutPrefix(param, "..."); variadic {
			fieldType = "[]" + rest
		}

		fields[i] = fieldData{Name: "P" + strconv.Itoa(i+1), Type: fieldType, Index: i + 1}
	}

	return fields
}

// body renders the statements delegating to Invoke or InvokeVoid on state.
func (s signature) body(state, funcType, resultsType string) string {
	var buf strings.Builder

	call := "f(" + s.callArgs() + ")"
	record := ""

	if len(s.params) > 0 {
		record = ", " + strings.Join(s.paramNames(), ", ")
	}

	switch len(s.results) {
	case 0:
		fmt.Fprintf(&buf, "\t_jg.InvokeVoid(%s, func(f %s) {\n\t\t%s\n\t}%s)", state, funcType, call, record)
	case 1:
		fmt.Fprintf(&buf, "\treturn _jg.Invoke(%s, func(f %s) %s {\n\t\treturn %s\n\t}%s)",
			state, funcType, s.results[0], call, record)
	default:
		names := make([]string, len(s.results))
		fields := make([]string, len(s.results))
		reads := make([]string, len(s.results))

		for i := range s.results {
			names[i] = "r" + strconv.Itoa(i+1)
			fields[i] = "R" + strconv.Itoa(i+1) + ": " + names[i]
			reads[i] = "r.R" + strconv.Itoa(i+1)
		}

		fmt.Fprintf(&buf, "\tr := _jg.Invoke(%s, func(f %s) %s {\n\t\t%s := %s\n\n\t\treturn %s{%s}\n\t}%s)\n\n\treturn %s",
			state, funcType, resultsType, strings.Join(names, ", "), call,
			resultsType, strings.Join(fields, ", "), record, strings.Join(reads, ", "))
	}

	return buf.String()
}

func (s signature) callArgs() string {
	names := s.paramNames()
	if s.variadic() {
		names[len(names)-1] += "..."
	}

	return strings.Join(names, ", ")
}

func (s signature) funcType() string {
	return "func" + s.tail()
}

func (s signature) namedResults() string {
	if len(s.results) == 0 {
		return ""
	}

	named := make([]string, len(s.results))
	for i, result := range s.results {
		named[i] = "r" + strconv.Itoa(i+1) + " " + result
	}

	return " (" + strings.Join(named, ", ") + ")"
}

func (s signature) paramDecl() string {
	decls := make([]string, len(s.params))
	for i, param := range s.params {
		decls[i] = "p" + strconv.Itoa(i+1) + " " + param
	}

	return strings.Join(decls, ", ")
}

func (s signature) paramNames() []string {
	names := make([]string, len(s.params))
	for i := range s.params {
		names[i] = "p" + strconv.Itoa(i+1)
	}

	return names
}

func (s signature) resultFields() []fieldData {
	fields := make([]fieldData, len(s.results))
	for i, result := range s.results {
		fields[i] = fieldData{Name: "R" + strconv.Itoa(i+1), Type: result, Index: i + 1}
	}

	return fields
}

// tail renders what follows the name in a declaration: "(int, ...string) (string, error)".
func (s signature) tail() string {
	return "(" + strings.Join(s.params, ", ") + ")" + resultList(s.results)
}

func (s signature) variadic() bool {
	return len(s.params) > 0 && strings.HasPrefix(s.params[len(s.params)-1], "...")
}

// newFileData splits imports into the standard library group and the rest, the way goimports
// lays them out.
func newFileData(pkgName string, imports []importData) fileData {
	data := fileData{PkgName: pkgName}

	for _, imp := range imports {
		if imp.standard() {
			data.StdImports = append(data.StdImports, imp)
		} else {
			data.Imports = append(data.Imports, imp)
		}
	}

	return data
}

func newImport(name, importPath string) importData {
	if path.Base(importPath) == name {
		return importData{Path: importPath}
	}

	return importData{Alias: name, Path: importPath}
}

func newSignature(stringify *astutil.Stringifier, funcType *dst.FuncType) signature {
	var sig signature

	if funcType.Params != nil {
		sig.params = astutil.ExpandFieldListTypes(funcType.Params.List, stringify.Expr)
	}

	if funcType.Results != nil {
		sig.results = astutil.ExpandFieldListTypes(funcType.Results.List, stringify.Expr)
	}

	return sig
}

func resultList(results []string) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + results[0]
	default:
		return " (" + strings.Join(results, ", ") + ")"
	}
}
