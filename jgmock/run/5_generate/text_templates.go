package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds all parsed text templates for code generation.
// Create a registry using NewTemplateRegistry() to initialize all templates.
type TemplateRegistry struct {
	headerTmpl        *template.Template
	interfaceMockTmpl *template.Template
	methodTmpl        *template.Template
	functionMockTmpl  *template.Template
	argsTmpl          *template.Template
	resultsTmpl       *template.Template
	referenceTmpl     *template.Template
	proxyTmpl         *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with all templates parsed.
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{}

	templates := []struct {
		target  **template.Template
		name    string
		content string
	}{
		{&registry.headerTmpl, "header", tmplHeader},
		{&registry.interfaceMockTmpl, "interfaceMock", tmplInterfaceMock},
		{&registry.methodTmpl, "method", tmplMethod},
		{&registry.functionMockTmpl, "functionMock", tmplFunctionMock},
		{&registry.argsTmpl, "args", tmplArgs},
		{&registry.resultsTmpl, "results", tmplResults},
		{&registry.referenceTmpl, "reference", tmplReference},
		{&registry.proxyTmpl, "proxy", tmplProxy},
	}

	for _, tmpl := range templates {
		*tmpl.target = template.Must(template.New(tmpl.name).Parse(tmpl.content))
	}

	return registry
}

// WriteArgs writes the args struct of a mocked callable and its LastArgs accessor.
func (r *TemplateRegistry) WriteArgs(buf *bytes.Buffer, data any) {
	execute(r.argsTmpl, buf, data)
}

// WriteFunctionMock writes the auxiliary data variable and the mock of a function.
func (r *TemplateRegistry) WriteFunctionMock(buf *bytes.Buffer, data any) {
	execute(r.functionMockTmpl, buf, data)
}

// WriteHeader writes the generated-code notice, package clause, and imports, standard library
// first.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteInterfaceMock writes the mock struct of an interface and its constructor.
func (r *TemplateRegistry) WriteInterfaceMock(buf *bytes.Buffer, data any) {
	execute(r.interfaceMockTmpl, buf, data)
}

// WriteMethod writes one delegating method of an interface mock.
func (r *TemplateRegistry) WriteMethod(buf *bytes.Buffer, data any) {
	execute(r.methodTmpl, buf, data)
}

// WriteProxy writes a proxy and the forwarding function.
func (r *TemplateRegistry) WriteProxy(buf *bytes.Buffer, data any) {
	execute(r.proxyTmpl, buf, data)
}

// WriteReference writes the declarations that refer to a mock defined in another package.
func (r *TemplateRegistry) WriteReference(buf *bytes.Buffer, data any) {
	execute(r.referenceTmpl, buf, data)
}

// WriteResults writes the results struct of a multi-result callable.
func (r *TemplateRegistry) WriteResults(buf *bytes.Buffer, data any) {
	execute(r.resultsTmpl, buf, data)
}

// unexported constants.
const (
	tmplArgs = `
// {{.ArgsType}} holds the arguments of a {{.Label}} call.
type {{.ArgsType}} struct {
{{- range .ArgFields}}
	{{.Name}} {{.Type}}
{{- end}}
}

// {{.Accessor}} returns the arguments of the most recent {{.Label}} call.
func {{.Receiver}}{{.Accessor}}() {{.ArgsType}} {
	return {{.ArgsType}}{
{{- range .ArgFields}}
		{{.Name}}: _jg.Param[{{.Type}}]({{$.State}}, {{.Index}}),
{{- end}}
	}
}
`
	tmplFunctionMock = `
var (
	// {{.Field}} holds the auxiliary data of {{.Name}}.
	{{.Field}} = {{.NewInfo}}({{printf "%q" .Prototype}})
)

// {{.Name}} is a mock of {{.Label}}. It records the call in {{.Field}} and delegates to its Func{{if .ResultDecl}} or Result{{end}}.
func {{.Name}}({{.ParamDecl}}){{.ResultDecl}} {
{{.Body}}
}
`
	tmplHeader = `// Code generated by jgmock. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .StdImports}}
	{{if .Alias}}{{.Alias}} {{end}}{{printf "%q" .Path}}
{{- end}}
{{- if and .StdImports .Imports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}{{printf "%q" .Path}}
{{- end}}
)
`
	tmplInterfaceMock = `
// {{.Name}} is a mock implementation of {{.Iface}}. Configure and inspect each method
// through its auxiliary data field.
type {{.Name}} struct {
{{- range .Methods}}
	{{.Field}} {{.InfoType}}
{{- end}}
}

// New{{.Name}} creates a {{.Name}} with fresh auxiliary data for every method. When t is
// not nil, failures are reported through t and the data is reset when the test ends.
func New{{.Name}}(t _jg.TestReporter) *{{.Name}} {
	mock := &{{.Name}}{
{{- range .Methods}}
		{{.Field}}: {{.NewInfo}}({{printf "%q" .Prototype}}),
{{- end}}
	}

	if t != nil {
		_jg.Track(t{{range .Methods}}, mock.{{.Field}}{{end}})
	}

	return mock
}

var _ {{.Iface}} = (*{{.Name}})(nil)
`
	tmplMethod = `
// {{.Name}} records the call in {{.Field}} and delegates to its Func{{if .ResultDecl}} or Result{{end}}.
func {{.Receiver}}{{.Name}}({{.ParamDecl}}){{.ResultDecl}} {
{{.Body}}
}
`
	tmplProxy = `
var (
	// {{.Field}} forwards calls of {{.Name}} to the subject a test connects.
	{{.Field}} = _jg.NewProxy[{{.FuncType}}]({{printf "%q" .Prototype}})
)

// {{.Name}} calls the subject connected to {{.Field}}. With none connected the failure is
// reported and zero values are returned.
func {{.Name}}({{.ParamDecl}}){{.NamedResults}} {
	subject, ok := {{.Field}}.Subject()
	if !ok {
		return
	}

	{{if .ResultDecl}}return {{end}}subject({{.CallArgs}})
}
`
	tmplReference = `
var (
	// {{.Name}} is the mock of {{.Label}} defined in {{.RefPath}}. {{.Field}} is its
	// auxiliary data.
	{{.Name}} {{.FuncType}} = _ref.{{.Name}}
	{{.Field}} {{.InfoType}} = _ref.{{.Field}}
)
{{- if .ArgFields}}

// {{.ArgsType}} holds the arguments of a {{.Label}} call.
type {{.ArgsType}} = _ref.{{.ArgsType}}

// {{.Accessor}} returns the arguments of the most recent {{.Label}} call.
func {{.Accessor}}() {{.ArgsType}} {
	return _ref.{{.Accessor}}()
}
{{- end}}
{{- if .ResultFields}}

// {{.ResultsType}} holds the results of a {{.Label}} call.
type {{.ResultsType}} = _ref.{{.ResultsType}}
{{- end}}
`
	tmplResults = `
// {{.ResultsType}} holds the results of a {{.Label}} call.
type {{.ResultsType}} struct {
{{- range .ResultFields}}
	{{.Name}} {{.Type}}
{{- end}}
}
`
)

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}
