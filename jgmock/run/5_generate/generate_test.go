package generate_test

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/akedrou/textdiff"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	detect "github.com/JohannGerellTobii/jg/jgmock/run/3_detect"
	generate "github.com/JohannGerellTobii/jg/jgmock/run/5_generate"
)

const usersSource = `package users

import "context"

type ID int

type UserNames interface {
	FindByID(ctx context.Context, id ID) (string, error)
	Forget(ID)
	Count() int
}

func Find(id ID) (string, error) { return "", nil }

func Join(sep string, parts ...string) string { return "" }

func Tick() {}

func Save(id ID) error { return nil }

type Wide func(a, b, c, d, e, f, g, h, i, j int) (bool, error)
`

const consumerSource = `package users_test

import "example.com/app/users"

var _ users.ID
`

type fakeLoader map[string][]string

func (l fakeLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files := make([]*dst.File, 0, len(l[importPath]))

	for _, source := range l[importPath] {
		file, err := decorator.Parse(source)
		if err != nil {
			return nil, nil, err
		}

		files = append(files, file)
	}

	return files, token.NewFileSet(), nil
}

func find(t *testing.T, symbolName string) detect.Symbol {
	t.Helper()

	loader := fakeLoader{
		".":                     {usersSource, consumerSource},
		"example.com/app/users": {usersSource},
	}

	symbol, err := detect.Find(loader, symbolName, "users_test")
	if err != nil {
		t.Fatalf("detect.Find(%q): %v", symbolName, err)
	}

	return symbol
}

func generateValid(t *testing.T, symbol detect.Symbol, opts generate.Options) string {
	t.Helper()

	code, err := generate.Code(symbol, opts)
	if err != nil {
		t.Fatalf("generate.Code: %v", err)
	}

	_, err = parser.ParseFile(token.NewFileSet(), "generated.go", code, parser.AllErrors)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}

	return code
}

func TestCode_InterfaceMock(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code := generateValid(t, find(t, "users.UserNames"), generate.Options{PkgName: "users_test"})

	g.Expect(code).To(HavePrefix("// Code generated by jgmock. DO NOT EDIT.\n\npackage users_test\n"))
	g.Expect(code).To(ContainSubstring(`"context"`))
	g.Expect(code).To(ContainSubstring(`"example.com/app/users"`))
	g.Expect(code).To(ContainSubstring(`_jg "github.com/JohannGerellTobii/jg"`))
	g.Expect(code).To(ContainSubstring("import (\n\t\"context\"\n\n\t\"example.com/app/users\"\n\t_jg \"github.com/JohannGerellTobii/jg\"\n)"))
	g.Expect(code).To(ContainSubstring("type UserNamesMock struct {"))
	g.Expect(code).To(ContainSubstring("*_jg.Info[func(context.Context, users.ID) (string, error), UserNamesMockFindByIDResults]"))
	g.Expect(code).To(ContainSubstring("*_jg.VoidInfo[func(users.ID)]"))
	g.Expect(code).To(ContainSubstring(`_jg.NewInfo[func() int, int]("func (users.UserNames) Count() int")`))
	g.Expect(code).To(ContainSubstring("func NewUserNamesMock(t _jg.TestReporter) *UserNamesMock {"))
	g.Expect(code).To(ContainSubstring("_jg.Track(t, mock.FindByID_, mock.Forget_, mock.Count_)"))
	g.Expect(code).To(ContainSubstring("func (m *UserNamesMock) FindByID(p1 context.Context, p2 users.ID) (string, error) {"))
	g.Expect(code).To(ContainSubstring("r1, r2 := f(p1, p2)"))
	g.Expect(code).To(ContainSubstring("return UserNamesMockFindByIDResults{R1: r1, R2: r2}"))
	g.Expect(code).To(ContainSubstring("return r.R1, r.R2"))
	g.Expect(code).To(ContainSubstring("func (m *UserNamesMock) FindByIDLastArgs() UserNamesMockFindByIDArgs {"))
	g.Expect(code).To(ContainSubstring("_jg.Param[users.ID](m.FindByID_, 2)"))
	g.Expect(code).To(ContainSubstring("func (m *UserNamesMock) Forget(p1 users.ID) {"))
	g.Expect(code).To(ContainSubstring("return _jg.Invoke(m.Count_, func(f func() int) int {"))
	g.Expect(code).To(ContainSubstring("var _ users.UserNames = (*UserNamesMock)(nil)"))
	g.Expect(code).NotTo(ContainSubstring("UserNamesMockCountArgs"))
}

func TestCode_FunctionMockWithVariadic(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code := generateValid(t, find(t, "users.Join"), generate.Options{PkgName: "users_test"})

	g.Expect(code).To(ContainSubstring(`	MockJoin_ = _jg.NewInfo[func(string, ...string) string, string]("func Join(string, ...string) string")`))
	g.Expect(code).To(ContainSubstring("func MockJoin(p1 string, p2 ...string) string {"))
	g.Expect(code).To(ContainSubstring("return f(p1, p2...)"))
	g.Expect(code).To(ContainSubstring("}, p1, p2)"))
	g.Expect(code).To(ContainSubstring("P2 []string"))
	g.Expect(code).To(ContainSubstring("_jg.Param[[]string](MockJoin_, 2)"))
	g.Expect(code).NotTo(ContainSubstring(`"example.com/app/users"`))
}

func TestCode_VoidFunctionWithoutParameters(t *testing.T) {
	t.Parallel()

	expected := `// Code generated by jgmock. DO NOT EDIT.

package users_test

import (
	_jg "github.com/JohannGerellTobii/jg"
)

var (
	// MockTick_ holds the auxiliary data of MockTick.
	MockTick_ = _jg.NewVoidInfo[func()]("func Tick()")
)

// MockTick is a mock of users.Tick. It records the call in MockTick_ and delegates to its Func.
func MockTick() {
	_jg.InvokeVoid(MockTick_, func(f func()) {
		f()
	})
}
`

	code := generateValid(t, find(t, "users.Tick"), generate.Options{PkgName: "users_test"})
	if code != expected {
		t.Errorf("unexpected code:\n%s", textdiff.Unified("expected", "generated", expected, code))
	}
}

func TestCode_Proxy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code := generateValid(t, find(t, "users.Save"), generate.Options{PkgName: "deps", Proxy: true})

	g.Expect(code).To(ContainSubstring(`	SaveProxy = _jg.NewProxy[func(users.ID) error]("func Save(users.ID) error")`))
	g.Expect(code).To(ContainSubstring("func Save(p1 users.ID) (r1 error) {"))
	g.Expect(code).To(ContainSubstring("subject, ok := SaveProxy.Subject()"))
	g.Expect(code).To(ContainSubstring("return subject(p1)"))
}

func TestCode_Reference(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code := generateValid(t, find(t, "users.Find"), generate.Options{
		PkgName:   "consumer_test",
		Reference: "example.com/app/mockdeps",
	})

	g.Expect(code).To(ContainSubstring(`_ref "example.com/app/mockdeps"`))
	g.Expect(code).To(MatchRegexp(`\tMockFind  func\(users\.ID\) \(string, error\) += _ref\.MockFind\n`))
	g.Expect(code).To(ContainSubstring("\tMockFind_ *_jg.Info[func(users.ID) (string, error), MockFindResults] = _ref.MockFind_\n"))
	g.Expect(code).To(ContainSubstring("type MockFindArgs = _ref.MockFindArgs"))
	g.Expect(code).To(ContainSubstring("return _ref.MockFindLastArgs()"))
	g.Expect(code).To(ContainSubstring("type MockFindResults = _ref.MockFindResults"))
}

func TestCode_NameAndSuffix(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	symbol := find(t, "users.UserNames")

	g.Expect(generate.MockName(symbol, generate.Options{})).To(Equal("UserNamesMock"))
	g.Expect(generate.MockName(symbol, generate.Options{Suffix: "V2"})).To(Equal("UserNamesMockV2"))
	g.Expect(generate.MockName(symbol, generate.Options{Name: "Names", Suffix: "V2"})).To(Equal("NamesV2"))
	g.Expect(generate.MockName(find(t, "users.Save"), generate.Options{Proxy: true})).To(Equal("Save"))
	g.Expect(generate.MockName(find(t, "users.Save"), generate.Options{})).To(Equal("MockSave"))

	code := generateValid(t, symbol, generate.Options{PkgName: "users_test", Suffix: "V2"})
	g.Expect(code).To(ContainSubstring("func NewUserNamesMockV2(t _jg.TestReporter) *UserNamesMockV2 {"))
	g.Expect(code).To(ContainSubstring("type UserNamesMockV2FindByIDArgs struct {"))
}

func TestCode_TenParameterFunctionType(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code := generateValid(t, find(t, "users.Wide"), generate.Options{PkgName: "users_test"})

	g.Expect(code).To(ContainSubstring("func MockWide(p1 int, p2 int, p3 int, p4 int, p5 int, p6 int, p7 int, p8 int, p9 int, p10 int) (bool, error) {"))
	g.Expect(code).To(ContainSubstring("_jg.Param[int](MockWide_, 10)"))
}

func TestCode_RejectsInterfaceForFunctionModes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	symbol := find(t, "users.UserNames")

	_, err := generate.Code(symbol, generate.Options{PkgName: "x", Reference: "example.com/app/mockdeps"})
	g.Expect(err).To(MatchError(generate.ErrReferenceNeedsFunction))

	_, err = generate.Code(symbol, generate.Options{PkgName: "x", Proxy: true})
	g.Expect(err).To(MatchError(generate.ErrProxyNeedsFunction))
}

func TestCode_AnySignatureParses(t *testing.T) {
	t.Parallel()

	types := []string{"int", "string", "error", "[]byte", "map[string]int", "*bool", "chan int", "func()"}

	rapid.Check(t, func(rt *rapid.T) {
		params := rapid.SliceOfN(rapid.SampledFrom(types), 0, 10).Draw(rt, "params")
		results := rapid.SliceOfN(rapid.SampledFrom(types), 0, 3).Draw(rt, "results")
		variadic := len(params) > 0 && rapid.Bool().Draw(rt, "variadic")

		source := "package gen\n\nfunc Target(" + paramList(params, variadic) + ") (" + strings.Join(results, ", ") + ") {\n\tpanic(0)\n}\n"

		file, err := decorator.Parse(source)
		if err != nil {
			rt.Fatalf("fixture does not parse: %v\n%s", err, source)
		}

		symbol := detect.Symbol{
			Kind:    detect.SymbolFunction,
			Name:    "Target",
			PkgPath: ".",
			Func:    file.Decls[0].(*dst.FuncDecl).Type,
		}

		code, err := generate.Code(symbol, generate.Options{PkgName: "gen"})
		if err != nil {
			rt.Fatalf("generate.Code: %v", err)
		}

		_, err = parser.ParseFile(token.NewFileSet(), "generated.go", code, parser.AllErrors)
		if err != nil {
			rt.Fatalf("generated code does not parse: %v\n%s", err, code)
		}

		if len(params) > 0 && !strings.Contains(code, "P"+strconv.Itoa(len(params))+" ") {
			rt.Fatalf("missing args field P%d:\n%s", len(params), code)
		}
	})
}

func paramList(params []string, variadic bool) string {
	decls := make([]string, len(params))

	for i, param := range params {
		decls[i] = "a" + strconv.Itoa(i) + " " + param
		if variadic && i == len(params)-1 {
			decls[i] = "a" + strconv.Itoa(i) + " ..." + param
		}
	}

	return strings.Join(decls, ", ")
}
