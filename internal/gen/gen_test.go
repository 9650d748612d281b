package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declaredFuncs(t *testing.T, src []byte) map[string]*ast.FuncDecl {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "query_generated.go", src, 0)
	require.NoError(t, err)
	funcs := make(map[string]*ast.FuncDecl)
	for _, d := range file.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv != nil {
			continue
		}
		funcs[fd.Name.Name] = fd
	}
	return funcs
}

// unusedImports returns the imports of src that no selector refers to.
func unusedImports(t *testing.T, src []byte) []string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "query_generated.go", src, 0)
	require.NoError(t, err)
	used := make(map[string]bool)
	ast.Inspect(file, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				used[id.Name] = true
			}
		}
		return true
	})
	var unused []string
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		name := path[strings.LastIndex(path, "/")+1:]
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if !used[name] {
			unused = append(unused, path)
		}
	}
	return unused
}

func TestGenerateDefault(t *testing.T) {
	src, err := Generate(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(src), "const MaxArity = 12")
	assert.Contains(t, string(src), "package ecsbind")

	funcs := declaredFuncs(t, src)
	for n := 2; n <= 12; n++ {
		ctor, ok := funcs[fmt.Sprintf("NewQuery%d", n)]
		require.Truef(t, ok, "NewQuery%d missing", n)
		assert.Len(t, ctor.Type.TypeParams.List, n)

		terms, ok := funcs[fmt.Sprintf("Terms%d", n)]
		require.Truef(t, ok, "Terms%d missing", n)
		assert.Len(t, terms.Type.TypeParams.List, n)
	}
	assert.NotContains(t, funcs, "NewQuery13")
	// Arity 1 is hand-written.
	assert.NotContains(t, funcs, "NewQuery1")
}

func TestGenerateSlotOrder(t *testing.T) {
	src, err := Generate(Config{Output: "x.go", Package: "ecsbind", MaxArity: 4})
	require.NoError(t, err)
	funcs := declaredFuncs(t, src)

	body := funcs["Terms4"].Body.List[0].(*ast.ReturnStmt).Results[0].(*ast.CompositeLit)
	require.Len(t, body.Elts, 4)
	for i, elt := range body.Elts {
		call := elt.(*ast.CallExpr)
		idx := call.Fun.(*ast.IndexExpr)
		assert.Equal(t, fmt.Sprintf("T%d", i+1), idx.Index.(*ast.Ident).Name)
		assert.Equal(t, fmt.Sprint(i), call.Args[1].(*ast.BasicLit).Value)
	}
	assert.NotContains(t, funcs, "NewQuery5")
}

func TestGenerateCustomPackage(t *testing.T) {
	src, err := Generate(Config{Output: "x.go", Package: "flecs", MaxArity: 2})
	require.NoError(t, err)
	assert.Contains(t, string(src), "package flecs")
	assert.Contains(t, string(src), "const MaxArity = 2")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"single", Config{Output: "x.go", Package: "p", MaxArity: 1}, true},
		{"limit", Config{Output: "x.go", Package: "p", MaxArity: Limit}, true},
		{"zero", Config{Output: "x.go", Package: "p", MaxArity: 0}, false},
		{"over limit", Config{Output: "x.go", Package: "p", MaxArity: Limit + 1}, false},
		{"no package", Config{Output: "x.go", MaxArity: 3}, false},
		{"no output", Config{Package: "p", MaxArity: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	_, err := Generate(Config{Output: "x.go", Package: "p", MaxArity: 0})
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ECSBIND_MAX_ARITY", "5")
	t.Setenv("ECSBIND_PACKAGE", "bridge")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxArity)
	assert.Equal(t, "bridge", cfg.Package)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)
}

func TestGenerateHasNoUnusedImports(t *testing.T) {
	for _, n := range []int{1, 2, 4, 12, Limit} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			src, err := Generate(Config{Output: "x.go", Package: "ecsbind", MaxArity: n})
			require.NoError(t, err)
			assert.Empty(t, unusedImports(t, src))
		})
	}
}

func TestGenerateSingleArity(t *testing.T) {
	src, err := Generate(Config{Output: "x.go", Package: "ecsbind", MaxArity: 1})
	require.NoError(t, err)
	assert.Contains(t, string(src), "const MaxArity = 1")
	assert.NotContains(t, string(src), "import")
	assert.Empty(t, declaredFuncs(t, src))
}
