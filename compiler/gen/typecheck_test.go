package gen

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typedtuple/compiler/load"
)

// distinct element types, so that any misplaced slot fails to type-check.
var elemTypes = []string{"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "string", "bool"}

// typeCheck renders the tuple package for c and type-checks it together
// with extra source files.
func typeCheck(t *testing.T, c *Config, extra ...string) error {
	t.Helper()
	g, err := NewJenniferGenerator(c)
	require.NoError(t, err)
	files, err := g.Files(context.Background())
	require.NoError(t, err)

	fset := token.NewFileSet()
	var parsed []*ast.File
	for _, f := range files {
		af, err := parser.ParseFile(fset, f.Name, f.Content, parser.ParseComments)
		require.NoError(t, err, "generated %s does not parse", f.Name)
		parsed = append(parsed, af)
	}
	for i, src := range extra {
		af, err := parser.ParseFile(fset, fmt.Sprintf("extra%d.go", i), "package tuple\n\n"+src, 0)
		require.NoError(t, err)
		parsed = append(parsed, af)
	}

	var errs []error
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(err error) { errs = append(errs, err) },
	}
	_, _ = conf.Check(c.Package, fset, parsed, nil)
	return errors.Join(errs...)
}

// instance renders a shape over concrete element types.
func instance(s Shape, elems []string) string {
	if len(s) == 0 {
		return TupleName(0)
	}
	args := make([]string, len(s))
	for i, p := range s {
		args[i] = elems[p]
	}
	return s.TypeName() + "[" + strings.Join(args, ", ") + "]"
}

func TestGeneratedPackageTypeChecks(t *testing.T) {
	const n = 6
	c := testConfig(t, n)
	plan, err := NewPlan(n)
	require.NoError(t, err)

	var b strings.Builder
	for _, a := range plan.All() {
		elems := elemTypes[:a.Arity]
		acc := a.Name() + "[" + strings.Join(elems, ", ") + "]"
		fmt.Fprintf(&b, "var _ Position[%s, %s, %s, %s, %s] = %s{}\n",
			a.Marker.Name(), elems[a.Position],
			instance(a.Remainder, elems), instance(a.Left, elems), instance(a.Right, elems), acc)
		fmt.Fprintf(&b, "var _ %s = (&%s{}).%s()\n", acc, instance(fullShape(a.Arity), elems), a.Method())
	}
	assert.NoError(t, typeCheck(t, c, b.String()))
}

func TestGeneratedPackageRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "position beyond arity",
			src:  "func f(t Tuple2[int, string]) { _ = t.At2() }",
			want: "At2 undefined",
		},
		{
			name: "arity beyond maximum",
			src:  "var _ Tuple4[int, int, int, int]",
			want: "undefined: Tuple4",
		},
		{
			name: "marker beyond maximum",
			src:  "var _ Index3",
			want: "undefined: Index3",
		},
		{
			name: "wrong marker",
			src:  "var _ Position[Index0, int, Tuple1[string], Tuple2[string, int], Tuple0] = Tuple2At1[string, int]{}",
			want: "does not implement",
		},
		{
			name: "remainder out of order",
			src:  "var _ Position[Index1, bool, Tuple2[string, int], Tuple2[int, bool], Tuple1[string]] = Tuple3At1[int, bool, string]{}",
			want: "does not implement",
		},
		{
			name: "marker outside the index set",
			src:  "var _ Position[int, int, Tuple0, Tuple1[int], Tuple0]",
			want: "does not satisfy Index",
		},
		{
			name: "set with the wrong element type",
			src:  "func f(t *Tuple2[int, string]) { t.At0().Set(\"x\") }",
			want: "cannot use",
		},
	}
	c := testConfig(t, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typeCheck(t, c, tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGeneratedRecordsTypeCheck(t *testing.T) {
	c := testConfig(t, 3, WithRecords(
		&load.Record{Name: "contact", Fields: fields("string", "rune", "int")},
		&load.Record{Name: "pair", Fields: fields("int", "int")},
	))

	t.Run("by-type accessors", func(t *testing.T) {
		src := `
func f(c *Contact) {
	var s string = c.ByString().Get()
	var r rune = c.ByRune().Get()
	c.ByInt().Set(3)
	_, rest := c.ByRune().Pop()
	var _ Tuple2[string, int] = rest
	_, _ = s, r
}

var _ Contact = NewContact("a", 'b', 1)
var _ Pair = NewPair(1, 2)
`
		assert.NoError(t, typeCheck(t, c, src))
	})

	t.Run("ambiguous type has no accessor", func(t *testing.T) {
		err := typeCheck(t, c, "func f(p *Pair) { _ = p.ByInt() }")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ByInt undefined")
	})

	t.Run("positions stay available", func(t *testing.T) {
		assert.NoError(t, typeCheck(t, c, "func f(p *Pair) int { return p.At0().Get() + p.At1().Get() }"))
	})
}
