package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typedtuple/compiler/load"
)

func testConfig(t *testing.T, n int, opts ...Option) *Config {
	t.Helper()
	base := []Option{
		WithMaxArity(n),
		WithTarget(t.TempDir()),
		WithPackage("example.com/tuple"),
		WithWorkers(2),
	}
	c, err := NewConfig(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func fileNames(files []*File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func fileContent(t *testing.T, files []*File, name string) string {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return string(f.Content)
		}
	}
	t.Fatalf("file %s not rendered", name)
	return ""
}

func TestNewJenniferGenerator(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewJenniferGenerator(nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewJenniferGenerator(&Config{Target: "out"})
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid record", func(t *testing.T) {
		c := testConfig(t, 2, WithRecords(&load.Record{Name: "wide", Fields: fields("int", "int", "int")}))
		_, err := NewJenniferGenerator(c)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("exposes plan and records", func(t *testing.T) {
		c := testConfig(t, 3, WithRecords(&load.Record{Name: "pair", Fields: fields("int", "string")}))
		g, err := NewJenniferGenerator(c)
		require.NoError(t, err)
		assert.Equal(t, 6, g.Plan().Count())
		require.Len(t, g.Records(), 1)
		assert.Equal(t, "Pair", g.Records()[0].Name)
		assert.Same(t, g, g.WithWorkers(4))
	})
}

func TestFiles(t *testing.T) {
	c := testConfig(t, 3)
	g, err := NewJenniferGenerator(c)
	require.NoError(t, err)

	files, err := g.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"index.go", "protocol.go", "tuple0.go", "tuple1.go", "tuple2.go", "tuple3.go"}, fileNames(files))

	for _, f := range files {
		assert.Equal(t, c.Target, f.Dir)
		assert.Contains(t, string(f.Content), "// Code generated by tuplegen. DO NOT EDIT.", f.Name)
		assert.Contains(t, string(f.Content), "package tuple", f.Name)
	}

	t.Run("index", func(t *testing.T) {
		out := fileContent(t, files, IndexFile)
		assert.Contains(t, out, "type Index0 struct{}")
		assert.Contains(t, out, "type Index2 struct{}")
		assert.NotContains(t, out, "Index3")
		assert.Contains(t, out, "Index0 | Index1 | Index2")
	})

	t.Run("empty tuple", func(t *testing.T) {
		out := fileContent(t, files, TupleFile(0))
		assert.Contains(t, out, "type Tuple0 struct{}")
		assert.Contains(t, out, "func (Tuple0) Len() int {")
	})

	t.Run("tuple of arity three", func(t *testing.T) {
		out := fileContent(t, files, TupleFile(3))
		for _, want := range []string{
			"type Tuple3[T0, T1, T2 any] struct {",
			"func New3[T0, T1, T2 any](v0 T0, v1 T1, v2 T2) Tuple3[T0, T1, T2] {",
			"type Tuple3At1[T0, T1, T2 any] struct {",
			"func (t *Tuple3[T0, T1, T2]) At1() Tuple3At1[T0, T1, T2] {",
			"func (Tuple3At1[T0, T1, T2]) Marker() Index1 {",
			"func (a Tuple3At1[T0, T1, T2]) Ptr() *T1 {",
			"func (a Tuple3At1[T0, T1, T2]) Map(fn func(T1) T1) {",
			"func (a Tuple3At1[T0, T1, T2]) Pop() (T1, Tuple2[T0, T2]) {",
			"func (a Tuple3At1[T0, T1, T2]) SplitAt() (Tuple2[T0, T1], Tuple1[T2]) {",
			"func (a Tuple3At2[T0, T1, T2]) SplitAt() (Tuple3[T0, T1, T2], Tuple0) {",
			"func (a Tuple3At0[T0, T1, T2]) Pop() (T0, Tuple2[T1, T2]) {",
		} {
			assert.Contains(t, out, want)
		}
		assert.NotContains(t, out, "At3")
	})

	t.Run("protocol", func(t *testing.T) {
		out := fileContent(t, files, ProtocolFile)
		assert.Contains(t, out, "type Position[I Index, T, Rem, Left, Right any] interface {")
		assert.Contains(t, out, "SplitAt() (Left, Right)")
	})

	t.Run("protocol disabled", func(t *testing.T) {
		g, err := NewJenniferGenerator(testConfig(t, 2, WithProtocol(false)))
		require.NoError(t, err)
		files, err := g.Files(context.Background())
		require.NoError(t, err)
		assert.NotContains(t, fileNames(files), ProtocolFile)
	})

	t.Run("multi-line header", func(t *testing.T) {
		g, err := NewJenniferGenerator(testConfig(t, 1, WithHeader("Line one.\nLine two.")))
		require.NoError(t, err)
		files, err := g.Files(context.Background())
		require.NoError(t, err)
		for _, f := range files {
			assert.Contains(t, string(f.Content), "// Line one.\n// Line two.", f.Name)
		}
	})

	t.Run("output does not depend on workers", func(t *testing.T) {
		serial, err := NewJenniferGenerator(testConfig(t, 5, WithWorkers(1)))
		require.NoError(t, err)
		parallel, err := NewJenniferGenerator(testConfig(t, 5, WithWorkers(8)))
		require.NoError(t, err)

		a, err := serial.Files(context.Background())
		require.NoError(t, err)
		b, err := parallel.Files(context.Background())
		require.NoError(t, err)
		require.Equal(t, len(a), len(b))
		for i := range a {
			assert.Equal(t, a[i].Name, b[i].Name)
			assert.Equal(t, a[i].Content, b[i].Content, a[i].Name)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := g.Files(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFilesRecords(t *testing.T) {
	contact := &load.Record{Name: "contact", Fields: fields("string", "rune", "int")}

	t.Run("in the tuple package", func(t *testing.T) {
		g, err := NewJenniferGenerator(testConfig(t, 3, WithRecords(contact)))
		require.NoError(t, err)
		files, err := g.Files(context.Background())
		require.NoError(t, err)

		out := fileContent(t, files, RecordsFile)
		assert.Contains(t, out, "package tuple")
		assert.Contains(t, out, "func (r *Contact) ByString() Tuple3At0[string, rune, int] {")
	})

	t.Run("in a separate package", func(t *testing.T) {
		dir := t.TempDir()
		g, err := NewJenniferGenerator(testConfig(t, 3,
			WithRecords(contact),
			WithRecordsOutput(dir, "example.com/contacts")))
		require.NoError(t, err)
		files, err := g.Files(context.Background())
		require.NoError(t, err)

		var rec *File
		for _, f := range files {
			if f.Name == RecordsFile {
				rec = f
			}
		}
		require.NotNil(t, rec)
		assert.Equal(t, dir, rec.Dir)
		out := string(rec.Content)
		assert.Contains(t, out, "package contacts")
		assert.Contains(t, out, "\"example.com/tuple\"")
		assert.NotContains(t, out, "tuple \"example.com/tuple\"", "tuple package is imported without an alias")
		assert.Contains(t, out, "tuple.Tuple3At0[string, rune, int]")
	})
}

func TestGenerate(t *testing.T) {
	t.Run("writes files and manifest", func(t *testing.T) {
		c := testConfig(t, 3)
		metrics, err := Generate(context.Background(), c)
		require.NoError(t, err)

		assert.Equal(t, 6, metrics.FilesGenerated)
		assert.Zero(t, metrics.FilesRemoved)
		assert.Positive(t, metrics.TotalBytes)
		for _, name := range []string{IndexFile, ProtocolFile, TupleFile(0), TupleFile(3)} {
			assert.FileExists(t, filepath.Join(c.Target, name))
		}

		m, err := ReadManifest(c.Target)
		require.NoError(t, err)
		assert.Equal(t, 3, m.MaxArity)
		assert.Equal(t, "example.com/tuple", m.Package)
		assert.Len(t, m.Files, 6)
		assert.True(t, m.Unchanged(c.Target, TupleFile(2)))
	})

	t.Run("removes files a smaller arity no longer produces", func(t *testing.T) {
		c := testConfig(t, 4)
		_, err := Generate(context.Background(), c)
		require.NoError(t, err)

		c.MaxArity = 2
		metrics, err := Generate(context.Background(), c)
		require.NoError(t, err)

		assert.Equal(t, 2, metrics.FilesRemoved)
		assert.NoFileExists(t, filepath.Join(c.Target, TupleFile(3)))
		assert.NoFileExists(t, filepath.Join(c.Target, TupleFile(4)))
		assert.FileExists(t, filepath.Join(c.Target, TupleFile(2)))
	})

	t.Run("keeps stale files edited by hand", func(t *testing.T) {
		c := testConfig(t, 3)
		_, err := Generate(context.Background(), c)
		require.NoError(t, err)

		edited := filepath.Join(c.Target, TupleFile(3))
		require.NoError(t, os.WriteFile(edited, []byte("package tuple\n"), 0o644))

		c.MaxArity = 2
		metrics, err := Generate(context.Background(), c)
		require.NoError(t, err)
		assert.Zero(t, metrics.FilesRemoved)
		assert.FileExists(t, edited)
	})

	t.Run("corrupt manifest is replaced", func(t *testing.T) {
		c := testConfig(t, 1)
		require.NoError(t, os.MkdirAll(c.Target, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(c.Target, ManifestFile), []byte{0xc1}, 0o644))

		_, err := Generate(context.Background(), c)
		require.NoError(t, err)
		m, err := ReadManifest(c.Target)
		require.NoError(t, err)
		assert.Len(t, m.Files, 4)
	})
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("clean after generate", func(t *testing.T) {
		c := testConfig(t, 2)
		_, err := Generate(ctx, c)
		require.NoError(t, err)

		g, err := NewJenniferGenerator(c)
		require.NoError(t, err)
		assert.NoError(t, g.Check(ctx))
	})

	t.Run("reports changed missing and stale files", func(t *testing.T) {
		c := testConfig(t, 3)
		_, err := Generate(ctx, c)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(c.Target, TupleFile(1)), []byte("package tuple\n"), 0o644))
		require.NoError(t, os.Remove(filepath.Join(c.Target, TupleFile(2))))

		c.MaxArity = 2
		g, err := NewJenniferGenerator(c)
		require.NoError(t, err)
		err = g.Check(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDrift)

		var drift *DriftError
		require.ErrorAs(t, err, &drift)
		assert.Contains(t, drift.Changed, filepath.Join(c.Target, TupleFile(1)))
		assert.Contains(t, drift.Changed, filepath.Join(c.Target, IndexFile))
		assert.Equal(t, []string{filepath.Join(c.Target, TupleFile(2))}, drift.Missing)
		assert.Equal(t, []string{filepath.Join(c.Target, TupleFile(3))}, drift.Stale)
	})

	t.Run("nothing generated yet", func(t *testing.T) {
		g, err := NewJenniferGenerator(testConfig(t, 1))
		require.NoError(t, err)
		var drift *DriftError
		require.ErrorAs(t, g.Check(ctx), &drift)
		assert.Len(t, drift.Missing, 4)
		assert.Empty(t, drift.Stale)
	})
}
