package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typedtuple/compiler/gen"
	"github.com/syssam/typedtuple/compiler/load"
)

const decl = `max_arity: 3
target: ./tuple
package: example.com/app/tuple
records:
  items:
    - name: contact
      fields:
        - type: string
        - type: rune
        - type: int
`

func writeDecl(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuplegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("file with overrides", func(t *testing.T) {
		path := writeDecl(t, decl)
		cfg, err := LoadConfig(path, gen.WithMaxArity(5))
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.MaxArity)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "tuple"), cfg.Target)
		assert.Equal(t, "example.com/app/tuple", cfg.Package)
		assert.Len(t, cfg.Records, 1)
		assert.True(t, cfg.Protocol)
	})

	t.Run("options only", func(t *testing.T) {
		cfg, err := LoadConfig("", gen.WithMaxArity(2), gen.WithTarget("out"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MaxArity)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := LoadConfig("", gen.WithMaxArity(0))
		assert.ErrorIs(t, err, gen.ErrMissingConfig)
	})
}

func TestGenerateAndCheck(t *testing.T) {
	ctx := context.Background()
	path := writeDecl(t, decl)
	target := filepath.Join(filepath.Dir(path), "tuple")

	require.ErrorIs(t, Check(ctx, path), gen.ErrDrift)

	metrics, err := Generate(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 7, metrics.FilesGenerated)
	assert.FileExists(t, filepath.Join(target, gen.RecordsFile))
	assert.FileExists(t, filepath.Join(target, gen.ManifestFile))

	assert.NoError(t, Check(ctx, path))
	assert.ErrorIs(t, Check(ctx, path, gen.WithMaxArity(4)), gen.ErrDrift)
}

func TestPlan(t *testing.T) {
	plan, records, err := Plan(writeDecl(t, decl))
	require.NoError(t, err)
	assert.Equal(t, 6, plan.Count())
	require.Len(t, records, 1)
	assert.Len(t, records[0].Accessors, 3)

	_, _, err = Plan(writeDecl(t, decl), gen.WithMaxArity(2))
	assert.ErrorIs(t, err, gen.ErrOutOfRange)
}

func TestCheckedInOutputIsCurrent(t *testing.T) {
	err := Check(context.Background(), filepath.Join("..", load.DefaultFile))
	var drift *gen.DriftError
	if errors.As(err, &drift) {
		t.Fatalf("run go generate ./tuple: %v", drift)
	}
	require.NoError(t, err)
}

func TestCheckedInManifest(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", load.DefaultFile))
	require.NoError(t, err)
	g, err := gen.NewJenniferGenerator(cfg)
	require.NoError(t, err)
	files, err := g.Files(context.Background())
	require.NoError(t, err)
	want, err := gen.NewManifest(cfg, files)
	require.NoError(t, err)

	got, err := gen.ReadManifest(cfg.Target)
	require.NoError(t, err)
	assert.Equal(t, want, got, "commit tuple/%s after go generate", gen.ManifestFile)
}
