package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typedtuple/compiler/gen"
	"github.com/syssam/typedtuple/compiler/load"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestFlagsOptions(t *testing.T) {
	f := &flags{maxArity: 4, target: "out", pkg: "example.com/tuple", workers: 2}
	cfg, err := gen.NewConfig(f.options(discard())...)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxArity)
	assert.Equal(t, "out", cfg.Target)
	assert.Equal(t, "example.com/tuple", cfg.Package)
	assert.Equal(t, 2, cfg.Workers)
	assert.NotNil(t, cfg.Logger)

	cfg, err = gen.NewConfig((&flags{}).options(discard())...)
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxArity)
}

func TestFlagsConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())

	f := &flags{config: load.DefaultFile}
	assert.Empty(t, f.configPath(), "missing default file is skipped")

	require.NoError(t, os.WriteFile(load.DefaultFile, []byte("max_arity: 2\n"), 0o644))
	assert.Equal(t, load.DefaultFile, f.configPath())

	f.config = filepath.Join("some", "other.yaml")
	assert.Equal(t, f.config, f.configPath())
}

func TestRunPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`max_arity: 3
target: out
records:
  items:
    - name: pair
      fields:
        - type: int
        - type: int
        - type: string
`), 0o644))

	var buf bytes.Buffer
	require.NoError(t, runPlan(&buf, &flags{config: path}, discard()))
	out := buf.String()

	assert.Contains(t, out, "max arity 3: 3 markers, 6 accessors")
	assert.Contains(t, out, "Tuple3At1")
	assert.Contains(t, out, "Tuple2[T0, T2]")
	assert.Contains(t, out, "record Pair (arity 3)")
	assert.Contains(t, out, "ByString")
	assert.Contains(t, out, "no accessor")

	err := runPlan(&buf, &flags{config: path, maxArity: 2}, discard())
	assert.ErrorIs(t, err, gen.ErrOutOfRange)
}

func TestRunWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_arity: 2\ntarget: out\n"), 0o644))
	out := filepath.Join(dir, "out")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, &flags{config: path}, discard()) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, gen.TupleFile(2)))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "initial generation")
	assert.NoFileExists(t, filepath.Join(out, gen.TupleFile(3)))

	// Other files in the directory do not trigger generation.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("max_arity: 5\n"), 0o644))

	require.NoError(t, os.WriteFile(path, []byte("max_arity: 3\ntarget: out\n"), 0o644))
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, gen.TupleFile(3)))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "regeneration after change")
	assert.NoFileExists(t, filepath.Join(out, gen.TupleFile(4)))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestRunWatchNeedsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	err := runWatch(context.Background(), &flags{config: load.DefaultFile}, discard())
	assert.Error(t, err)
}
