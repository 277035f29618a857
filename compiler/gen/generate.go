package gen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// Output file names.
const (
	IndexFile   = "index.go"
	RecordsFile = "records.go"
)

// TupleFile returns the file name holding the tuple of arity s.
func TupleFile(s int) string { return "tuple" + strconv.Itoa(s) + ".go" }

// File is one rendered output file.
type File struct {
	Dir     string
	Name    string
	Content []byte
}

// Path returns the full path of the file.
func (f *File) Path() string { return filepath.Join(f.Dir, f.Name) }

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	FilesRemoved   int
	TotalBytes     int64
}

// JenniferGenerator renders the tuple package with jennifer.
//
// Generation is a pure function of the configuration: markers are emitted
// once, every arity is rendered independently and in parallel, and the
// resulting file set does not depend on scheduling.
type JenniferGenerator struct {
	cfg     *Config
	plan    *Plan
	records []*Record
	workers int
	log     *slog.Logger

	mu      sync.Mutex
	metrics *WriterMetrics
}

// NewJenniferGenerator validates the config and derives the artifact plan.
func NewJenniferGenerator(c *Config) (*JenniferGenerator, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	plan, err := NewPlan(c.MaxArity)
	if err != nil {
		return nil, err
	}
	recs, err := resolveRecords(c, plan)
	if err != nil {
		return nil, err
	}
	g := &JenniferGenerator{
		cfg:     c,
		plan:    plan,
		records: recs,
		workers: c.workers(),
		log:     c.logger(),
		metrics: &WriterMetrics{},
	}
	for _, r := range recs {
		for _, typ := range r.Ambiguous {
			g.log.Debug("no by-type accessor for shared element type", "record", r.Name, "type", typ)
		}
	}
	return g, nil
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Plan returns the artifact plan.
func (g *JenniferGenerator) Plan() *Plan { return g.plan }

// Records returns the resolved records.
func (g *JenniferGenerator) Records() []*Record { return g.records }

// Metrics returns the generation metrics.
func (g *JenniferGenerator) Metrics() *WriterMetrics { return g.metrics }

// task renders one output file.
type task struct {
	phase string
	name  string
	build func() (*File, error)
}

// tasks lists every output file. Each arity is its own task.
func (g *JenniferGenerator) tasks() []task {
	c := g.cfg
	ts := []task{{
		phase: "index", name: IndexFile,
		build: g.jenTask(c.Target, IndexFile, c.Package, c.PackageName(), func(f *jen.File) {
			genIndex(f, g.plan.Markers)
		}),
	}, {
		phase: "tuple", name: TupleFile(0),
		build: g.jenTask(c.Target, TupleFile(0), c.Package, c.PackageName(), genEmpty),
	}}
	for s := 1; s <= g.plan.MaxArity; s++ {
		ts = append(ts, task{
			phase: "tuple", name: TupleFile(s),
			build: g.jenTask(c.Target, TupleFile(s), c.Package, c.PackageName(), func(f *jen.File) {
				genArity(f, g.plan, s)
			}),
		})
	}
	if c.Protocol {
		ts = append(ts, task{
			phase: "protocol", name: ProtocolFile,
			build: func() (*File, error) {
				return NewTemplateWriter(c.Target).Protocol(c.header(), c.PackageName())
			},
		})
	}
	if len(g.records) > 0 {
		dir, pkg, name, r := c.Target, c.Package, c.PackageName(), ref(localRef)
		if c.SeparateRecords() {
			dir, pkg, name, r = c.RecordsTarget, c.RecordsPackage, filepath.Base(c.RecordsPackage), qualRef(c.Package)
		}
		ts = append(ts, task{
			phase: "records", name: RecordsFile,
			build: g.jenTask(dir, RecordsFile, pkg, name, func(f *jen.File) {
				if c.SeparateRecords() {
					f.ImportName(c.Package, c.PackageName())
				}
				genRecords(f, r, g.records)
			}),
		})
	}
	return ts
}

// jenTask wraps a jennifer emitter into a render function.
func (g *JenniferGenerator) jenTask(dir, file, pkgPath, pkgName string, emit func(*jen.File)) func() (*File, error) {
	return func() (*File, error) {
		var f *jen.File
		if pkgPath != "" {
			f = jen.NewFilePathName(pkgPath, pkgName)
		} else {
			f = jen.NewFile(pkgName)
		}
		for _, line := range strings.Split(g.cfg.header(), "\n") {
			f.HeaderComment(line)
		}
		emit(f)
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return nil, err
		}
		return &File{Dir: dir, Name: file, Content: buf.Bytes()}, nil
	}
}

// Files renders every output file in memory, ordered by path.
func (g *JenniferGenerator) Files(ctx context.Context) ([]*File, error) {
	ts := g.tasks()
	files := make([]*File, len(ts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, t := range ts {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			f, err := t.build()
			if err != nil {
				if IsGenerationError(err) {
					return err
				}
				return NewGenerationError(t.phase, t.name, "render", err)
			}
			files[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files, nil
}

// Generate renders and writes every file, removes files that an earlier
// run produced and this one no longer does, and updates the manifest.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	files, err := g.Files(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return NewGenerationError("write", g.cfg.Target, "create output directory", err)
	}
	prev, err := ReadManifest(g.cfg.Target)
	if err != nil {
		g.log.Warn("ignoring unreadable manifest", "dir", g.cfg.Target, "err", err)
		prev = &Manifest{Files: map[string]string{}}
	}
	for _, f := range files {
		if err := g.writeFile(f); err != nil {
			return err
		}
	}
	next, err := NewManifest(g.cfg, files)
	if err != nil {
		return NewGenerationError("manifest", ManifestFile, "build manifest", err)
	}
	for _, rel := range prev.Stale(next) {
		path := filepath.Join(g.cfg.Target, filepath.FromSlash(rel))
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if !prev.Unchanged(g.cfg.Target, rel) {
			g.log.Warn("keeping stale file edited since generation", "file", rel)
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return NewGenerationError("cleanup", rel, "remove stale file", err)
		}
		g.mu.Lock()
		g.metrics.FilesRemoved++
		g.mu.Unlock()
		g.log.Debug("removed stale file", "file", rel)
	}
	if err := next.Write(g.cfg.Target); err != nil {
		return NewGenerationError("manifest", ManifestFile, "write manifest", err)
	}
	g.log.Info("generated tuples",
		"max_arity", g.plan.MaxArity,
		"artifacts", g.plan.Count(),
		"records", len(g.records),
		"files", g.metrics.FilesGenerated)
	return nil
}

// Check renders every file and compares it with disk. It returns a
// *DriftError listing changed, missing and stale files.
func (g *JenniferGenerator) Check(ctx context.Context) error {
	files, err := g.Files(ctx)
	if err != nil {
		return err
	}
	drift := &DriftError{}
	for _, f := range files {
		got, err := os.ReadFile(f.Path())
		switch {
		case errors.Is(err, os.ErrNotExist):
			drift.Missing = append(drift.Missing, f.Path())
		case err != nil:
			return NewGenerationError("check", f.Name, "read", err)
		case !bytes.Equal(got, f.Content):
			drift.Changed = append(drift.Changed, f.Path())
		}
	}
	prev, err := ReadManifest(g.cfg.Target)
	if err != nil {
		return NewGenerationError("check", ManifestFile, "read manifest", err)
	}
	next, err := NewManifest(g.cfg, files)
	if err != nil {
		return NewGenerationError("check", ManifestFile, "build manifest", err)
	}
	for _, rel := range prev.Stale(next) {
		path := filepath.Join(g.cfg.Target, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			drift.Stale = append(drift.Stale, path)
		}
	}
	if len(drift.Changed)+len(drift.Missing)+len(drift.Stale) > 0 {
		return drift
	}
	return nil
}

// writeFile writes a rendered file to disk.
func (g *JenniferGenerator) writeFile(f *File) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return NewGenerationError("write", f.Name, "create directory", err)
	}
	if err := os.WriteFile(f.Path(), f.Content, 0o644); err != nil {
		return NewGenerationError("write", f.Name, "write file", err)
	}
	g.mu.Lock()
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(f.Content))
	g.mu.Unlock()
	g.log.Debug("wrote file", "path", f.Path(), "bytes", len(f.Content))
	return nil
}

// Generate is a convenience function that builds a JenniferGenerator from
// the config and writes its output.
func Generate(ctx context.Context, c *Config) (*WriterMetrics, error) {
	g, err := NewJenniferGenerator(c)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(ctx); err != nil {
		return nil, err
	}
	return g.Metrics(), nil
}
