// Package compiler ties declaration loading to code generation. It is the
// entry point used by the tuplegen command and by go:generate directives.
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/typedtuple/compiler/gen"
	"github.com/syssam/typedtuple/compiler/load"
)

// LoadConfig reads the declaration file at path and applies opts on top of
// it. An empty path skips the file and builds the config from opts alone.
func LoadConfig(path string, opts ...gen.Option) (*gen.Config, error) {
	var base []gen.Option
	if path != "" {
		f, err := load.Load(path)
		if err != nil {
			return nil, err
		}
		base = gen.FromFile(f)
	}
	cfg, err := gen.NewConfig(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("tuplegen: %w", err)
	}
	return cfg, nil
}

// Generate loads the declaration file at path and writes the tuple package.
func Generate(ctx context.Context, path string, opts ...gen.Option) (*gen.WriterMetrics, error) {
	cfg, err := LoadConfig(path, opts...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, cfg)
}

// Check loads the declaration file at path and reports generated files that
// are out of date. It returns a *gen.DriftError on drift.
func Check(ctx context.Context, path string, opts ...gen.Option) error {
	cfg, err := LoadConfig(path, opts...)
	if err != nil {
		return err
	}
	g, err := gen.NewJenniferGenerator(cfg)
	if err != nil {
		return err
	}
	return g.Check(ctx)
}

// Plan loads the declaration file at path and returns the derived artifact
// plan and resolved records without writing anything.
func Plan(path string, opts ...gen.Option) (*gen.Plan, []*gen.Record, error) {
	cfg, err := LoadConfig(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	g, err := gen.NewJenniferGenerator(cfg)
	if err != nil {
		return nil, nil, err
	}
	return g.Plan(), g.Records(), nil
}
