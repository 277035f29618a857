package gen

import (
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/syssam/typedtuple/compiler/load"
)

// DefaultHeader is the header comment written at the top of generated files.
const DefaultHeader = "Code generated by tuplegen. DO NOT EDIT."

// Config holds the generation settings.
type Config struct {
	// MaxArity is the largest tuple arity to generate (N).
	MaxArity int
	// Target is the output directory of the tuple package.
	Target string
	// Package is the import path of the tuple package.
	Package string
	// Header is the comment placed at the top of every generated file.
	Header string
	// Protocol enables rendering protocol.go next to the tuple types.
	Protocol bool
	// Records are named tuple declarations.
	Records []*load.Record
	// RecordsTarget and RecordsPackage place the records file in another
	// package. Empty values write records into the tuple package.
	RecordsTarget  string
	RecordsPackage string
	// Workers limits concurrent file rendering. Zero means GOMAXPROCS.
	Workers int
	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// OutputConfig groups the settings that decide where files go.
type OutputConfig struct {
	Target         string
	Package        string
	Header         string
	RecordsTarget  string
	RecordsPackage string
}

// Output returns the grouped output settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:         c.Target,
		Package:        c.Package,
		Header:         c.Header,
		RecordsTarget:  c.RecordsTarget,
		RecordsPackage: c.RecordsPackage,
	}
}

// PackageName returns the Go package name of the tuple package.
func (c *Config) PackageName() string {
	if c.Package != "" {
		return filepath.Base(c.Package)
	}
	if c.Target != "" {
		return filepath.Base(c.Target)
	}
	return "tuple"
}

// SeparateRecords reports whether records are written outside the tuple package.
func (c *Config) SeparateRecords() bool {
	return c.RecordsTarget != "" && c.RecordsPackage != "" && c.RecordsPackage != c.Package
}

func (c *Config) header() string {
	if c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// validate checks the settings needed before any file is produced.
func (c *Config) validate() error {
	if c.MaxArity < 1 {
		return NewConfigError("MaxArity", c.MaxArity, "maximum arity must be at least 1")
	}
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if (c.RecordsTarget == "") != (c.RecordsPackage == "") {
		return NewConfigError("Records", nil, "records target and package must be set together")
	}
	if c.SeparateRecords() && c.Package == "" {
		return NewConfigError("Package", nil, "tuple package import path is required when records live in another package")
	}
	return nil
}
