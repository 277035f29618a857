package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/typedtuple/compiler/load"
)

// Option configures code generation.
type Option func(*Config) error

// WithMaxArity sets the largest tuple arity to generate.
func WithMaxArity(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("MaxArity", n, "maximum arity must be at least 1")
		}
		c.MaxArity = n
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the tuple package import path.
// For example: "github.com/org/project/tuple".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory of the tuple package.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithProtocol enables or disables rendering of protocol.go.
func WithProtocol(enabled bool) Option {
	return func(c *Config) error {
		c.Protocol = enabled
		return nil
	}
}

// WithRecords adds named tuple declarations.
func WithRecords(records ...*load.Record) Option {
	return func(c *Config) error {
		for _, r := range records {
			if r == nil {
				return NewConfigError("Records", nil, "record cannot be nil")
			}
		}
		c.Records = append(c.Records, records...)
		return nil
	}
}

// WithRecordsOutput writes records into a separate package that imports
// the tuple package.
func WithRecordsOutput(dir, pkg string) Option {
	return func(c *Config) error {
		if dir == "" || pkg == "" {
			return NewConfigError("RecordsOutput", nil, "records target and package cannot be empty")
		}
		c.RecordsTarget = dir
		c.RecordsPackage = pkg
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// FromFile converts a declaration file into options. Relative paths are
// resolved against the directory of the file.
func FromFile(f *load.File) []Option {
	var opts []Option
	if f.MaxArity > 0 {
		opts = append(opts, WithMaxArity(f.MaxArity))
	}
	if f.Target != "" {
		opts = append(opts, WithTarget(f.Resolve(f.Target)))
	}
	if f.Package != "" {
		opts = append(opts, WithPackage(f.Package))
	}
	if f.Header != "" {
		opts = append(opts, WithHeader(f.Header))
	}
	if f.Protocol != nil {
		opts = append(opts, WithProtocol(*f.Protocol))
	}
	if f.Workers > 0 {
		opts = append(opts, WithWorkers(f.Workers))
	}
	if items := f.RecordItems(); len(items) > 0 {
		opts = append(opts, WithRecords(items...))
	}
	if rs := f.Records; rs != nil && (rs.Target != "" || rs.Package != "") {
		opts = append(opts, WithRecordsOutput(f.Resolve(rs.Target), rs.Package))
	}
	return opts
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
// Protocol rendering is on unless an option turns it off.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Protocol: true}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
