// Package load reads tuplegen declaration files.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the declaration file name looked up by the CLI.
const DefaultFile = "tuplegen.yaml"

// File is a tuplegen declaration file.
type File struct {
	MaxArity int        `yaml:"max_arity"`
	Target   string     `yaml:"target,omitempty"`
	Package  string     `yaml:"package,omitempty"`
	Header   string     `yaml:"header,omitempty"`
	Protocol *bool      `yaml:"protocol,omitempty"`
	Workers  int        `yaml:"workers,omitempty"`
	Records  *RecordSet `yaml:"records,omitempty"`

	// Dir is the directory of the file; relative targets resolve against it.
	Dir string `yaml:"-"`
}

// RecordSet groups the named tuple declarations and where they are written.
// An empty Target writes records next to the tuple types.
type RecordSet struct {
	Target  string    `yaml:"target,omitempty"`
	Package string    `yaml:"package,omitempty"`
	Items   []*Record `yaml:"items"`
}

// Record declares a named tuple.
type Record struct {
	Name    string   `yaml:"name"`
	Comment string   `yaml:"comment,omitempty"`
	Strict  bool     `yaml:"strict,omitempty"`
	Fields  []*Field `yaml:"fields"`
}

// Field declares one element of a record. Type is a Go type expression;
// qualified types such as time.Time need Import. Name, when set, replaces
// the type-derived accessor name.
type Field struct {
	Type   string `yaml:"type"`
	Import string `yaml:"import,omitempty"`
	Name   string `yaml:"name,omitempty"`
}

// Load reads and parses the declaration file at path.
func Load(path string) (*File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", path, err)
	}
	f, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a declaration file. Unknown keys are rejected.
func Parse(buf []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty declaration file")
		}
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Marshal encodes the file back to YAML.
func (f *File) Marshal() ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// RecordItems returns the declared records, or nil.
func (f *File) RecordItems() []*Record {
	if f.Records == nil {
		return nil
	}
	return f.Records.Items
}

func (f *File) validate() error {
	if f.MaxArity < 0 {
		return fmt.Errorf("max_arity must not be negative, got %d", f.MaxArity)
	}
	for i, r := range f.RecordItems() {
		if r == nil {
			return fmt.Errorf("records.items[%d]: empty record", i)
		}
		if r.Name == "" {
			return fmt.Errorf("records.items[%d]: missing name", i)
		}
		if len(r.Fields) == 0 {
			return fmt.Errorf("record %q: no fields", r.Name)
		}
		for j, fd := range r.Fields {
			if fd == nil || fd.Type == "" {
				return fmt.Errorf("record %q: field %d: missing type", r.Name, j)
			}
		}
	}
	return nil
}

// Resolve joins a relative path with the directory of the file.
func (f *File) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || f.Dir == "" {
		return p
	}
	return filepath.Join(f.Dir, p)
}
