package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// ManifestFile is written to the target directory after every run.
const ManifestFile = ".tuplegen.msgpack"

const manifestVersion = 1

// Manifest records what the last run produced. Paths are relative to the
// tuple target directory.
type Manifest struct {
	Version  int               `msgpack:"version"`
	MaxArity int               `msgpack:"max_arity"`
	Package  string            `msgpack:"package"`
	Files    map[string]string `msgpack:"files"` // path -> sha256
}

// NewManifest builds the manifest of a set of rendered files.
func NewManifest(c *Config, files []*File) (*Manifest, error) {
	m := &Manifest{
		Version:  manifestVersion,
		MaxArity: c.MaxArity,
		Package:  c.Package,
		Files:    make(map[string]string, len(files)),
	}
	for _, f := range files {
		rel, err := filepath.Rel(c.Target, f.Path())
		if err != nil {
			return nil, err
		}
		m.Files[filepath.ToSlash(rel)] = digest(f.Content)
	}
	return m, nil
}

// ReadManifest reads the manifest from dir. A missing manifest yields an
// empty one.
func ReadManifest(dir string) (*Manifest, error) {
	buf, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{Version: manifestVersion, Files: map[string]string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := msgpack.Unmarshal(buf, m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ManifestFile, err)
	}
	if m.Version != manifestVersion {
		return nil, fmt.Errorf("decode %s: unsupported version %d", ManifestFile, m.Version)
	}
	if m.Files == nil {
		m.Files = map[string]string{}
	}
	return m, nil
}

// Write stores the manifest in dir.
func (m *Manifest) Write(dir string) error {
	buf, err := msgpack.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), buf, 0o644)
}

// Stale returns the paths recorded in m that next does not contain.
func (m *Manifest) Stale(next *Manifest) []string {
	var stale []string
	for p := range m.Files {
		if _, ok := next.Files[p]; !ok {
			stale = append(stale, p)
		}
	}
	sort.Strings(stale)
	return stale
}

// Unchanged reports whether the file at rel still has the recorded digest.
func (m *Manifest) Unchanged(dir, rel string) bool {
	want, ok := m.Files[rel]
	if !ok {
		return false
	}
	buf, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	return digest(buf) == want
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
