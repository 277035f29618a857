package load

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		f, err := Load(filepath.Join("testdata", "valid.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 4, f.MaxArity)
		assert.Equal(t, "./out", f.Target)
		assert.Equal(t, "example.com/app/tuple", f.Package)
		require.NotNil(t, f.Protocol)
		assert.True(t, *f.Protocol)
		assert.Equal(t, "testdata", f.Dir)

		require.NotNil(t, f.Records)
		assert.Equal(t, "example.com/app/records", f.Records.Package)
		require.Len(t, f.RecordItems(), 2)

		contact := f.RecordItems()[0]
		assert.Equal(t, "contact", contact.Name)
		assert.False(t, contact.Strict)
		require.Len(t, contact.Fields, 3)
		assert.Equal(t, "rune", contact.Fields[1].Type)

		span := f.RecordItems()[1]
		assert.True(t, span.Strict)
		assert.Equal(t, "time", span.Fields[0].Import)
		assert.Equal(t, "end", span.Fields[1].Name)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "unknown.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "arity")
	})

	t.Run("record without fields is rejected", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nofields.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `record "empty": no fields`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading")
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"minimal", "max_arity: 2\n", ""},
		{"empty", "", "empty declaration file"},
		{"negative arity", "max_arity: -1\n", "must not be negative"},
		{"record without name", "records:\n  items:\n    - fields:\n        - type: int\n", "missing name"},
		{"field without type", "records:\n  items:\n    - name: r\n      fields:\n        - name: x\n", "missing type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	buf, err := f.Marshal()
	require.NoError(t, err)

	again, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, f.MaxArity, again.MaxArity)
	assert.Equal(t, f.Records.Items[1].Fields, again.Records.Items[1].Fields)
}

func TestResolve(t *testing.T) {
	f := &File{Dir: filepath.Join("a", "b")}

	assert.Equal(t, filepath.Join("a", "b", "out"), f.Resolve("out"))
	assert.Equal(t, "", f.Resolve(""))
	abs, err := filepath.Abs("x")
	require.NoError(t, err)
	assert.Equal(t, abs, f.Resolve(abs))
}
