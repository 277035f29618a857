package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typedtuple/compiler/load"
)

func TestWithMaxArity(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"one", 1, false},
		{"twelve", 12, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithMaxArity(tt.n)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, c.MaxArity)
		})
	}
}

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithHeader("// Custom header")(c))
		assert.Equal(t, "// Custom header", c.Header)
	})

	t.Run("empty header falls back to default", func(t *testing.T) {
		c := &Config{Header: "existing"}
		require.NoError(t, WithHeader("")(c))
		assert.Equal(t, DefaultHeader, c.header())
	})
}

func TestStringOptions(t *testing.T) {
	t.Run("package", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithPackage("example.com/tuple")(c))
		assert.Equal(t, "example.com/tuple", c.Package)
		assert.True(t, IsConfigError(WithPackage("")(c)))
	})

	t.Run("target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./tuple")(c))
		assert.Equal(t, "./tuple", c.Target)
		assert.True(t, IsConfigError(WithTarget("")(c)))
	})

	t.Run("records output", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithRecordsOutput("./records", "example.com/records")(c))
		assert.Equal(t, "./records", c.RecordsTarget)
		assert.Equal(t, "example.com/records", c.RecordsPackage)
		assert.True(t, IsConfigError(WithRecordsOutput("./records", "")(c)))
	})
}

func TestWithRecords(t *testing.T) {
	c := &Config{}
	r := &load.Record{Name: "pair", Fields: []*load.Field{{Type: "int"}, {Type: "string"}}}

	require.NoError(t, WithRecords(r)(c))
	require.NoError(t, WithRecords(r)(c))
	assert.Len(t, c.Records, 2)

	err := WithRecords(nil)(c)
	assert.True(t, IsConfigError(err))
}

func TestWithWorkersAndLogger(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.workers())
	assert.True(t, IsConfigError(WithWorkers(-1)(c)))

	c.Workers = 0
	assert.Positive(t, c.workers())

	l := slog.Default()
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.logger())
	assert.True(t, IsConfigError(WithLogger(nil)(c)))
}

func TestApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithTarget("out"), WithMaxArity(0), WithPackage("p"))
		require.Error(t, err)
		assert.Equal(t, "out", c.Target)
		assert.Empty(t, c.Package)
	})

	t.Run("ApplyAll collects every error", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(WithMaxArity(0), WithTarget(""), WithPackage("p"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MaxArity")
		assert.Contains(t, err.Error(), "Target")
		assert.Equal(t, "p", c.Package)
	})
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithMaxArity(4), WithTarget("out"))
	require.NoError(t, err)
	assert.Equal(t, 4, c.MaxArity)
	assert.True(t, c.Protocol, "protocol is rendered by default")

	_, err = NewConfig(WithMaxArity(-1))
	assert.True(t, IsConfigError(err))

	assert.Panics(t, func() { MustNewConfig(WithTarget("")) })
	assert.NotPanics(t, func() { MustNewConfig(WithProtocol(false)) })
}

func TestFromFile(t *testing.T) {
	off := false
	f := &load.File{
		MaxArity: 5,
		Target:   "tuple",
		Package:  "example.com/tuple",
		Header:   "Custom header.",
		Protocol: &off,
		Workers:  2,
		Dir:      "base",
		Records: &load.RecordSet{
			Target:  "records",
			Package: "example.com/records",
			Items:   []*load.Record{{Name: "pair", Fields: []*load.Field{{Type: "int"}, {Type: "bool"}}}},
		},
	}

	c, err := NewConfig(FromFile(f)...)
	require.NoError(t, err)

	assert.Equal(t, 5, c.MaxArity)
	assert.Equal(t, "base/tuple", c.Target)
	assert.Equal(t, "example.com/tuple", c.Package)
	assert.Equal(t, "Custom header.", c.Header)
	assert.False(t, c.Protocol)
	assert.Equal(t, 2, c.Workers)
	assert.Len(t, c.Records, 1)
	assert.Equal(t, "base/records", c.RecordsTarget)
	assert.True(t, c.SeparateRecords())
}
