package gen

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment(t *testing.T) {
	assert.Equal(t, "// one", comment("one"))
	assert.Equal(t, "// one\n//\n// two", comment("one\n\ntwo\n"))
}

func TestTemplateWriterProtocol(t *testing.T) {
	dir := t.TempDir()
	w := NewTemplateWriter(dir)

	f, err := w.Protocol("Custom header.\nSecond line.", "tuple")
	require.NoError(t, err)

	assert.Equal(t, ProtocolFile, f.Name)
	assert.Equal(t, dir, f.Dir)
	out := string(f.Content)
	assert.True(t, strings.HasPrefix(out, "// Custom header.\n// Second line.\n\npackage tuple\n"), out)
	assert.Contains(t, out, "Marker() I")
	assert.Contains(t, out, "Pop() (T, Rem)")
}

func TestTemplateWriterFormatError(t *testing.T) {
	dir := t.TempDir()
	w := NewTemplateWriter(dir)
	w.tmpl = template.Must(template.New("root").Parse(`{{ define "broken" }}package {{ . }}

func {{ end }}`))

	_, err := w.render("broken", "broken.go", "tuple")
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.FileExists(t, dir+"/broken.go.error")
}
