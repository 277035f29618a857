package gen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed template/*.tmpl
var templateFS embed.FS

// templates holds the fixed declarations that the emitter implements
// against but never derives.
var templates = template.Must(template.New("tuplegen").
	Funcs(template.FuncMap{"comment": comment}).
	ParseFS(templateFS, "template/*.tmpl"))

// comment turns text into line comments.
func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

// ProtocolFile is the name of the rendered protocol declaration.
const ProtocolFile = "protocol.go"

// TemplateWriter renders template-based files and formats them with
// goimports.
type TemplateWriter struct {
	tmpl   *template.Template
	outDir string
}

// NewTemplateWriter creates a new template-based writer for outDir.
func NewTemplateWriter(outDir string) *TemplateWriter {
	return &TemplateWriter{
		tmpl:   templates,
		outDir: outDir,
	}
}

// protocolData is passed to the protocol template.
type protocolData struct {
	Header  string
	Package string
}

// Protocol renders protocol.go for the given package.
func (w *TemplateWriter) Protocol(header, pkg string) (*File, error) {
	return w.render("protocol", ProtocolFile, protocolData{Header: header, Package: pkg})
}

// render executes the named template and formats the result.
func (w *TemplateWriter) render(name, file string, data any) (*File, error) {
	var buf bytes.Buffer
	if err := w.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, NewGenerationError(name, file, fmt.Sprintf("execute template %q", name), err)
	}
	fullPath := filepath.Join(w.outDir, file)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Keep the unformatted output for debugging; the write errors are
		// ignored since generation already failed.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return nil, NewGenerationError(name, file, "format (unformatted written to "+debugPath+")", err)
	}
	return &File{Dir: w.outDir, Name: file, Content: formatted}, nil
}
