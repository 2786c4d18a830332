package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Blainegunn/generator-aem-component/app/component"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed files/*.tmpl
var builtinFS embed.FS

// ID names one of the four component templates.
type ID string

const (
	Style    ID = "style"
	Script   ID = "script"
	Markup   ID = "markup"
	Metadata ID = "metadata"
)

// fileNames maps each template to its file name, both in the embedded set
// and in a project override directory.
var fileNames = map[ID]string{
	Style:    "component.less.tmpl",
	Script:   "component.js.tmpl",
	Markup:   "component.html.tmpl",
	Metadata: "content.xml.tmpl",
}

// Renderer turns a component spec into file content.
type Renderer interface {
	Render(id ID, spec component.Spec) (string, error)
}

// FSRenderer renders Go text/templates. Files found in OverrideDir win over
// the built-in set.
type FSRenderer struct {
	OverrideDir string
	funcs       template.FuncMap
	cache       map[ID]*template.Template
}

// NewRenderer returns a renderer using the built-in templates, optionally
// overridden per file by templates in overrideDir.
func NewRenderer(overrideDir string) *FSRenderer {
	return &FSRenderer{
		OverrideDir: overrideDir,
		funcs:       Funcs(),
		cache:       make(map[ID]*template.Template),
	}
}

// Funcs returns the helper functions available inside component templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"title": func(s string) string { return cases.Title(language.English).String(s) },
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		// trimRender turns "renderHeroBanner" into "HeroBanner".
		"trimRender": func(s string) string { return strings.TrimPrefix(s, "render") },
	}
}

// Render executes the template registered for id with spec as its data.
func (r *FSRenderer) Render(id ID, spec component.Spec) (string, error) {
	tmpl, err := r.lookup(id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("executing template %s: %w", id, err)
	}
	return buf.String(), nil
}

// Source reports where the template for id is loaded from.
func (r *FSRenderer) Source(id ID) string {
	name, ok := fileNames[id]
	if !ok {
		return ""
	}
	if p, ok := r.overridePath(name); ok {
		return p
	}
	return "builtin:" + name
}

func (r *FSRenderer) lookup(id ID) (*template.Template, error) {
	if tmpl, ok := r.cache[id]; ok {
		return tmpl, nil
	}

	name, ok := fileNames[id]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}

	raw, err := r.read(name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Funcs(r.funcs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	r.cache[id] = tmpl
	return tmpl, nil
}

func (r *FSRenderer) read(name string) ([]byte, error) {
	if p, ok := r.overridePath(name); ok {
		return os.ReadFile(p)
	}
	return fs.ReadFile(builtinFS, "files/"+name)
}

func (r *FSRenderer) overridePath(name string) (string, bool) {
	if r.OverrideDir == "" {
		return "", false
	}
	p := filepath.Join(r.OverrideDir, name)
	if _, err := os.Stat(p); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// Unreadable override: let read surface the real error.
			return p, true
		}
		return "", false
	}
	return p, true
}
