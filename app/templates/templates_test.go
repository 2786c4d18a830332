package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Blainegunn/generator-aem-component/app/component"
)

func heroBanner() component.Spec {
	return component.Derive(component.Input{
		CamelName:     "heroBanner",
		DashedName:    "hero-banner",
		IncludeStyles: true,
		IncludeScript: true,
	})
}

func TestBuiltinTemplates(t *testing.T) {
	r := NewRenderer("")
	spec := heroBanner()

	testCases := []struct {
		id       ID
		contains []string
	}{
		{Style, []string{".hero-banner {"}},
		{Script, []string{"'.hero-banner'", "initHeroBanner(this)"}},
		{Markup, []string{"data-sly-template.renderHeroBanner", `class="hero-banner"`}},
		{Metadata, []string{`jcr:title="Hero Banner"`, `name="./heroBannerTitle"`}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.id), func(t *testing.T) {
			out, err := r.Render(tc.id, spec)
			if err != nil {
				t.Fatalf("Render(%s) failed: %v", tc.id, err)
			}
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Render(%s) output missing %q:\n%s", tc.id, want, out)
				}
			}
		})
	}
}

func TestUnknownTemplate(t *testing.T) {
	if _, err := NewRenderer("").Render(ID("java"), heroBanner()); err == nil {
		t.Fatal("expected error for unknown template id")
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "component.less.tmpl"), []byte("@{{ .FolderName }}-color: red;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(dir)
	out, err := r.Render(Style, heroBanner())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "@heroBanner-color: red;\n" {
		t.Errorf("override not used, got %q", out)
	}
	if src := r.Source(Style); src != filepath.Join(dir, "component.less.tmpl") {
		t.Errorf("Source(style) = %q", src)
	}

	// Templates missing from the override directory fall back to the built-in set.
	if src := r.Source(Markup); src != "builtin:component.html.tmpl" {
		t.Errorf("Source(markup) = %q", src)
	}
	if _, err := r.Render(Markup, heroBanner()); err != nil {
		t.Errorf("fallback render failed: %v", err)
	}
}

func TestMissingFieldIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "component.js.tmpl"), []byte("{{ .NoSuchField }}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRenderer(dir).Render(Script, heroBanner()); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
