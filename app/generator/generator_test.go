package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/Blainegunn/generator-aem-component/app/materializer"
	"github.com/Blainegunn/generator-aem-component/app/project"
	"github.com/Blainegunn/generator-aem-component/app/prompt"
	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeCollector struct {
	outcome prompt.Outcome
	err     error
	calls   int
}

func (f *fakeCollector) Collect(ctx context.Context) (prompt.Outcome, error) {
	f.calls++
	return f.outcome, f.err
}

const initialIndex = "@import \"base/base\";\n"

// newProject lays out a project with the scripts entry and the aggregate style file.
func newProject(t *testing.T) (string, config.Config) {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths = config.Paths{
		Scripts:  "ui/js/app.js",
		Styles:   "ui/less/app.less",
		LessPath: "ui/less",
		JSPath:   "ui/js",
		HTLPath:  "ui/htl",
	}
	cfg = cfg.Resolve(root)

	for path, content := range map[string]string{
		cfg.Paths.Scripts: "",
		cfg.Paths.Styles:  initialIndex,
	} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root, cfg
}

func heroBanner(confirmed bool) prompt.Outcome {
	return prompt.Outcome{
		Spec: component.Derive(component.Input{
			CamelName:     "heroBanner",
			DashedName:    "hero-banner",
			IncludeStyles: true,
			IncludeScript: true,
		}),
		Confirmed: confirmed,
	}
}

func TestRunHeroBanner(t *testing.T) {
	root, cfg := newProject(t)
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	g := &Generator{
		ProjectDir: root,
		Config:     cfg,
		Collector:  &fakeCollector{outcome: heroBanner(true)},
		Version:    "1.0.0",
		Log:        log,
	}
	report, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Stage != StageDone {
		t.Errorf("Stage = %s", report.Stage)
	}

	for _, rel := range []string{
		"ui/less/heroBanner/heroBanner.less",
		"ui/js/heroBanner/heroBanner.js",
		"ui/htl/heroBanner/heroBanner.html",
		"ui/htl/heroBanner/_cq_dialog/.content.xml",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	markup, err := os.ReadFile(filepath.Join(root, "ui/htl/heroBanner/heroBanner.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(markup), "data-sly-template.renderHeroBanner") {
		t.Errorf("markup missing entry point:\n%s", markup)
	}

	index, err := os.ReadFile(cfg.Paths.Styles)
	if err != nil {
		t.Fatal(err)
	}
	want := initialIndex + "@import \"heroBanner/heroBanner\";\n"
	if string(index) != want {
		t.Errorf("index = %q, want %q", index, want)
	}
	if len(report.Result.Created) != 4 || !report.Result.IndexUpdated {
		t.Errorf("unexpected result %+v", report.Result)
	}

	var stages []string
	sources := map[string]bool{}
	for _, e := range hook.AllEntries() {
		if s, ok := e.Data["stage"]; ok {
			stages = append(stages, string(s.(Stage)))
		}
		if src, ok := e.Data["template"]; ok {
			sources[src.(string)] = true
		}
	}
	if !sources["builtin:component.html.tmpl"] || len(sources) != 4 {
		t.Errorf("template sources logged = %v", sources)
	}
	if got := strings.Join(stages, ","); got != "roots-verified,input-collected,confirmed,materializing,done" {
		t.Errorf("stages logged = %s", got)
	}

	// A second run leaves the index untouched and skips existing files.
	g.Collector = &fakeCollector{outcome: heroBanner(true)}
	report, err = g.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	index, _ = os.ReadFile(cfg.Paths.Styles)
	if string(index) != want {
		t.Errorf("index changed on second run: %q", index)
	}
	if len(report.Result.Skipped) != 4 || report.Result.IndexUpdated {
		t.Errorf("second run result %+v", report.Result)
	}
}

func TestRunDeclined(t *testing.T) {
	root, cfg := newProject(t)
	g := &Generator{ProjectDir: root, Config: cfg, Collector: &fakeCollector{outcome: heroBanner(false)}}

	report, err := g.Run(context.Background())
	if !errors.Is(err, component.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if report.Stage != StageAborted || report.Failed != StageInputCollected {
		t.Errorf("report stage=%s failed=%s", report.Stage, report.Failed)
	}
	for _, dir := range []string{"ui/less/heroBanner", "ui/js/heroBanner", "ui/htl"} {
		if _, err := os.Stat(filepath.Join(root, dir)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist", dir)
		}
	}
	index, _ := os.ReadFile(cfg.Paths.Styles)
	if string(index) != initialIndex {
		t.Errorf("index modified: %q", index)
	}
}

func TestRunMissingScriptsRoot(t *testing.T) {
	root, cfg := newProject(t)
	if err := os.Remove(cfg.Paths.Scripts); err != nil {
		t.Fatal(err)
	}
	collector := &fakeCollector{outcome: heroBanner(true)}
	g := &Generator{ProjectDir: root, Config: cfg, Collector: collector}

	report, err := g.Run(context.Background())
	var pe *project.PreconditionError
	if !errors.As(err, &pe) || pe.Path != cfg.Paths.Scripts {
		t.Fatalf("expected PreconditionError for scripts, got %v", err)
	}
	if collector.calls != 0 {
		t.Error("collector must not run when a root is missing")
	}
	if report.Failed != StageUninitialized {
		t.Errorf("Failed = %s", report.Failed)
	}
}

func TestRunVersionTooOld(t *testing.T) {
	root, cfg := newProject(t)
	cfg.MinVersion = "2.0.0"
	collector := &fakeCollector{outcome: heroBanner(true)}
	g := &Generator{ProjectDir: root, Config: cfg, Collector: collector, Version: "1.4.0"}

	if _, err := g.Run(context.Background()); err == nil {
		t.Fatal("expected version precondition error")
	}
	if collector.calls != 0 {
		t.Error("collector must not run")
	}
}

func TestRunCollectorError(t *testing.T) {
	root, cfg := newProject(t)
	g := &Generator{ProjectDir: root, Config: cfg, Collector: &fakeCollector{err: prompt.ErrInputClosed}}

	report, err := g.Run(context.Background())
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if report.Failed != StageRootsVerified {
		t.Errorf("Failed = %s", report.Failed)
	}
}

func TestRunDryRun(t *testing.T) {
	root, cfg := newProject(t)
	g := &Generator{ProjectDir: root, Config: cfg, Collector: &fakeCollector{outcome: heroBanner(true)}, DryRun: true}

	report, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Result != nil || len(report.Planned) != 4 {
		t.Errorf("unexpected dry-run report %+v", report)
	}
	if report.IndexLine != "@import \"heroBanner/heroBanner\";\n" {
		t.Errorf("IndexLine = %q", report.IndexLine)
	}
	if _, err := os.Stat(filepath.Join(root, "ui/htl")); !os.IsNotExist(err) {
		t.Error("dry run must not write files")
	}
}

func TestRunWriteError(t *testing.T) {
	root, cfg := newProject(t)
	// A file where the markup root should be makes directory creation fail.
	if err := os.WriteFile(cfg.Paths.HTLPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	g := &Generator{ProjectDir: root, Config: cfg, Collector: &fakeCollector{outcome: heroBanner(true)}}

	report, err := g.Run(context.Background())
	var we *materializer.WriteError
	if !errors.As(err, &we) || we.Step != materializer.StepMarkup {
		t.Fatalf("expected markup WriteError, got %v", err)
	}
	if report.Failed != StageMaterializing {
		t.Errorf("Failed = %s", report.Failed)
	}
	index, _ := os.ReadFile(cfg.Paths.Styles)
	if string(index) != initialIndex {
		t.Error("index must not be updated after a failed step")
	}
}

func TestPreviewIsRelative(t *testing.T) {
	root, cfg := newProject(t)
	g := &Generator{ProjectDir: root, Config: cfg}
	got := g.Preview(heroBanner(true).Spec)
	want := []string{
		filepath.Join("ui", "less", "heroBanner", "heroBanner.less"),
		filepath.Join("ui", "js", "heroBanner", "heroBanner.js"),
		filepath.Join("ui", "htl", "heroBanner", "heroBanner.html"),
		filepath.Join("ui", "htl", "heroBanner", "_cq_dialog", ".content.xml"),
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Preview = %v, want %v", got, want)
	}
}
