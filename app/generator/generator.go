package generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/Blainegunn/generator-aem-component/app/materializer"
	"github.com/Blainegunn/generator-aem-component/app/project"
	"github.com/Blainegunn/generator-aem-component/app/prompt"
	"github.com/Blainegunn/generator-aem-component/app/templates"
	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/sirupsen/logrus"
)

// Stage is how far a run got.
type Stage string

const (
	StageUninitialized  Stage = "uninitialized"
	StageRootsVerified  Stage = "roots-verified"
	StageInputCollected Stage = "input-collected"
	StageConfirmed      Stage = "confirmed"
	StageMaterializing  Stage = "materializing"
	StageDone           Stage = "done"
	StageAborted        Stage = "aborted"
)

// Report describes a finished run, successful or not.
type Report struct {
	Stage Stage
	// Failed is the last stage reached before aborting.
	Failed Stage
	Spec   component.Spec
	DryRun bool

	// Planned is filled for dry runs instead of Result.
	Planned   []materializer.Artifact
	IndexLine string
	Result    *materializer.Result
}

// Generator runs one invocation: verify the project, collect input, write files.
type Generator struct {
	ProjectDir string
	// Config must already be resolved against ProjectDir.
	Config    config.Config
	Collector prompt.Collector
	Renderer  templates.Renderer
	Options   materializer.Options
	DryRun    bool
	Version   string
	Log       logrus.FieldLogger
	// OnReady runs once the preconditions pass, before any question is asked.
	OnReady func()
}

func (g *Generator) logger() logrus.FieldLogger {
	if g.Log != nil {
		return g.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Layout maps the configured paths onto the materializer layout.
func (g *Generator) Layout() materializer.Layout {
	return materializer.Layout{
		StyleRoot:       g.Config.Paths.LessPath,
		ScriptRoot:      g.Config.Paths.JSPath,
		MarkupRoot:      g.Config.Paths.HTLPath,
		StyleIndex:      g.Config.Paths.Styles,
		StyleExt:        g.Config.StyleExt,
		ImportDirective: g.Config.ImportDirective,
	}
}

func (g *Generator) materializer() *materializer.Materializer {
	renderer := g.Renderer
	if renderer == nil {
		renderer = templates.NewRenderer(g.Config.TemplatesDir)
	}
	return materializer.New(g.Layout(), renderer, g.Options, g.logger())
}

// Preview lists the files spec would produce, relative to ProjectDir when possible.
func (g *Generator) Preview(spec component.Spec) []string {
	plan := g.materializer().Plan(spec)
	paths := make([]string, 0, len(plan))
	for _, a := range plan {
		paths = append(paths, g.Rel(a.Path))
	}
	return paths
}

// Rel returns path relative to ProjectDir, or path itself when that fails.
func (g *Generator) Rel(path string) string {
	if g.ProjectDir == "" {
		return path
	}
	rel, err := filepath.Rel(g.ProjectDir, path)
	if err != nil {
		return path
	}
	return rel
}

// Run walks the stages in order. The returned report is never nil; on error
// its Stage is StageAborted and Failed names where the run stopped.
// Declining the confirmation returns component.ErrCancelled before any
// file is touched.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{Stage: StageUninitialized, DryRun: g.DryRun}
	log := g.logger()

	abort := func(err error) (*Report, error) {
		report.Failed = report.Stage
		report.Stage = StageAborted
		log.WithField("stage", report.Failed).WithError(err).Debug("aborted")
		return report, err
	}
	advance := func(stage Stage) {
		report.Stage = stage
		log.WithField("stage", stage).Debug("stage reached")
	}

	if err := project.CheckVersion(g.Config.MinVersion, g.Version); err != nil {
		return abort(err)
	}
	if err := project.VerifyRoots(g.Config); err != nil {
		return abort(err)
	}
	advance(StageRootsVerified)
	if g.OnReady != nil {
		g.OnReady()
	}

	if g.Collector == nil {
		return abort(fmt.Errorf("no input collector configured"))
	}
	outcome, err := g.Collector.Collect(ctx)
	if err != nil {
		return abort(fmt.Errorf("collecting input: %w", err))
	}
	report.Spec = outcome.Spec
	advance(StageInputCollected)

	if !outcome.Confirmed {
		return abort(component.ErrCancelled)
	}
	advance(StageConfirmed)

	m := g.materializer()
	report.IndexLine = m.IndexLine(outcome.Spec)
	if g.DryRun {
		report.Planned = m.Plan(outcome.Spec)
		advance(StageDone)
		return report, nil
	}

	advance(StageMaterializing)
	result, err := m.Apply(ctx, outcome.Spec)
	report.Result = result
	if err != nil {
		return abort(err)
	}
	advance(StageDone)
	return report, nil
}
