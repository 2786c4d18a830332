package materializer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Blainegunn/generator-aem-component/app/component"
	"github.com/Blainegunn/generator-aem-component/app/templates"
	"github.com/sirupsen/logrus"
)

// Step names one materialization step.
type Step string

const (
	StepStyle     Step = "writeStyleFile"
	StepScript    Step = "writeScriptFile"
	StepMarkup    Step = "writeMarkupFile"
	StepMetadata  Step = "writeMarkupMetadataFile"
	StepAggregate Step = "updateAggregateStyleIndex"
)

const (
	scriptExt  = "js"
	markupExt  = "html"
	dialogDir  = "_cq_dialog"
	dialogFile = ".content.xml"
)

// Layout locates the output roots and the aggregate style file.
type Layout struct {
	StyleRoot       string // lessPath
	ScriptRoot      string // jsPath
	MarkupRoot      string // htlPath
	StyleIndex      string // aggregate file, e.g. app.less
	StyleExt        string // "less" when empty
	ImportDirective string // "@import" when empty
}

// Options tunes how files are written.
type Options struct {
	// Force overwrites files that already exist instead of skipping them.
	Force bool
	// ScriptFollowsFlag only writes the script file when the operator asked
	// for one. By default the script file is always written.
	ScriptFollowsFlag bool
}

// Artifact is one file the materializer will write.
type Artifact struct {
	Step     Step
	Template templates.ID
	Path     string
}

// Result lists what Apply did.
type Result struct {
	Created      []string
	Skipped      []string
	IndexPath    string
	IndexLine    string
	IndexUpdated bool
}

// Materializer writes the component files for a spec.
type Materializer struct {
	layout   Layout
	renderer templates.Renderer
	opts     Options
	log      logrus.FieldLogger
}

// New returns a Materializer. A nil logger discards log output.
func New(layout Layout, renderer templates.Renderer, opts Options, log logrus.FieldLogger) *Materializer {
	if layout.StyleExt == "" {
		layout.StyleExt = "less"
	}
	if layout.ImportDirective == "" {
		layout.ImportDirective = "@import"
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Materializer{layout: layout, renderer: renderer, opts: opts, log: log}
}

// Plan returns the files Apply would write for spec, in write order.
func (m *Materializer) Plan(spec component.Spec) []Artifact {
	var plan []Artifact

	if spec.StyleFileName != "" {
		plan = append(plan, Artifact{
			Step:     StepStyle,
			Template: templates.Style,
			Path:     filepath.Join(m.layout.StyleRoot, spec.FolderName, spec.StyleFileName+"."+m.layout.StyleExt),
		})
	}

	if spec.IncludeScript || !m.opts.ScriptFollowsFlag {
		name := spec.ScriptFileName
		if name == "" {
			name = spec.CamelName
		}
		plan = append(plan, Artifact{
			Step:     StepScript,
			Template: templates.Script,
			Path:     filepath.Join(m.layout.ScriptRoot, spec.FolderName, name+"."+scriptExt),
		})
	}

	plan = append(plan,
		Artifact{
			Step:     StepMarkup,
			Template: templates.Markup,
			Path:     filepath.Join(m.layout.MarkupRoot, spec.FolderName, spec.MarkupName+"."+markupExt),
		},
		Artifact{
			Step:     StepMetadata,
			Template: templates.Metadata,
			Path:     filepath.Join(m.layout.MarkupRoot, spec.FolderName, dialogDir, dialogFile),
		},
	)
	return plan
}

// IndexLine returns the aggregate entry for spec, or "" when no style file
// is generated.
func (m *Materializer) IndexLine(spec component.Spec) string {
	if spec.StyleFileName == "" {
		return ""
	}
	return ImportLine(m.layout.ImportDirective, spec.FolderName, spec.StyleFileName)
}

// Apply writes every planned file and then updates the aggregate style file.
// The first failure stops the remaining steps and is returned as *WriteError.
func (m *Materializer) Apply(ctx context.Context, spec component.Spec) (*Result, error) {
	result := &Result{}

	for _, a := range m.Plan(spec) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log := m.log.WithFields(logrus.Fields{"step": a.Step, "path": a.Path})

		if !m.opts.Force {
			if _, err := os.Stat(a.Path); err == nil {
				log.Info("skipped, file already exists")
				result.Skipped = append(result.Skipped, a.Path)
				continue
			}
		}

		content, err := m.renderer.Render(a.Template, spec)
		if err != nil {
			return result, &WriteError{Step: a.Step, Path: a.Path, Err: err}
		}
		if err := writeFile(a.Path, content); err != nil {
			return result, &WriteError{Step: a.Step, Path: a.Path, Err: err}
		}

		if src, ok := m.renderer.(interface{ Source(templates.ID) string }); ok {
			log = log.WithField("template", src.Source(a.Template))
		}
		log.Debug("created")
		result.Created = append(result.Created, a.Path)
	}

	line := m.IndexLine(spec)
	if line == "" {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.IndexPath = m.layout.StyleIndex
	result.IndexLine = line

	log := m.log.WithFields(logrus.Fields{"step": StepAggregate, "path": m.layout.StyleIndex})
	updated, err := UpdateAggregate(m.layout.StyleIndex, line)
	if err != nil {
		return result, &WriteError{Step: StepAggregate, Path: m.layout.StyleIndex, Err: err}
	}
	result.IndexUpdated = updated
	if updated {
		log.Info("updated")
	} else {
		log.Info("skipped")
	}
	return result, nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, []byte(content), 0644)
}
