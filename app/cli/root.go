package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Blainegunn/generator-aem-component/app/generator"
	"github.com/Blainegunn/generator-aem-component/app/materializer"
	"github.com/Blainegunn/generator-aem-component/app/project"
	"github.com/Blainegunn/generator-aem-component/app/prompt"
	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// IOStreams are the standard streams a command reads from and writes to.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// options holds the persistent flags shared by every command.
type options struct {
	projectDir string
	configFile string
	plain      bool
	force      bool
	dryRun     bool
	copy       bool
	debug      bool
	verbose    bool

	version string
	streams IOStreams
	log     *logrus.Logger
}

// Execute runs the root command against the process streams.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd(version, IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Running the root command starts the
// generator in the detected project.
func NewRootCmd(version string, streams IOStreams) *cobra.Command {
	opts := &options{version: version, streams: streams}

	cmd := &cobra.Command{
		Use:   "aemgen",
		Short: "Create stub files for a new AEM component",
		Long: `aemgen asks for a component name and writes its starter files:
a Less file, a JavaScript file, an HTL template and its dialog .content.xml.
The Less file is also imported from the project's aggregate style file.

Paths come from the "paths" block of the nearest package.json and may be
overridden in .aemgen.yaml or with AEMGEN_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = newLogger(streams.ErrOut, opts.debug, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.projectDir, "project-dir", "", "Directory to start the package.json lookup from (default: current directory)")
	flags.StringVar(&opts.configFile, "config", "", "Config file to use instead of <project>/"+config.FileName)
	flags.BoolVar(&opts.force, "force", false, "Overwrite files that already exist")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log each step")

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Ask questions line by line instead of the interactive UI")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the files that would be written without writing them")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the HTL call snippet to the clipboard")

	cmd.AddCommand(newInitCmd(opts), newConfigCmd(opts), newVersionCmd(opts))
	return cmd
}

func newLogger(w io.Writer, debug, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case debug:
		log.SetLevel(logrus.DebugLevel)
	case verbose:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// loadProject finds the project root and resolves its configuration.
func loadProject(opts *options) (string, config.Config, error) {
	start := opts.projectDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", config.Config{}, fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}

	info, found, err := project.DetectProject(start)
	if err != nil {
		return "", config.Config{}, err
	}
	root := info.RootPath
	if !found {
		root = start
		opts.log.WithField("dir", start).Debug("no package.json found, using start directory")
	} else {
		opts.log.WithFields(logrus.Fields{"root": root, "name": info.Name}).Debug("project detected")
	}

	cfg, err := config.LoadConfig(root, opts.configFile, info.Paths)
	if err != nil {
		return "", config.Config{}, err
	}
	if cfg.Source != "" {
		opts.log.WithField("path", cfg.Source).Debug("config file loaded")
	}
	return root, cfg.Resolve(root), nil
}

// useLineMode reports whether the questions must be asked line by line.
func useLineMode(opts *options) bool {
	if opts.plain {
		return true
	}
	f, ok := opts.streams.In.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func runGenerate(ctx context.Context, opts *options) error {
	root, cfg, err := loadProject(opts)
	if err != nil {
		return err
	}

	g := &generator.Generator{
		ProjectDir: root,
		Config:     cfg,
		Options: materializer.Options{
			Force:             opts.force,
			ScriptFollowsFlag: cfg.ScriptFollowsFlag,
		},
		DryRun:  opts.dryRun,
		Version: opts.version,
		Log:     opts.log,
	}

	out := opts.streams.Out
	if useLineMode(opts) {
		g.Collector = prompt.NewLineCollector(opts.streams.In, out)
	} else {
		g.Collector = &prompt.TUICollector{
			In:          opts.streams.In,
			Out:         out,
			ProjectPath: root,
			Preview:     g.Preview,
		}
	}

	g.OnReady = func() { printBanner(out) }

	report, err := g.Run(ctx)
	if err != nil {
		if report != nil && report.Failed == generator.StageInputCollected {
			printCancelled(out)
		}
		if report != nil && report.Result != nil {
			printResult(out, g, report)
		}
		return err
	}

	if report.DryRun {
		printPlan(out, g, report)
	} else {
		printResult(out, g, report)
	}

	if opts.copy {
		snippet := HTLCallSnippet(report.Spec)
		if err := writeClipboard(snippet); err != nil {
			opts.log.WithError(err).Warn("could not copy HTL call snippet to the clipboard")
		} else {
			printCopied(out, snippet)
		}
	}
	return nil
}
