package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Blainegunn/generator-aem-component/app/project"
	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Check a config file against the schema",
		Long: `Check a config file against the schema. Without an argument the --config
file or the project's ` + config.FileName + ` is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigValidate(opts, path)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(opts)
		},
	})
	return cmd
}

func runConfigValidate(opts *options, path string) error {
	if path == "" {
		start := opts.projectDir
		if start == "" {
			start = "."
		}
		info, found, err := project.DetectProject(start)
		if err != nil {
			return err
		}
		root := start
		if found {
			root = info.RootPath
		}
		path = filepath.Join(root, config.FileName)
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		return err
	}
	out := opts.streams.Out
	if result.Valid {
		createdColor.Fprint(out, "Valid ")
		fmt.Fprintln(out, path)
		return nil
	}
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(out, "%s: %s\n", loc, issue.Message)
	}
	return &config.InvalidError{Path: path, Issues: result.Issues}
}

func runConfigShow(opts *options) error {
	root, cfg, err := loadProject(opts)
	if err != nil {
		return err
	}
	out := opts.streams.Out
	source := cfg.Source
	if source == "" {
		source = "package.json"
	}
	fmt.Fprintf(out, "project:          %s\n", root)
	fmt.Fprintf(out, "source:           %s\n", source)
	fmt.Fprintf(out, "scripts:          %s\n", cfg.Paths.Scripts)
	fmt.Fprintf(out, "styles:           %s\n", cfg.Paths.Styles)
	fmt.Fprintf(out, "lessPath:         %s\n", cfg.Paths.LessPath)
	fmt.Fprintf(out, "jsPath:           %s\n", cfg.Paths.JSPath)
	fmt.Fprintf(out, "htlPath:          %s\n", cfg.Paths.HTLPath)
	fmt.Fprintf(out, "styleExt:         %s\n", cfg.StyleExt)
	fmt.Fprintf(out, "importDirective:  %s\n", cfg.ImportDirective)
	fmt.Fprintf(out, "scriptFollowsFlag: %t\n", cfg.ScriptFollowsFlag)
	return nil
}
