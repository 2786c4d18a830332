package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Blainegunn/generator-aem-component/app/project"
	"github.com/Blainegunn/generator-aem-component/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " into the project",
		Long: `Write a default ` + config.FileName + ` next to the nearest package.json.

The paths block is copied from package.json when present so it can be edited
in one place. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}
}

func runInit(opts *options) error {
	start := opts.projectDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}

	info, found, err := project.DetectProject(start)
	if err != nil {
		return err
	}
	root := start
	if found {
		root = info.RootPath
	}

	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := config.Default()
	cfg.Paths = config.Paths{
		Scripts:  info.Paths["scripts"],
		Styles:   info.Paths["styles"],
		LessPath: info.Paths["lessPath"],
		JSPath:   info.Paths["jsPath"],
		HTLPath:  info.Paths["htlPath"],
	}
	if err := config.SaveConfig(path, cfg); err != nil {
		return err
	}
	opts.log.WithField("path", path).Info("config written")

	createdColor.Fprint(opts.streams.Out, "Created ")
	fmt.Fprintln(opts.streams.Out, path)
	if missing := cfg.Missing(); len(missing) > 0 {
		fmt.Fprintf(opts.streams.Out, "Fill in %s in the paths block before running aemgen.\n", strings.Join(missing, ", "))
	}
	return nil
}
