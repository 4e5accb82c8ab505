package commands

import (
	"bufio"
	"fmt"

	"github.com/simonhull/firebird-suite/treewalker"
	"github.com/simonhull/firebird-suite/treewalker/internal/config"
	"github.com/simonhull/firebird-suite/treewalker/internal/logger"
	"github.com/simonhull/firebird-suite/treewalker/internal/output"
	"github.com/simonhull/firebird-suite/treewalker/internal/tree"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd creates and returns the root command for the treewalker CLI
func RootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

// newRootCmd builds the root command rendering from fsys.
func newRootCmd(fsys afero.Fs) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "treewalker <path>",
		Short: "Print a directory as a tree",
		Long: `Treewalker prints the contents of a directory as a tree.

Directories are listed before files, each group sorted by name.
Directory names end with a "/".

Example:
  treewalker . --ignore-hidden`,
		Version: treewalker.Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on; failures are not usage errors.
			cmd.SilenceUsage = true

			fileCfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(viper.New(), cmd.Flags(), fileCfg, args[0])
			if err != nil {
				return err
			}

			return run(cmd, fsys, cfg, configFile)
		},
	}

	flags := cmd.Flags()
	flags.Bool("ignore-hidden", false, "Ignore files and folders that start with a '.'")
	flags.String("color", output.ColorAuto, "Color directory names: auto, always or never")
	flags.StringVar(&configFile, "config", "", "Read default settings from a YAML file")
	flags.BoolP("verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// run renders cfg.Path to stdout. A render failure is reported as one line
// on stderr and returned so the process exits non-zero.
func run(cmd *cobra.Command, fsys afero.Fs, cfg *config.Config, configFile string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	printer := output.New(stderr, output.ColorProfile(cfg.Color, stderr))
	printer.SetVerbose(cfg.Verbose)
	if configFile != "" {
		printer.Verbose(fmt.Sprintf("Loaded config from: %s", configFile))
	}

	level := logger.LevelSilent
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLogger(level, stderr).WithFields(logger.F("root", cfg.Path))

	w := bufio.NewWriter(stdout)
	renderer := tree.NewRenderer(w, tree.Options{
		IgnoreHidden: cfg.IgnoreHidden,
		Fs:           fsys,
		Logger:       log,
		Styler:       output.NewPalette(output.ColorProfile(cfg.Color, stdout)),
	})

	// Flush even on failure so lines for finished entries still show.
	err := renderer.Render(cfg.Path)
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		err = &tree.Error{Kind: tree.KindIO, Path: cfg.Path, Err: flushErr}
	}
	if err != nil {
		cmd.SilenceErrors = true
		printer.Error(tree.Describe(err, cfg.Path))
		return err
	}

	return nil
}
