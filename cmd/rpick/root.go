package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	apppkg "github.com/kk-code-lab/rpick/internal/app"
	"github.com/kk-code-lab/rpick/internal/clipboard"
	"github.com/kk-code-lab/rpick/internal/config"
	fsutil "github.com/kk-code-lab/rpick/internal/fs"
	"github.com/kk-code-lab/rpick/internal/logging"
	"github.com/kk-code-lab/rpick/internal/preview"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logFile    string
	theme      string
	printPath  bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rpick [dir]",
		Short: "Pick a path from a terminal file browser",
		Long: `rpick browses directories in the terminal with a live regex filter and a
syntax-highlighted preview. Press y to copy the selected path to the clipboard
and exit, or q to exit without copying.

Keys:
  j/k        move down/up        i          filter (Enter keeps, Esc clears)
  l/h        enter/leave preview Enter      open directory
  Backspace  parent directory    y / q      yank and exit / exit`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir := ""
			if len(args) == 1 {
				startDir = args[0]
			}
			return run(opts, startDir, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/rpick/config.toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	flags.StringVar(&opts.theme, "theme", "", "syntax highlighting theme for previews")
	flags.BoolVar(&opts.printPath, "print", false, "also print the yanked path to stdout")

	return rootCmd
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.NewLoader(opts.configPath).Load()
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cfg, opts)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides gives command-line flags the final say.
func applyFlagOverrides(cfg *config.Config, opts *rootOptions) {
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
}

func run(opts *rootOptions, startDir string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	lister, err := fsutil.NewLister(fsutil.ListOptions{
		ShowHidden: cfg.UI.ShowHidden,
		Ignore:     cfg.UI.Ignore,
	})
	if err != nil {
		return err
	}
	previewer := preview.NewPreviewer(lister, preview.Options{
		Theme:    cfg.UI.Theme,
		TabWidth: cfg.Preview.TabWidth,
		MaxBytes: cfg.Preview.MaxBytes,
		Logger:   logger,
	})
	enterMode, err := statepkg.ParsePreviewEnterMode(cfg.Preview.Enter)
	if err != nil {
		return err
	}

	app, err := apppkg.NewApplication(apppkg.Config{
		StartDir:      startDir,
		BrowsePercent: cfg.UI.BrowsePercent,
		PreviewEnter:  enterMode,
		Lister:        lister,
		Previewer:     previewer,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	if err := app.Run(); err != nil {
		return err
	}

	payload, ok := app.ClipboardPayload()
	if !ok {
		return nil
	}
	if err := clipboard.New(logger).Copy(payload); err != nil {
		logger.WithError(err).Warn("clipboard delivery failed")
		fmt.Fprintln(stderr, color.YellowString("warning: %v", err))
	}
	if opts.printPath {
		fmt.Fprintln(stdout, payload)
	}
	return nil
}
