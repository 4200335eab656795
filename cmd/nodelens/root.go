package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nodelens/nodelens"
	"github.com/nodelens/nodelens/internal/config"
)

type rootOptions struct {
	configPath string
	locator    string
	strict     bool
	noColor    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "nodelens",
		Short:         "Inspect and edit nodes of a JSON document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/nodelens/config.yaml)")
	pf.StringVarP(&opts.locator, "path", "p", "$", `node locator, e.g. '$["customer"][0]'`)
	pf.BoolVar(&opts.strict, "strict", false, "fail when the path does not resolve")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&opts.logFile, "log", "", "write logs to the given file")

	cmd.AddCommand(
		newShowCmd(opts),
		newGetCmd(opts),
		newSetCmd(opts),
		newEditCmd(opts),
	)
	return cmd
}

// load resolves flags over the config file and builds the logger. Color is
// disabled when stdout is not a terminal.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if o.strict {
		cfg.StrictPaths = true
	}
	if o.noColor {
		cfg.NoColor = true
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	log := zap.NewNop()
	if cfg.LogFile != "" {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{cfg.LogFile}
		if built, err := zcfg.Build(); err == nil {
			log = built
		}
	}
	return cfg, log, nil
}

func (o *rootOptions) path() (nodelens.Path, error) {
	return nodelens.ParseLocator(o.locator)
}

func editOptions(cfg config.Config) []nodelens.EditOption {
	opts := []nodelens.EditOption{nodelens.WithIndent(cfg.Indent)}
	if cfg.StrictPaths {
		opts = append(opts, nodelens.WithStrictPaths())
	}
	return opts
}
