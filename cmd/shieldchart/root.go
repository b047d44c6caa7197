package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shieldchart/config"
	"github.com/katalvlaran/shieldchart/figure"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "shieldchart",
		Short:        "Derive and draw geomantic shield charts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newChartCmd(a), newRenderCmd(a), newBatchCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), lvl, cfg.Log.Format)
	a.logger.Debug("configuration loaded", "path", a.configPath, "workers", cfg.Workers, "format", cfg.Format)

	return nil
}

func newLogger(w io.Writer, lvl slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// parseMothers reads four figures given as decimal (0–15), a single hex
// digit (0–f) or a 0x-prefixed value.
func parseMothers(args []string) ([4]figure.Figure, error) {
	var out [4]figure.Figure
	if len(args) != 4 {
		return out, fmt.Errorf("need exactly 4 mothers, got %d", len(args))
	}
	for i, s := range args {
		base := 0
		if len(s) == 1 {
			base = 16
		}
		v, err := strconv.ParseInt(s, base, 16)
		if err != nil {
			return out, fmt.Errorf("mother %d: %q is not a number", i+1, s)
		}
		if out[i], err = figure.New(int(v)); err != nil {
			return out, fmt.Errorf("mother %d: %w", i+1, err)
		}
	}

	return out, nil
}
