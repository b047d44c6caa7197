package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shieldchart/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outDir  string
		workers int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Draw every chart into a directory tree",
		Long: `Enumerate all 65536 Mother combinations and write one drawing each,
named <out>/<a><b>/<c><d>.svg with one hex digit per Mother.

Examples:
  shieldchart batch --out sdi
  shieldchart batch --config shieldchart.yaml --workers 4 --format svgz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("out") {
				cfg.OutputDir = outDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			f, err := cfg.RenderFormat()
			if err != nil {
				return err
			}
			opts, err := cfg.TourOptions()
			if err != nil {
				return err
			}

			a.logger.Info("writing charts", "dir", cfg.OutputDir)
			_, err = batch.Run(cmd.Context(), batch.NewDirSink(cfg.OutputDir), batch.Options{
				Workers: cfg.Workers,
				Format:  f,
				Tour:    opts,
				Logger:  a.logger,
			})

			return err
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config: sdi)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default GOMAXPROCS)")
	cmd.Flags().StringVar(&format, "format", "", "svg or svgz (default from config)")

	return cmd
}
