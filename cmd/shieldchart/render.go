package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shieldchart/render"
	"github.com/katalvlaran/shieldchart/shield"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		outFile string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "render A B C D",
		Short: "Draw one chart as SVG",
		Long: `Draw the chart for four Mothers. Without --out the drawing goes to stdout.

Examples:
  shieldchart render 1 2 4 8 > chart.svg
  shieldchart render 1 2 4 8 -o chart.svgz --format svgz`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			mothers, err := parseMothers(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			opts, err := a.cfg.TourOptions()
			if err != nil {
				return err
			}
			s, err := shield.BuildWithOptions(mothers, opts)
			if err != nil {
				return err
			}

			if outFile == "" {
				return render.Encode(cmd.OutOrStdout(), s, f)
			}

			return writeFile(outFile, func(w io.Writer) error { return render.Encode(w, s, f) })
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "svg", "svg or svgz")

	return cmd
}

func writeFile(path string, fill func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if err = fill(bw); err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}

	return err
}
