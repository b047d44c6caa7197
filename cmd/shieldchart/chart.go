package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shieldchart/chart"
	"github.com/katalvlaran/shieldchart/shield"
)

type houseReport struct {
	Index  int    `json:"index" yaml:"index"`
	Role   string `json:"role" yaml:"role"`
	Figure int    `json:"figure" yaml:"figure"`
}

type tourReport struct {
	Path   []int   `json:"path" yaml:"path,flow"`
	Length float64 `json:"length" yaml:"length"`
}

type chartReport struct {
	Mothers    []int         `json:"mothers" yaml:"mothers,flow"`
	Houses     []houseReport `json:"houses" yaml:"houses"`
	Partitions [][]int       `json:"partitions" yaml:"partitions,flow"`
	Tours      []tourReport  `json:"tours" yaml:"tours"`
}

func newReport(s shield.Shield) chartReport {
	r := chartReport{
		Mothers:    s.Chart.Ints()[:4],
		Partitions: make([][]int, 0, len(s.Partitions)),
		Tours:      make([]tourReport, 0, len(s.Tours)),
	}
	for i, f := range s.Chart {
		role, _ := chart.RoleOf(i)
		r.Houses = append(r.Houses, houseReport{Index: i, Role: role.String(), Figure: int(f)})
	}
	for i, p := range s.Partitions {
		r.Partitions = append(r.Partitions, p.Indices())
		r.Tours = append(r.Tours, tourReport{Path: s.Tours[i].Path, Length: s.Tours[i].Length})
	}

	return r
}

func writeReport(w io.Writer, r chartReport, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown output %q (want yaml or json)", format)
	}
}

func newChartCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "chart A B C D",
		Short: "Print the houses, partitions and tours of one chart",
		Long: `Derive the chart for four Mothers and print every house, the clusters of
linked houses and the shortest path through each cluster.

Examples:
  shieldchart chart 1 2 4 8
  shieldchart chart a 0 f 3 --output json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			mothers, err := parseMothers(args)
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
			a.logger.Debug("chart analysed", "partitions", len(s.Partitions))

			return writeReport(cmd.OutOrStdout(), newReport(s), output)
		},
	}
	cmd.Flags().StringVar(&output, "output", "yaml", "output encoding: yaml or json")

	return cmd
}
