// Package shield runs the full analysis of one set of Mothers: it derives the
// chart, groups its houses into partitions and plans the shortest open path
// through every partition.
//
// The result is the geometric skeleton a renderer needs: which houses are
// circled and which pairs of houses are joined by a line. Build is pure and
// holds no shared mutable state, so independent calls may run concurrently.
package shield

import (
	"fmt"

	"github.com/katalvlaran/shieldchart/chart"
	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/layout"
	"github.com/katalvlaran/shieldchart/partition"
	"github.com/katalvlaran/shieldchart/tour"
)

// Shield is the analysed chart.
type Shield struct {
	Chart      chart.Chart
	Partitions []partition.Partition
	// Tours[i] is the optimal path through Partitions[i].
	Tours []tour.Result
}

// Build analyses mothers with the default tour options.
func Build(mothers [4]figure.Figure) (Shield, error) {
	return BuildWithOptions(mothers, tour.DefaultOptions())
}

// BuildWithOptions analyses mothers, planning tours with opts.
func BuildWithOptions(mothers [4]figure.Figure, opts tour.Options) (Shield, error) {
	c, err := chart.Derive(mothers)
	if err != nil {
		return Shield{}, err
	}
	parts, err := partition.Build(c)
	if err != nil {
		return Shield{}, err
	}

	pos := layout.Positions()
	tours := make([]tour.Result, len(parts))
	for i, p := range parts {
		if tours[i], err = tour.Plan(p.Indices(), pos, opts); err != nil {
			return Shield{}, fmt.Errorf("BuildWithOptions: partition %s: %w", p, err)
		}
	}

	return Shield{Chart: c, Partitions: parts, Tours: tours}, nil
}

// Segment joins two consecutive houses of a tour.
type Segment struct {
	From, To int
}

// Segments lists every line of every tour, in tour order.
func (s Shield) Segments() []Segment {
	var out []Segment
	for _, t := range s.Tours {
		for i := 1; i < len(t.Path); i++ {
			out = append(out, Segment{From: t.Path[i-1], To: t.Path[i]})
		}
	}

	return out
}

// Members lists the houses of every tour in visiting order, tour by tour.
func (s Shield) Members() []int {
	var out []int
	for _, t := range s.Tours {
		out = append(out, t.Path...)
	}

	return out
}
