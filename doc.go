// Package shieldchart derives geomantic shield charts and the geometry used
// to draw them.
//
// A chart is fifteen houses computed from four Mother figures. Houses that
// hold the same figure, or that form a fixed pair whose figures are in
// company, are linked; linked houses are circled on the drawing and joined by
// the shortest open path through them.
//
// Everything is organised in small subpackages, leaf first:
//
//	figure/    the 4-bit Figure and its row-wise operations
//	layout/    fixed drawing positions of the fifteen houses
//	company/   the constant company relation between figures
//	chart/     Mothers → fifteen houses
//	partition/ clusters of linked houses
//	tour/      exact shortest open path through a cluster (Branch-and-Bound)
//	shield/    chart + partitions + tours in one call
//	render/    SVG / SVGZ drawing
//	batch/     parallel rendering of every Mother combination
//	config/    YAML settings for the command
//
// The shieldchart command lives in cmd/shieldchart.
//
// Quick example:
//
//	s, _ := shield.Build([4]figure.Figure{1, 2, 4, 8})
//	for i, p := range s.Partitions {
//		fmt.Println(p, s.Tours[i].Path)
//	}
package shieldchart
