package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/layout"
	"github.com/katalvlaran/shieldchart/shield"
)

const (
	// radius of a partition circle; houses are 2·radius wide.
	radius = 10

	header = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-1.5 -1.5 123 123" width="246" height="246">` +
		`<path d="M0 0H120V120H0" fill="#fff"/>`
	frame  = `M0 60 60 0l60 60-60 60ZM0 0 30 30H90M120 0 90 30V90M120 120 90 90H30M0 120 30 90V30`
	border = `M-1.5-1.5h123v123h-123M0.5 0.5v119h119V0.5`
	footer = `</svg>`
)

// num formats a coordinate with at most two decimals.
func num(x float64) string {
	return strconv.FormatFloat(math.Round(x*100)/100, 'f', -1, 64)
}

func circle(b *strings.Builder, p layout.Point) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%d"/>`, num(p.X+radius), num(p.Y+radius), radius)
}

// line joins two house centres, trimmed by radius at both ends.
func line(b *strings.Builder, p, q layout.Point) {
	x, y := q.X-p.X, q.Y-p.Y
	k := radius / math.Hypot(x, y)
	x *= k
	y *= k
	fmt.Fprintf(b, "M%.2f %.2f %.2f %.2f", p.X+x+radius, p.Y+y+radius, q.X-x+radius, q.Y-y+radius)
}

// stroke draws the bar of an even row.
func stroke(b *strings.Builder, p layout.Point, row int) {
	fmt.Fprintf(b, "M%s %sh11l-1 2h-11", num(p.X+5), num(p.Y+float64(row*4)+3))
}

// dotRuns are the relative path bodies of n stacked dots (1 ≤ n ≤ 4).
var dotRuns = [...]string{
	1: "l2 2-2 2-2-2",
	2: "l2 2-4 4 2 2 2-2-4-4",
	3: "l2 2-4 4 4 4-2 2-2-2 4-4-4-4",
	4: "l2 2-4 4 4 4-4 4 2 2 2-2-4-4 4-4-4-4",
}

// dots draws a run of n odd rows starting at row.
func dots(b *strings.Builder, p layout.Point, row, n int) {
	fmt.Fprintf(b, "M%s %s%s", num(p.X+10), num(p.Y+float64(row*4)+2), dotRuns[n])
}

// glyphDots emits one dot run for every maximal run of odd rows in f.
func glyphDots(b *strings.Builder, p layout.Point, f figure.Figure) {
	var (
		row   int
		start = -1
	)
	for row = 0; row <= figure.Rows; row++ {
		odd := row < figure.Rows && f.Bit(row) == 1
		switch {
		case odd && start < 0:
			start = row
		case !odd && start >= 0:
			dots(b, p, start, row-start)
			start = -1
		}
	}
}

// SVG draws s.
func SVG(s shield.Shield) string {
	var (
		b   strings.Builder
		pos = layout.Positions()
	)
	b.WriteString(header)

	if len(s.Tours) != 0 {
		b.WriteString(`<g fill="none" stroke="#ccc">`)
		for _, h := range s.Members() {
			circle(&b, pos[h])
		}
		b.WriteString(`<path d="`)
		for _, seg := range s.Segments() {
			line(&b, pos[seg.From], pos[seg.To])
		}
		b.WriteString(`"/><path d="` + frame + `" stroke="#000"/></g>`)
	} else {
		b.WriteString(`<path d="` + frame + `" fill="none" stroke="#000"/>`)
	}

	b.WriteString(`<path d="` + border)
	var row int
	for i, f := range s.Chart {
		for row = 0; row < figure.Rows; row++ {
			if f.Bit(row) == 0 {
				stroke(&b, pos[i], row)
			}
		}
	}
	b.WriteString(`"/>`)

	if m := s.Chart.Mothers(); m[0]|m[1]|m[2]|m[3] != 0 {
		b.WriteString(`<path d="`)
		for i, f := range s.Chart {
			glyphDots(&b, pos[i], f)
		}
		b.WriteString(`" fill="#d22"/>`)
	}

	b.WriteString(footer)

	return b.String()
}
