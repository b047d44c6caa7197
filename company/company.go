// Package company holds the fixed relation telling which pairs of figures are
// linked when they sit side by side in a chart.
//
// The relation covers demi-simple and compound company. Simple company (two
// houses holding the same figure) needs no table entry: partition building
// already groups equal figures. Capitular company is not tracked.
//
// The table is opaque domain data, kept verbatim as sixteen-by-sixteen bits
// packed into eight 32-bit words: the entry for (x, y) is bit x|y<<4 of the
// packed stream. It is decoded once at package initialisation, checked for
// symmetry, and never mutated afterwards, so lookups are safe from any number
// of goroutines.
package company

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shieldchart/figure"
)

// ErrAsymmetric indicates a table where (x, y) and (y, x) disagree.
var ErrAsymmetric = errors.New("company: relation is not symmetric")

var packed = [8]uint32{
	0x45008000, 0x10000890, 0x64000044, 0x4b040210,
	0x01c00282, 0x20844022, 0x48200008, 0x000124a2,
}

var table = decode(packed)

func init() {
	if err := validate(&table); err != nil {
		panic(err)
	}
}

// decode unpacks the bit stream into a boolean matrix.
func decode(words [8]uint32) [figure.Count][figure.Count]bool {
	var (
		out  [figure.Count][figure.Count]bool
		x, y int
		k    uint
	)
	for x = 0; x < figure.Count; x++ {
		for y = 0; y < figure.Count; y++ {
			k = uint(x | y<<4)
			out[x][y] = (words[k>>5]>>(k&31))&1 == 1
		}
	}

	return out
}

func validate(t *[figure.Count][figure.Count]bool) error {
	var x, y int
	for x = 0; x < figure.Count; x++ {
		for y = x + 1; y < figure.Count; y++ {
			if t[x][y] != t[y][x] {
				return fmt.Errorf("%w: (%d,%d)", ErrAsymmetric, x, y)
			}
		}
	}

	return nil
}

// Validate re-checks the symmetry invariant of the built-in relation.
func Validate() error { return validate(&table) }

// Has reports whether figures x and y are in company.
// Values outside [0,15] are never in company.
func Has(x, y figure.Figure) bool {
	if !x.Valid() || !y.Valid() {
		return false
	}

	return table[x][y]
}

// Partners lists, in ascending order, every figure in company with x.
func Partners(x figure.Figure) []figure.Figure {
	if !x.Valid() {
		return nil
	}
	var out []figure.Figure
	for y := figure.Figure(0); y < figure.Count; y++ {
		if table[x][y] {
			out = append(out, y)
		}
	}

	return out
}
