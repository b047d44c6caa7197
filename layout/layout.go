// Package layout holds the fixed drawing positions of the fifteen houses of a
// shield chart.
//
// The table is purely geometric: it is used to measure distances between
// houses (tour planning) and to place glyphs (rendering). It never depends on
// the figures a chart holds.
//
// Positions are the top-left corners of 20×20 house cells on a 120×120 canvas:
// Mothers and Daughters run around the outer ring, Nieces follow them, the
// Witnesses sit inside, and the Judge sits on the centre line above them.
package layout

import "math"

// HouseCount is the number of houses in a chart.
const HouseCount = 15

// inset is the diagonal inset applied to ring positions (30·√2 − 40, rounded).
const inset = 2.43

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Table maps every house index to its Point. Tables are values: copies are
// independent, so a Table returned by Positions can never alter the default.
type Table [HouseCount]Point

var positions = Table{
	{10 - inset, 50},
	{0 + inset, 80},
	{20, 100 - inset},
	{50, 90 + inset},
	{80, 100 - inset},
	{100 - inset, 80},
	{90 + inset, 50},
	{100 - inset, 20},
	{80, 0 + inset},
	{50, 10 - inset},
	{20, 0 + inset},
	{0 + inset, 20},
	{70 - inset, 30 + inset},
	{30 + inset, 30 + inset},
	{50, 70 - inset},
}

// Positions returns the standard house layout.
func Positions() Table { return positions }

// Valid reports whether i names a house.
func Valid(i int) bool { return i >= 0 && i < HouseCount }

// Distance returns the Euclidean distance between houses i and j.
// Both indices must be valid house indices.
func (t *Table) Distance(i, j int) float64 {
	a, b := t[i], t[j]

	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
