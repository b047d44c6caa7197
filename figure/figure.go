package figure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange indicates a value that does not fit into four bits.
var ErrOutOfRange = errors.New("figure: value out of range [0,15]")

const (
	// Rows is the number of binary rows in a Figure.
	Rows = 4
	// Count is the number of distinct Figures.
	Count = 1 << Rows
	// Mask keeps the four row bits of a value.
	Mask = Count - 1
)

// Figure is a 4-bit vector; bit i is row i counted from the head.
type Figure uint8

// New converts v into a Figure, rejecting anything outside [0,15].
func New(v int) (Figure, error) {
	if v < 0 || v > Mask {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}

	return Figure(v), nil
}

// Valid reports whether f fits into four bits.
func (f Figure) Valid() bool { return f <= Mask }

// Bit returns row i of f as 0 or 1. Rows outside [0,3] read as 0.
func (f Figure) Bit(i int) uint8 {
	if i < 0 || i >= Rows {
		return 0
	}

	return uint8(f>>uint(i)) & 1
}

// Xor combines two figures row by row.
func (f Figure) Xor(g Figure) Figure { return (f ^ g) & Mask }

// Points returns the point count of every row, head first:
// 1 for an odd (set) row, 2 for an even (clear) row.
func (f Figure) Points() [Rows]int {
	var (
		out [Rows]int
		i   int
	)
	for i = 0; i < Rows; i++ {
		out[i] = 2 - int(f.Bit(i))
	}

	return out
}

// String draws f as four text lines, head first.
func (f Figure) String() string {
	var (
		b strings.Builder
		i int
	)
	for i = 0; i < Rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if f.Bit(i) == 1 {
			b.WriteString("  *  ")
		} else {
			b.WriteString("*   *")
		}
	}

	return b.String()
}

// Hex returns the single lowercase hex digit naming f.
func (f Figure) Hex() string { return fmt.Sprintf("%x", uint8(f&Mask)) }
