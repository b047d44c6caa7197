// Package figure defines the 4-bit geomantic Figure, the value held by every
// house of a shield chart.
//
// What:
//
//   - Figure is an integer in [0,15] read as four independent binary rows.
//   - Bit i is row i counted from the head (bit 0 = head, bit 3 = feet).
//   - A set bit is an odd row (one point), a clear bit is an even row (two points).
//
// Operations are element-wise: Xor combines two figures row by row, with no
// carries between rows.
//
// Errors:
//
//   - ErrOutOfRange: a value outside [0,15] was offered as a Figure.
package figure
