package tour

import "errors"

var (
	// ErrTooFewIndices is returned when fewer than two houses are given.
	ErrTooFewIndices = errors.New("tour: need at least two house indices")

	// ErrIndexOutOfRange is returned for an index outside the house layout.
	ErrIndexOutOfRange = errors.New("tour: house index out of range")

	// ErrDuplicateIndex is returned when a house appears more than once.
	ErrDuplicateIndex = errors.New("tour: duplicate house index")

	// ErrBadOptions is returned for a negative Eps or an unknown Bound.
	ErrBadOptions = errors.New("tour: invalid options")
)

// DefaultEps is the absolute tolerance used to compare path lengths.
const DefaultEps = 1e-9

// Bound selects the lower bound used for pruning.
type Bound int

const (
	// EntryBound adds, for every unvisited house, its cheapest entering edge.
	EntryBound Bound = iota
	// NoBound prunes on the accumulated length alone.
	NoBound
)

// Options tunes Plan.
type Options struct {
	// Eps is the tolerance for "strictly shorter"; it must be ≥ 0.
	// It keeps floating-point summation order from breaking ties.
	Eps float64

	// Bound selects the pruning bound; the zero value is EntryBound.
	Bound Bound
}

// DefaultOptions returns Eps = DefaultEps and the entry bound.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, Bound: EntryBound}
}

// Result is an optimal open path.
type Result struct {
	// Path lists the house indices in visiting order.
	Path []int

	// Length is the total Euclidean length of the path, rounded to 1e-9.
	Length float64
}
