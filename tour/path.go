package tour

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/shieldchart/layout"
)

// roundScale stabilises reported lengths against summation-order noise.
const roundScale = 1e9

func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// Length returns the total length of the open path through pos.
//
// Errors: ErrIndexOutOfRange for an index outside the layout.
func Length(path []int, pos layout.Table) (float64, error) {
	var (
		sum float64
		i   int
	)
	for i = range path {
		if !layout.Valid(path[i]) {
			return 0, fmt.Errorf("Length: %w: %d", ErrIndexOutOfRange, path[i])
		}
		if i > 0 {
			sum += pos.Distance(path[i-1], path[i])
		}
	}

	return round1e9(sum), nil
}

// ValidatePath checks that path visits exactly the houses in indices, each
// once, in any order.
//
// Errors: ErrDuplicateIndex, ErrIndexOutOfRange (a foreign or missing house).
func ValidatePath(path, indices []int) error {
	want, err := normalize(indices)
	if err != nil {
		return err
	}
	if len(path) != len(want) {
		return fmt.Errorf("ValidatePath: %w: got %d houses, want %d", ErrIndexOutOfRange, len(path), len(want))
	}
	got := slices.Clone(path)
	slices.Sort(got)
	for k := range got {
		if k > 0 && got[k-1] == got[k] {
			return fmt.Errorf("ValidatePath: %w: %d", ErrDuplicateIndex, got[k])
		}
		if got[k] != want[k] {
			return fmt.Errorf("ValidatePath: %w: %d", ErrIndexOutOfRange, got[k])
		}
	}

	return nil
}
