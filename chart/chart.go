package chart

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/layout"
)

// ErrInvalidFigure indicates a Mother outside [0,15].
var ErrInvalidFigure = errors.New("chart: invalid mother figure")

const methodDerive = "Derive"

// House ranges inside a Chart.
const (
	FirstMother   = 0
	FirstDaughter = 4
	FirstNiece    = 8
	FirstWitness  = 12
	JudgeHouse    = 14
)

// Role names the position a house holds in the chart.
type Role int

const (
	Mother Role = iota
	Daughter
	Niece
	Witness
	Judge
)

var roleNames = [...]string{"mother", "daughter", "niece", "witness", "judge"}

func (r Role) String() string {
	if r < Mother || r > Judge {
		return fmt.Sprintf("Role(%d)", int(r))
	}

	return roleNames[r]
}

// RoleOf returns the role of house i. Indices outside [0,14] are reported
// as ok=false.
func RoleOf(i int) (Role, bool) {
	switch {
	case i < FirstMother || i > JudgeHouse:
		return 0, false
	case i < FirstDaughter:
		return Mother, true
	case i < FirstNiece:
		return Daughter, true
	case i < FirstWitness:
		return Niece, true
	case i < JudgeHouse:
		return Witness, true
	default:
		return Judge, true
	}
}

// Chart holds the fifteen houses in index order.
type Chart [layout.HouseCount]figure.Figure

// Derive builds the chart for mothers.
//
// Contract:
//   - every Mother must be a valid Figure; otherwise ErrInvalidFigure is
//     returned (wrapping figure.ErrOutOfRange) and the Chart is zero.
func Derive(mothers [4]figure.Figure) (Chart, error) {
	var i int
	for i = range mothers {
		if !mothers[i].Valid() {
			return Chart{}, fmt.Errorf("%s: mother %d: %w: %w",
				methodDerive, i, ErrInvalidFigure, figure.ErrOutOfRange)
		}
	}

	var c Chart
	copy(c[FirstMother:FirstDaughter], mothers[:])

	// Daughter j reads bit j of every Mother; Mother i lands on bit i.
	var (
		j int
		d figure.Figure
	)
	for j = 0; j < 4; j++ {
		d = 0
		for i = 0; i < 4; i++ {
			d |= figure.Figure(mothers[i].Bit(j)) << uint(i)
		}
		c[FirstDaughter+j] = d
	}

	// Each later house reduces one adjacent pair of the row above it.
	for i = 0; i < 4; i++ {
		c[FirstNiece+i] = c[2*i].Xor(c[2*i+1])
	}
	c[FirstWitness] = c[FirstNiece].Xor(c[FirstNiece+1])
	c[FirstWitness+1] = c[FirstNiece+2].Xor(c[FirstNiece+3])
	c[JudgeHouse] = c[FirstWitness].Xor(c[FirstWitness+1])

	return c, nil
}

// DeriveInts is Derive for untyped callers; each value must lie in [0,15].
func DeriveInts(a, b, c, d int) (Chart, error) {
	var (
		mothers [4]figure.Figure
		err     error
	)
	for i, v := range [4]int{a, b, c, d} {
		if mothers[i], err = figure.New(v); err != nil {
			return Chart{}, fmt.Errorf("%s: mother %d: %w: %w", methodDerive, i, ErrInvalidFigure, err)
		}
	}

	return Derive(mothers)
}

// Mothers returns houses 0–3.
func (c Chart) Mothers() [4]figure.Figure {
	return [4]figure.Figure{c[0], c[1], c[2], c[3]}
}

// Daughters returns houses 4–7.
func (c Chart) Daughters() [4]figure.Figure {
	return [4]figure.Figure{c[4], c[5], c[6], c[7]}
}

// Nieces returns houses 8–11.
func (c Chart) Nieces() [4]figure.Figure {
	return [4]figure.Figure{c[8], c[9], c[10], c[11]}
}

// Witnesses returns houses 12–13.
func (c Chart) Witnesses() [2]figure.Figure {
	return [2]figure.Figure{c[12], c[13]}
}

// Judge returns house 14.
func (c Chart) Judge() figure.Figure { return c[JudgeHouse] }

// Ints returns the houses as plain integers, convenient for encoders.
func (c Chart) Ints() []int {
	out := make([]int, len(c))
	for i, f := range c {
		out[i] = int(f)
	}

	return out
}
