package chart_test

import (
	"fmt"

	"github.com/katalvlaran/shieldchart/chart"
)

// ExampleDerive derives the chart whose Mothers each carry a single odd row.
// The Daughters repeat the Mothers because the bit matrix is the identity.
func ExampleDerive() {
	c, err := chart.DeriveInts(1, 2, 4, 8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	h := c.Ints()
	fmt.Println("daughters:", h[4:8])
	fmt.Println("nieces:   ", h[8:12])
	fmt.Println("witnesses:", h[12:14])
	fmt.Println("judge:    ", int(c.Judge()))
	// Output:
	// daughters: [1 2 4 8]
	// nieces:    [3 12 3 12]
	// witnesses: [15 15]
	// judge:     0
}
