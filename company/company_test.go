package company_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shieldchart/company"
	"github.com/katalvlaran/shieldchart/figure"
)

func TestValidate_BuiltInTable(t *testing.T) {
	require.NoError(t, company.Validate())
}

func TestHas_Symmetric(t *testing.T) {
	for x := figure.Figure(0); x < figure.Count; x++ {
		for y := figure.Figure(0); y < figure.Count; y++ {
			assert.Equal(t, company.Has(x, y), company.Has(y, x), "(%d,%d)", x, y)
		}
	}
}

func TestHas_NoSelfCompany(t *testing.T) {
	for x := figure.Figure(0); x < figure.Count; x++ {
		assert.False(t, company.Has(x, x), "figure %d", x)
	}
}

// TestPartners_KnownRows pins a few rows of the verbatim table.
func TestPartners_KnownRows(t *testing.T) {
	cases := map[figure.Figure][]figure.Figure{
		0:  {15},
		3:  {12},
		7:  {2, 8, 9, 11, 14},
		14: {1, 5, 7, 10, 13},
	}
	for x, want := range cases {
		assert.Equal(t, want, company.Partners(x), "figure %d", x)
	}
	assert.True(t, company.Has(3, 12))
	assert.False(t, company.Has(1, 2))
}

func TestHas_OutOfRange(t *testing.T) {
	assert.False(t, company.Has(16, 0))
	assert.False(t, company.Has(0, 16))
	assert.Nil(t, company.Partners(16))
}

func TestPartners_EdgeCount(t *testing.T) {
	total := 0
	for x := figure.Figure(0); x < figure.Count; x++ {
		total += len(company.Partners(x))
	}
	// 21 unordered pairs, counted from both ends.
	assert.Equal(t, 42, total)
}
