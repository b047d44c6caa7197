package partition_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shieldchart/chart"
	"github.com/katalvlaran/shieldchart/company"
	"github.com/katalvlaran/shieldchart/partition"
)

func indices(ps []partition.Partition) [][]int {
	out := make([][]int, len(ps))
	for i, p := range ps {
		out[i] = p.Indices()
	}

	return out
}

// referenceClusters links houses pairwise with a plain union-find and returns
// every cluster of two or more houses, sorted by smallest member.
func referenceClusters(ch chart.Chart) [][]int {
	parent := make([]int, len(ch))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	for i := range ch {
		for j := i + 1; j < len(ch); j++ {
			if ch[i] == ch[j] {
				union(i, j)
			}
		}
	}
	for k := 0; k < 7; k++ {
		if company.Has(ch[2*k], ch[2*k+1]) {
			union(2*k, 2*k+1)
		}
	}

	byRoot := map[int][]int{}
	for i := range ch {
		r := find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	var out [][]int
	for _, c := range byRoot {
		if len(c) >= 2 {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func sortedByFirst(in [][]int) [][]int {
	out := append([][]int(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func TestBuild_WorkedExample(t *testing.T) {
	ch, err := chart.DeriveInts(1, 2, 4, 8)
	require.NoError(t, err)

	ps, err := partition.Build(ch)
	require.NoError(t, err)

	want := [][]int{
		{0, 4},         // figure 1
		{1, 5},         // figure 2
		{8, 9, 10, 11}, // figure 3, merged with 12 through the niece pairs
		{2, 6},         // figure 4
		{3, 7},         // figure 8
		{12, 13},       // figure 15
	}
	assert.Equal(t, want, indices(ps))
}

// TestBuild_LaterPairBridgesGroups builds a chart in which figure 8 (houses 1
// and 6) and figure 9 (houses 3 and 7) each form a same-figure group, and only
// the pair (6,7) bridges them through company.
func TestBuild_LaterPairBridgesGroups(t *testing.T) {
	ch := chart.Chart{1, 8, 7, 9, 0, 2, 8, 9, 3, 4, 5, 6, 10, 11, 12}
	require.True(t, company.Has(8, 9))

	ps, err := partition.Build(ch)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 6, 7}}, indices(ps))
}

func TestBuild_WithoutBridge(t *testing.T) {
	ch := chart.Chart{1, 8, 7, 9, 0, 2, 8, 13, 3, 4, 5, 6, 10, 11, 12}
	require.False(t, company.Has(8, 13))

	ps, err := partition.Build(ch)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 6}, {2, 3}}, indices(ps))
}

// TestBuild_JudgeOnlyBySameFigure: house 14 is never paired, so company
// between house 13 and house 14 must not link them.
func TestBuild_JudgeOnlyBySameFigure(t *testing.T) {
	ch := chart.Chart{0, 1, 2, 3, 4, 5, 6, 8, 7, 10, 9, 11, 15, 12, 3}
	require.True(t, company.Has(12, 3))

	ps, err := partition.Build(ch)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 14}}, indices(ps))
}

func TestBuild_NoClusters(t *testing.T) {
	// Fifteen distinct figures, no pair in company.
	ch := chart.Chart{0, 1, 2, 3, 4, 5, 6, 8, 7, 10, 9, 11, 12, 13, 14}
	for k := 0; k < 7; k++ {
		require.False(t, company.Has(ch[2*k], ch[2*k+1]), "pair %d", k)
	}

	ps, err := partition.Build(ch)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestBuild_InvalidChart(t *testing.T) {
	ch := chart.Chart{}
	ch[5] = 16
	_, err := partition.Build(ch)
	assert.True(t, errors.Is(err, partition.ErrInvalidChart))
}

// TestBuild_MatchesReference compares Build against the union-find reference
// on every derivable chart and checks coverage and disjointness.
func TestBuild_MatchesReference(t *testing.T) {
	var a, b, c, d int
	for a = 0; a < 16; a++ {
		for b = 0; b < 16; b++ {
			for c = 0; c < 16; c++ {
				for d = 0; d < 16; d++ {
					ch, err := chart.DeriveInts(a, b, c, d)
					require.NoError(t, err)
					ps, err := partition.Build(ch)
					require.NoError(t, err)

					got := indices(ps)
					seen := map[int]bool{}
					for _, p := range got {
						if len(p) < partition.MinSize {
							t.Fatalf("%x%x%x%x: partition %v too small", a, b, c, d, p)
						}
						for _, h := range p {
							if seen[h] {
								t.Fatalf("%x%x%x%x: house %d in two partitions", a, b, c, d, h)
							}
							seen[h] = true
						}
					}
					want := referenceClusters(ch)
					if !assert.Equal(t, want, sortedByFirst(got), "%x%x%x%x", a, b, c, d) {
						return
					}
				}
			}
		}
	}
}

func TestPartition_Accessors(t *testing.T) {
	p := partition.Of(9, 2, 2, 14, 15, -1)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{2, 9, 14}, p.Indices())
	assert.True(t, p.Contains(9))
	assert.False(t, p.Contains(3))
	assert.False(t, p.Contains(15))
	assert.True(t, p.Equal(partition.Of(14, 9, 2)))
	assert.False(t, p.Equal(partition.Of(2, 9)))
	assert.Equal(t, "{2 9 14}", p.String())

	var zero partition.Partition
	assert.Zero(t, zero.Len())
	assert.Nil(t, zero.Indices())
	assert.True(t, zero.Equal(partition.Of()))
}
