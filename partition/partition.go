package partition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/shieldchart/chart"
	"github.com/katalvlaran/shieldchart/company"
	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/layout"
)

// ErrInvalidChart indicates a chart holding a value outside [0,15].
var ErrInvalidChart = errors.New("partition: chart holds an invalid figure")

// MinSize is the smallest cluster reported by Build.
const MinSize = 2

// pairCount is the number of fixed house pairs checked for company.
const pairCount = 7

// Partition is a set of house indices.
type Partition struct {
	bits *bitset.BitSet
}

// Of builds a Partition from explicit house indices; indices outside
// [0,14] are ignored.
func Of(indices ...int) Partition {
	b := bitset.New(layout.HouseCount)
	for _, i := range indices {
		if layout.Valid(i) {
			b.Set(uint(i))
		}
	}

	return Partition{bits: b}
}

// Len returns the number of houses in p.
func (p Partition) Len() int {
	if p.bits == nil {
		return 0
	}

	return int(p.bits.Count())
}

// Contains reports whether house i belongs to p.
func (p Partition) Contains(i int) bool {
	return p.bits != nil && layout.Valid(i) && p.bits.Test(uint(i))
}

// Indices returns the member houses in ascending order.
func (p Partition) Indices() []int {
	if p.bits == nil {
		return nil
	}
	out := make([]int, 0, p.bits.Count())
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Equal reports whether p and q have identical membership.
func (p Partition) Equal(q Partition) bool {
	if p.bits == nil || q.bits == nil {
		return p.Len() == 0 && q.Len() == 0
	}

	return p.bits.Equal(q.bits)
}

func (p Partition) String() string {
	idx := p.Indices()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// Build returns the clusters of ch with at least MinSize houses.
// The result is empty (nil) when no two houses are linked.
func Build(ch chart.Chart) ([]Partition, error) {
	var (
		groups [figure.Count]*bitset.BitSet
		i      int
		f      figure.Figure
	)
	for i = range groups {
		groups[i] = bitset.New(layout.HouseCount)
	}
	for i, f = range ch {
		if !f.Valid() {
			return nil, fmt.Errorf("Build: house %d: %w", i, ErrInvalidChart)
		}
		groups[f].Set(uint(i))
	}

	var a, b figure.Figure
	for i = 0; i < pairCount; i++ {
		a, b = ch[2*i], ch[2*i+1]
		if company.Has(a, b) {
			mergeClosure(&groups, groups[a].Union(groups[b]))
		}
	}

	var out []Partition
	for i = range groups {
		if groups[i].Count() < MinSize || seen(out, groups[i]) {
			continue
		}
		out = append(out, Partition{bits: groups[i].Clone()})
	}

	return out, nil
}

// mergeClosure grows merged with every group it intersects until it reaches
// a fixed point, then hands the merged membership to all of those groups.
func mergeClosure(groups *[figure.Count]*bitset.BitSet, merged *bitset.BitSet) {
	var (
		g       int
		changed = true
	)
	for changed {
		changed = false
		for g = range groups {
			if groups[g].IntersectionCardinality(merged) > 0 && !merged.IsSuperSet(groups[g]) {
				merged.InPlaceUnion(groups[g])
				changed = true
			}
		}
	}
	for g = range groups {
		if groups[g].IntersectionCardinality(merged) > 0 {
			groups[g] = merged.Clone()
		}
	}
}

func seen(out []Partition, b *bitset.BitSet) bool {
	for _, p := range out {
		if p.bits.Equal(b) {
			return true
		}
	}

	return false
}
