package tour

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/shieldchart/layout"
)

// engine holds the search data for one Plan call.
type engine struct {
	n        int
	eps      float64
	useBound bool

	// nodes[k] is the house behind search vertex k, ascending.
	nodes []int

	// w[u*n+v] is the distance between search vertices u and v.
	w []float64

	// minIn[v] is the cheapest edge entering v from any other vertex.
	minIn []float64

	visited []bool
	path    []int // path[0:depth] as search vertices

	bestPath []int
	bestLen  float64
}

func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

func (e *engine) prefetch(pos *layout.Table) {
	var u, v int
	e.w = make([]float64, e.n*e.n)
	for u = 0; u < e.n; u++ {
		for v = 0; v < e.n; v++ {
			if u != v {
				e.w[u*e.n+v] = pos.Distance(e.nodes[u], e.nodes[v])
			}
		}
	}

	e.minIn = make([]float64, e.n)
	for v = 0; v < e.n; v++ {
		e.minIn[v] = math.Inf(1)
		for u = 0; u < e.n; u++ {
			if u != v && e.at(u, v) < e.minIn[v] {
				e.minIn[v] = e.at(u, v)
			}
		}
	}
}

// lowerBound is lengthSoFar plus, when enabled, the cheapest entering edge of
// every unvisited vertex. Each of them is entered exactly once by any
// completion, so the bound never exceeds the best completion.
func (e *engine) lowerBound(lengthSoFar float64) float64 {
	if !e.useBound {
		return lengthSoFar
	}
	lb := lengthSoFar
	for v := 0; v < e.n; v++ {
		if !e.visited[v] {
			lb += e.minIn[v]
		}
	}

	return lb
}

func (e *engine) dfs(depth int, lengthSoFar float64) {
	if depth == e.n {
		copy(e.bestPath, e.path)
		e.bestLen = lengthSoFar

		return
	}

	var (
		v    int
		next float64
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		next = lengthSoFar
		if depth > 0 {
			next += e.at(e.path[depth-1], v)
		}

		e.visited[v] = true
		if e.lowerBound(next) < e.bestLen-e.eps {
			e.path[depth] = v
			e.dfs(depth+1, next)
		}
		e.visited[v] = false
	}
}

// Plan returns the shortest open path visiting every house in indices.
// The order of indices does not matter; the result is deterministic.
//
// Contract:
//   - len(indices) ≥ 2, every index a distinct house of pos.
//   - opts.Eps ≥ 0.
func Plan(indices []int, pos layout.Table, opts Options) (Result, error) {
	nodes, err := normalize(indices)
	if err != nil {
		return Result{}, fmt.Errorf("Plan: %w", err)
	}
	if opts.Eps < 0 || (opts.Bound != EntryBound && opts.Bound != NoBound) {
		return Result{}, fmt.Errorf("Plan: %w", ErrBadOptions)
	}

	var e engine
	e.n = len(nodes)
	e.eps = opts.Eps
	e.useBound = opts.Bound == EntryBound
	e.nodes = nodes
	e.prefetch(&pos)

	e.visited = make([]bool, e.n)
	e.path = make([]int, e.n)
	e.bestPath = make([]int, e.n)
	e.bestLen = math.Inf(1)

	e.dfs(0, 0)

	out := make([]int, e.n)
	for k, v := range e.bestPath {
		out[k] = e.nodes[v]
	}

	return Result{Path: out, Length: round1e9(e.bestLen)}, nil
}

// normalize validates indices and returns them as a sorted copy.
func normalize(indices []int) ([]int, error) {
	if len(indices) < 2 {
		return nil, ErrTooFewIndices
	}
	nodes := slices.Clone(indices)
	slices.Sort(nodes)
	for k, v := range nodes {
		if !layout.Valid(v) {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, v)
		}
		if k > 0 && nodes[k-1] == v {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, v)
		}
	}

	return nodes, nil
}
