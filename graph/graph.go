// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Similarity graph storage, construction and neighborhood queries.
// Determinism:
//   - Neighbors() returns ascending indices.
//   - Build() visits ordered pairs in (i asc, j asc) order.

package graph

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/richcluster/matrix"
)

// ErrOutOfRange is the panic payload for node indices outside [0, Len()).
var ErrOutOfRange = errors.New("graph: node index out of range")

// Option configures Build.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict requires score > cutoff instead of score >= cutoff.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Graph is an undirected adjacency structure over term indices.
type Graph struct {
	rows   []*bitset.BitSet
	edges  int
	cutoff float64
	strict bool
}

// New returns an edgeless graph with n nodes.
func New(n int) *Graph {
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(n))
	}

	return &Graph{rows: rows}
}

// Build joins every ordered pair (i, j), i ≠ j, whose score passes cutoff.
// The matrix diagonal is never consulted.
//
// Complexity: Time O(n²), Space O(n²/64).
func Build(m *matrix.Similarity, cutoff float64, opts ...Option) *Graph {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := m.Len()
	g := New(n)
	g.cutoff, g.strict = cutoff, o.strict
	for i := range n {
		for j := range n {
			if i == j {
				continue
			}
			if g.Passes(m.At(i, j)) {
				g.AddEdge(i, j)
			}
		}
	}

	return g
}

// Passes reports whether a score clears the cutoff the graph was built with.
// On a graph from New the cutoff is zero with the non-strict predicate.
func (g *Graph) Passes(score float64) bool {
	if g.strict {
		return score > g.cutoff
	}

	return score >= g.cutoff
}

// Cutoff returns the cutoff the graph was built with.
func (g *Graph) Cutoff() float64 { return g.cutoff }

// row returns the adjacency row of i, panicking on bad indices.
func (g *Graph) row(i int) *bitset.BitSet {
	if i < 0 || i >= len(g.rows) {
		panic(fmt.Errorf("graph: node %d of %d: %w", i, len(g.rows), ErrOutOfRange))
	}

	return g.rows[i]
}

// AddEdge records the undirected edge {i, j}. Self-loops and repeated edges
// are ignored.
func (g *Graph) AddEdge(i, j int) {
	if i == j {
		return
	}
	ri, rj := g.row(i), g.row(j)
	if ri.Test(uint(j)) {
		return
	}
	ri.Set(uint(j))
	rj.Set(uint(i))
	g.edges++
}

// HasNeighbor reports whether {i, j} is an edge.
func (g *Graph) HasNeighbor(i, j int) bool {
	if j < 0 {
		return false
	}

	return g.row(i).Test(uint(j))
}

// Neighbors returns the neighbors of i in ascending order.
func (g *Graph) Neighbors(i int) []int {
	r := g.row(i)
	out := make([]int, 0, r.Count())
	for j, ok := r.NextSet(0); ok; j, ok = r.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}

// Degree returns the number of neighbors of i.
func (g *Graph) Degree(i int) int { return int(g.row(i).Count()) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.rows) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }
