// SPDX-License-Identifier: MIT

package seed

import (
	"math"

	"github.com/katalvlaran/richcluster/cluster"
	"github.com/katalvlaran/richcluster/graph"
	"github.com/katalvlaran/richcluster/linkage"
	"github.com/katalvlaran/richcluster/matrix"
)

// Strategy builds the seed clusters of a run.
type Strategy interface {
	Seeds(g *graph.Graph, m *matrix.Similarity) []*cluster.Cluster
}

var (
	_ Strategy = (*Greedy)(nil)
	_ Strategy = (*David)(nil)
)

// Greedy grows one seed per graph node under a linkage scorer.
type Greedy struct {
	Scorer *linkage.Scorer
}

// NewGreedy returns a Greedy strategy bound to s.
func NewGreedy(s *linkage.Scorer) *Greedy { return &Greedy{Scorer: s} }

// Seeds returns one seed per node of g, in node order. m is not consulted;
// the scorer carries its own pairwise accessor.
func (s *Greedy) Seeds(g *graph.Graph, _ *matrix.Similarity) []*cluster.Cluster {
	out := make([]*cluster.Cluster, 0, g.Len())
	for node := range g.Len() {
		out = append(out, s.Grow(node, g.Neighbors(node)))
	}

	return out
}

// Grow builds the seed of node from its ascending neighbor list.
func (s *Greedy) Grow(node int, neighbors []int) *cluster.Cluster {
	seed := cluster.New(node)
	for {
		best, bestScore := -1, math.Inf(-1)
		for _, n := range neighbors {
			if seed.Contains(n) {
				continue
			}
			// strict > keeps the lowest index on ties
			if score := s.Scorer.Score(seed, cluster.New(n)); score > bestScore {
				best, bestScore = n, score
			}
		}
		if best < 0 || bestScore < s.Scorer.Cutoff() {
			return seed
		}
		seed.Add(best)
	}
}

// David qualifies nodes by neighborhood density, as in DAVID functional
// annotation clustering.
type David struct {
	// InitialGroupMembership is the minimum seed size, node included.
	InitialGroupMembership int
	// MultipleLinkageThreshold is the fraction of neighborhood pairs that
	// must pass the graph cutoff, exclusive.
	MultipleLinkageThreshold float64
}

// Seeds returns the closed neighborhood of every qualified node, in node
// order. Pairs are tested against m with the predicate g was built with.
func (s *David) Seeds(g *graph.Graph, m *matrix.Similarity) []*cluster.Cluster {
	var out []*cluster.Cluster
	for node := range g.Len() {
		if seed, ok := s.qualify(node, g, m); ok {
			out = append(out, seed)
		}
	}

	return out
}

func (s *David) qualify(node int, g *graph.Graph, m *matrix.Similarity) (*cluster.Cluster, bool) {
	if g.Degree(node) < s.InitialGroupMembership-1 {
		return nil, false
	}
	seed := cluster.New(g.Neighbors(node)...)
	seed.Add(node)

	members := seed.Members()
	pairs, passed := 0, 0
	for k := range members {
		for l := k + 1; l < len(members); l++ {
			pairs++
			if g.Passes(m.At(members[k], members[l])) {
				passed++
			}
		}
	}
	if pairs == 0 || float64(passed)/float64(pairs) <= s.MultipleLinkageThreshold {
		return nil, false
	}

	return seed, true
}
