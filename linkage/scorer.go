// SPDX-License-Identifier: MIT

package linkage

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/richcluster/cluster"
)

// SingleSentinel is the starting minimum of single linkage. It is what
// Score returns when no cross pair exists.
const SingleSentinel = 100.0

var (
	// ErrUnknownMethod is returned for unsupported linkage methods.
	ErrUnknownMethod = errors.New("linkage: unknown linkage method")

	// ErrNilDist is returned when New receives a nil accessor.
	ErrNilDist = errors.New("linkage: pairwise accessor is nil")
)

// DistFunc returns the precomputed similarity of terms i and j.
type DistFunc func(i, j int) float64

type scoreFunc func(a, b []int) float64

// Scorer computes linkage scores under one method.
type Scorer struct {
	method Method
	cutoff float64
	dist   DistFunc
	score  scoreFunc
}

// New binds method, cutoff and dist into a Scorer. Unknown methods are
// rejected here, never at Score time.
func New(method Method, cutoff float64, dist DistFunc) (*Scorer, error) {
	if dist == nil {
		return nil, ErrNilDist
	}
	s := &Scorer{method: method, cutoff: cutoff, dist: dist}
	switch method {
	case Single:
		s.score = s.single
	case Complete:
		s.score = s.complete
	case Average:
		s.score = s.average
	case Ward:
		s.score = s.ward
	case David:
		s.score = s.david
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	return s, nil
}

// Method returns the bound linkage method.
func (s *Scorer) Method() Method { return s.method }

// Cutoff returns the linkage cutoff.
func (s *Scorer) Cutoff() float64 { return s.cutoff }

// Score returns the linkage between a and b.
func (s *Scorer) Score(a, b *cluster.Cluster) float64 {
	return s.score(a.Members(), b.Members())
}

func (s *Scorer) single(a, b []int) float64 {
	best := SingleSentinel
	for _, i := range a {
		for _, j := range b {
			if i == j {
				continue
			}
			if d := s.dist(i, j); d < best {
				best = d
			}
		}
	}

	return best
}

func (s *Scorer) complete(a, b []int) float64 {
	best := 0.0
	for _, i := range a {
		for _, j := range b {
			if i == j {
				continue
			}
			if d := s.dist(i, j); d > best {
				best = d
			}
		}
	}

	return best
}

func (s *Scorer) average(a, b []int) float64 {
	total, pairs := s.crossSum(a, b)
	if pairs == 0 {
		return math.NaN()
	}

	return total / float64(pairs)
}

func (s *Scorer) ward(a, b []int) float64 {
	na, nb := float64(len(a)), float64(len(b))
	if na == 0 || nb == 0 {
		return 0
	}
	cross, _ := s.crossSum(a, b)
	dAB := cross / (na * nb)
	dAA := s.withinSum(a) / (na * na)
	dBB := s.withinSum(b) / (nb * nb)

	return (na * nb / (na + nb)) * (2*dAB - dAA - dBB)
}

func (s *Scorer) david(a, b []int) float64 {
	count := 0
	for _, i := range a {
		for _, j := range b {
			if i != j && s.dist(i, j) < s.cutoff {
				count++
			}
		}
	}

	return float64(count)
}

// crossSum sums dist over all cross pairs with i != j.
func (s *Scorer) crossSum(a, b []int) (float64, int) {
	total, pairs := 0.0, 0
	for _, i := range a {
		for _, j := range b {
			if i == j {
				continue
			}
			total += s.dist(i, j)
			pairs++
		}
	}

	return total, pairs
}

// withinSum sums dist over all ordered pairs of distinct members.
func (s *Scorer) withinSum(a []int) float64 {
	total := 0.0
	for _, i := range a {
		for _, j := range a {
			if i != j {
				total += s.dist(i, j)
			}
		}
	}

	return total
}
