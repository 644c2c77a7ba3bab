// SPDX-License-Identifier: MIT

package merge

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/richcluster/cluster"
	"github.com/katalvlaran/richcluster/linkage"
)

// ErrNotConverged is returned when Agglomerative hits MaxPasses while
// passes still merge.
var ErrNotConverged = errors.New("merge: merge loop did not converge")

// Strategy merges the clusters of p in place.
type Strategy interface {
	Merge(ctx context.Context, p *cluster.Partition) (Stats, error)
}

var (
	_ Strategy = (*Agglomerative)(nil)
	_ Strategy = (*Dice)(nil)
)

// Stats summarizes one Merge call.
type Stats struct {
	// Passes counts agglomerative passes, or clusters finalized by Dice.
	Passes int `json:"passes"`
	// Merges counts MergeInto calls.
	Merges int `json:"merges"`
	// PassMerges holds the merge count of each pass, in order.
	PassMerges []int `json:"pass_merges,omitempty"`
}

func (s *Stats) record(merged int) {
	s.Passes++
	s.Merges += merged
	s.PassMerges = append(s.PassMerges, merged)
}

// Agglomerative is the linkage-driven pass loop.
type Agglomerative struct {
	Scorer *linkage.Scorer
	// MaxPasses caps the loop; 0 means unlimited.
	MaxPasses int
}

// NewAgglomerative returns an uncapped Agglomerative strategy.
func NewAgglomerative(s *linkage.Scorer) *Agglomerative { return &Agglomerative{Scorer: s} }

// Merge runs passes until one merges nothing. Context cancellation is
// checked between passes.
func (a *Agglomerative) Merge(ctx context.Context, p *cluster.Partition) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if a.MaxPasses > 0 && stats.Passes >= a.MaxPasses {
			return stats, fmt.Errorf("%w after %d passes", ErrNotConverged, stats.Passes)
		}

		merged := 0
		for h, ok := p.First(); ok; h, ok = p.Next(h) {
			if partner, found := a.bestPartner(p, h); found {
				p.MergeInto(h, partner)
				merged++
			}
		}
		stats.record(merged)
		if merged == 0 {
			return stats, nil
		}
	}
}

// bestPartner returns the live cluster other than h with the strictly
// highest linkage above the cutoff. Ties keep the earliest handle.
func (a *Agglomerative) bestPartner(p *cluster.Partition, h cluster.Handle) (cluster.Handle, bool) {
	c1 := p.Get(h)
	var best cluster.Handle
	bestScore, found := math.Inf(-1), false
	for o, ok := p.First(); ok; o, ok = p.Next(o) {
		if o == h {
			continue
		}
		score := a.Scorer.Score(c1, p.Get(o))
		if score > a.Scorer.Cutoff() && score > bestScore {
			best, bestScore, found = o, score, true
		}
	}

	return best, found
}

// Dice is the DAVID work-list merge.
type Dice struct {
	// Threshold is the exclusive lower bound on the Dice coefficient.
	Threshold float64
}

// Merge absorbs clusters by Dice overlap. Survivors keep partition order.
// Context cancellation is checked before each cluster is grown.
func (d *Dice) Merge(ctx context.Context, p *cluster.Partition) (Stats, error) {
	var stats Stats
	work := p.Handles()
	for len(work) > 0 {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		cur := work[0]
		work = work[1:]

		merged := 0
		for {
			at, found := d.bestPartner(p.Get(cur), p, work)
			if !found {
				break
			}
			p.MergeInto(cur, work[at])
			work = append(work[:at], work[at+1:]...)
			merged++
		}
		stats.record(merged)
	}

	return stats, nil
}

// bestPartner returns the position in work of the cluster with the
// strictly highest Dice coefficient above the threshold.
func (d *Dice) bestPartner(c *cluster.Cluster, p *cluster.Partition, work []cluster.Handle) (int, bool) {
	at, best := -1, 0.0
	for i, h := range work {
		score := cluster.Dice(c, p.Get(h))
		if score > d.Threshold && score > best {
			at, best = i, score
		}
	}

	return at, at >= 0
}
