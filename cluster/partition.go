// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
)

// ErrEmptyCluster is the panic payload when an empty cluster is added.
var ErrEmptyCluster = errors.New("cluster: empty cluster cannot join a partition")

// ErrStaleHandle is the panic payload when a removed or unknown handle is used.
var ErrStaleHandle = errors.New("cluster: stale or unknown handle")

// Handle addresses one cluster of a Partition. Handles stay valid until
// the cluster they name is removed; they are never reused.
type Handle int

// Partition is an ordered, exclusively owning collection of clusters.
// The zero value is an empty partition ready to use.
type Partition struct {
	slots []*Cluster // nil marks a removed cluster
	live  int
}

// NewPartition returns a partition holding clusters in order.
func NewPartition(clusters ...*Cluster) *Partition {
	p := &Partition{slots: make([]*Cluster, 0, len(clusters))}
	for _, c := range clusters {
		p.Add(c)
	}

	return p
}

// Add appends c and returns its handle. The partition takes ownership.
// Panics with ErrEmptyCluster if c is empty.
func (p *Partition) Add(c *Cluster) Handle {
	if c == nil || c.IsEmpty() {
		panic(ErrEmptyCluster)
	}
	p.slots = append(p.slots, c)
	p.live++

	return Handle(len(p.slots) - 1)
}

// Get returns the cluster behind h, or nil if it was removed.
func (p *Partition) Get(h Handle) *Cluster {
	if int(h) < 0 || int(h) >= len(p.slots) {
		return nil
	}

	return p.slots[h]
}

// mustGet is Get that panics on removed or unknown handles.
func (p *Partition) mustGet(h Handle) *Cluster {
	c := p.Get(h)
	if c == nil {
		panic(fmt.Errorf("handle %d: %w", h, ErrStaleHandle))
	}

	return c
}

// Remove destroys the cluster behind h.
func (p *Partition) Remove(h Handle) {
	p.mustGet(h)
	p.slots[h] = nil
	p.live--
}

// MergeInto moves every member of source into target and destroys source.
// It is a no-op when target == source.
func (p *Partition) MergeInto(target, source Handle) {
	if target == source {
		return
	}
	dst, src := p.mustGet(target), p.mustGet(source)
	dst.Union(src)
	p.Remove(source)
}

// Len returns the number of live clusters.
func (p *Partition) Len() int { return p.live }

// First returns the handle of the first live cluster.
func (p *Partition) First() (Handle, bool) { return p.Next(-1) }

// Next returns the first live handle after h, in partition order.
func (p *Partition) Next(h Handle) (Handle, bool) {
	for i := int(h) + 1; i < len(p.slots); i++ {
		if p.slots[i] != nil {
			return Handle(i), true
		}
	}

	return 0, false
}

// Handles returns the live handles in order.
func (p *Partition) Handles() []Handle {
	out := make([]Handle, 0, p.live)
	for h, ok := p.First(); ok; h, ok = p.Next(h) {
		out = append(out, h)
	}

	return out
}

// Clusters returns the live clusters in order. The clusters are shared.
func (p *Partition) Clusters() []*Cluster {
	out := make([]*Cluster, 0, p.live)
	for h, ok := p.First(); ok; h, ok = p.Next(h) {
		out = append(out, p.slots[h])
	}

	return out
}

// Deduplicate removes every cluster whose sorted member sequence equals one
// seen earlier in partition order, and returns the number removed.
func (p *Partition) Deduplicate() int {
	seen := make(map[string]struct{}, p.live)
	removed := 0
	for h, ok := p.First(); ok; h, ok = p.Next(h) {
		key := p.slots[h].Key()
		if _, dup := seen[key]; dup {
			p.Remove(h)
			removed++

			continue
		}
		seen[key] = struct{}{}
	}

	return removed
}
