// Package cluster defines the term-index sets that the seed and merge
// stages build, and the Partition that owns them during a run.
//
// A Cluster is a set of term indices backed by a roaring bitmap. Members
// come back in ascending order, so the sorted member sequence used for
// deduplication and export is free.
//
// A Partition is an ordered collection of clusters addressed by Handle.
// Removal leaves a tombstone in place instead of shifting survivors, so a
// caller that walks the partition with First/Next while merging can never
// skip or revisit a live cluster, whatever it removes in between:
//
//	for h, ok := p.First(); ok; h, ok = p.Next(h) {
//		if partner, found := best(h); found {
//			p.MergeInto(h, partner) // partner may lie before or after h
//		}
//	}
//
// Clusters may overlap across a partition; only identical member sets are
// collapsed, by Deduplicate.
package cluster
