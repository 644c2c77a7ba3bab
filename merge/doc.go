// Package merge collapses the seeds of a run into final clusters.
//
// Both strategies mutate the Partition they are given, in place:
//
//   - Agglomerative runs passes over the partition. For each live cluster
//     C1, in partition order, it finds the other cluster with the highest
//     linkage above the scorer cutoff and merges it into C1 at once.
//     Later clusters of the same pass see the merged state. The loop
//     stops after a pass without merges.
//   - Dice treats the partition as a work-list. It pops the first cluster
//     and keeps absorbing the remaining cluster with the highest Dice
//     coefficient above Threshold; when none qualifies the cluster is
//     final and the next one is popped.
//
// Neither strategy removes duplicates; callers run Partition.Deduplicate.
package merge
