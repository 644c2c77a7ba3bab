// Package graph holds the similarity graph of a clustering run: an
// undirected, unweighted graph over term indices whose edges join every
// pair of terms whose similarity passes a cutoff.
//
// Invariants:
//
//   - every term index 0..n-1 owns a row, possibly empty, so later stages
//     never meet a missing-node case;
//   - edges are symmetric: HasNeighbor(i,j) == HasNeighbor(j,i);
//   - no self-loops (the diagonal of the similarity matrix is skipped).
//
// Rows are bitsets, so adjacency tests are O(1) and Neighbors returns
// indices in ascending order, which keeps every downstream stage
// deterministic.
//
// The default edge predicate is score >= cutoff. WithStrict switches to
// score > cutoff, the "above the threshold" reading used by DAVID seeding.
package graph
