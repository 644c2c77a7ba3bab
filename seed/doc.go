// Package seed turns a similarity graph into the initial clusters that the
// merge stage starts from.
//
// Two strategies implement Strategy:
//
//   - Greedy grows one seed per node. Starting from {node}, it repeatedly
//     adds the neighbor of node that links best to the growing seed, until
//     no neighbor is left or the best linkage falls below the scorer cutoff.
//     Ties go to the lowest term index. Isolated nodes yield singletons.
//   - David keeps only qualified nodes: a node with at least
//     InitialGroupMembership−1 neighbors whose closed neighborhood has a
//     fraction of passing pairs above MultipleLinkageThreshold. Its seed is
//     the whole neighborhood.
//
// Seeds come back in ascending order of their originating node.
package seed
