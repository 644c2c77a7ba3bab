// Package similarity scores how alike two terms are from their gene
// memberships.
//
// Two metrics are supported:
//
//   - Kappa: Cohen's kappa over the 2×2 agreement table of the two gene sets
//     against the corpus-wide gene universe of size N.
//
//     c = |A∩B|, a = |A|, b = |B|
//     o = (c + (N - c - (a-c) - (b-c))) / N   observed agreement
//     e = (a·b + (N-a)(N-b)) / N²             expected agreement
//     κ = (o - e) / (1 - e), or 1 when e == 1
//
//   - Jaccard: |A∩B| / |A∪B|, with 0/0 defined as 0.
//
// A Metric name is resolved once into a Func, so a run never compares metric
// names per pair and an unknown name fails before any pairwise work.
package similarity
