// Package linkage scores how strongly two clusters of terms belong
// together, from the pairwise similarities of their members.
//
// A Scorer is bound to one Method, a cutoff and a pairwise accessor
// dist(i, j) at construction; Score then dispatches without inspecting the
// method again. Every method skips pairs with i == j.
//
//	single   min over cross pairs, starting from SingleSentinel
//	complete max over cross pairs, starting from 0
//	average  mean over cross pairs; NaN when there are none
//	ward     (|A||B|/(|A|+|B|))·(2δAB − δAA − δBB); 0 if either side is empty
//	david    number of cross pairs with dist < cutoff (a raw count)
//
// The ward within-cluster means divide by |A|² rather than |A|(|A|−1).
// The david count grows with cluster size, so its scores are only
// comparable between cluster pairs of equal size.
package linkage
