// Package matrix stores the pairwise similarity scores of a clustering run.
//
// Similarity is a dense n×n row-major buffer (offset = i*n + j) with O(1)
// reads. It is written exactly once by Build and is read-only afterwards:
//
//   - score(i,j) == score(j,i) for every i ≠ j;
//   - score(i,i) == SameTerm, a reserved value that is never a valid
//     similarity and must never be read as one (see IsSameTerm).
//
// Build evaluates only the upper triangle and mirrors each score, spreading
// rows across a bounded errgroup. Each cell has exactly one writer and every
// write completes before Build returns.
//
// Index validity is a precondition of At/Set: an out-of-range index is a
// programming error and panics with an error wrapping ErrOutOfRange.
package matrix
