// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Callers match these with errors.Is. Index violations are programmer
// errors and surface as panics carrying ErrOutOfRange.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates a negative matrix size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrLabelMismatch indicates that the label count differs from the matrix size.
	ErrLabelMismatch = errors.New("matrix: label count does not match matrix size")

	// ErrNilCorpus indicates that Build received a nil corpus.
	ErrNilCorpus = errors.New("matrix: corpus is nil")

	// ErrNilFunc indicates that Build received a nil similarity function.
	ErrNilFunc = errors.New("matrix: similarity function is nil")
)
