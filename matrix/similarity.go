// SPDX-License-Identifier: MIT

// Package matrix - Similarity storage (row-major) & accessors.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Row: O(n); Rows: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// SameTerm is written on the diagonal. Valid kappa and Jaccard scores lie
// in [-1, 1], so it can never collide with a real similarity.
const SameTerm = -99.0

// IsSameTerm reports whether v is the diagonal sentinel.
func IsSameTerm(v float64) bool { return v == SameTerm }

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// indexErrorf wraps an error with the method and coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Similarity.%s(%d,%d): %w", method, row, col, err)
}

// Similarity is a square, symmetric matrix of term-pair scores.
//   - n is the number of terms.
//   - labels holds the row/column names (term display names).
//   - data is row-major with len == n*n.
type Similarity struct {
	n      int
	labels []string
	data   []float64
}

var _ fmt.Stringer = (*Similarity)(nil)

// New allocates an n×n matrix labeled by labels. A nil labels slice is
// allowed and yields empty names; otherwise len(labels) must equal n.
// All cells start at zero; callers that build by hand must write the
// diagonal themselves.
func New(n int, labels []string) (*Similarity, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	if labels == nil {
		labels = make([]string, n)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d terms", ErrLabelMismatch, len(labels), n)
	}
	lb := make([]string, n)
	copy(lb, labels)

	return &Similarity{
		n:      n,
		labels: lb,
		data:   make([]float64, n*n),
	}, nil
}

// Len returns the number of terms (rows == cols).
func (m *Similarity) Len() int { return m.n }

// Labels returns a copy of the row/column labels.
func (m *Similarity) Labels() []string {
	out := make([]string, m.n)
	copy(out, m.labels)

	return out
}

// offset computes i*n + j, panicking on out-of-range indices.
func (m *Similarity) offset(method string, i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(indexErrorf(method, i, j, ErrOutOfRange))
	}

	return i*m.n + j
}

// At returns score(i, j). Panics if either index is out of range.
func (m *Similarity) At(i, j int) float64 {
	return m.data[m.offset(ctxAt, i, j)]
}

// Set writes a single cell. Builders are responsible for also writing (j, i);
// SetPair does both. Panics if either index is out of range.
func (m *Similarity) Set(score float64, i, j int) {
	m.data[m.offset(ctxSet, i, j)] = score
}

// SetPair writes score into (i, j) and (j, i).
func (m *Similarity) SetPair(score float64, i, j int) {
	m.Set(score, i, j)
	m.Set(score, j, i)
}

// Dist returns an accessor bound to m, suitable for linkage scoring.
func (m *Similarity) Dist() func(i, j int) float64 {
	return m.At
}

// Row returns a copy of row i.
func (m *Similarity) Row(i int) []float64 {
	off := m.offset(ctxRow, i, 0)
	out := make([]float64, m.n)
	copy(out, m.data[off:off+m.n])

	return out
}

// Rows returns a deep copy as a slice of rows.
func (m *Similarity) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range m.n {
		out[i] = m.Row(i)
	}

	return out
}

// String renders the matrix row by row for diagnostics.
func (m *Similarity) String() string {
	var sb strings.Builder
	for i := range m.n {
		sb.WriteString("[")
		for j := range m.n {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
