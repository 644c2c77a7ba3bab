// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/richcluster/similarity"
	"github.com/katalvlaran/richcluster/term"
)

// Build scores every term pair of corpus with fn.
//
// Implementation:
//   - Stage 1: allocate an n×n matrix labeled by the term names.
//   - Stage 2: one task per row i scores (i, j) for j > i and mirrors it into
//     (j, i); the task also writes SameTerm at (i, i).
//   - Stage 3: wait for all tasks; any cancellation discards the matrix.
//
// Row i is the only writer of cells (i, j≥i) and (j>i, i), so tasks never
// share a cell.
//
// Complexity:
//   - Time O(n²·g) where g is the cost of one set intersection; Space O(n²).
func Build(ctx context.Context, corpus *term.Corpus, fn similarity.Func, opts ...Option) (*Similarity, error) {
	if corpus == nil {
		return nil, ErrNilCorpus
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := gatherOptions(opts...)

	n := corpus.Len()
	m, err := New(n, corpus.Names())
	if err != nil {
		return nil, err
	}
	total := corpus.TotalGenes()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a := corpus.Genes(i)
			m.data[i*n+i] = SameTerm
			for j := i + 1; j < n; j++ {
				s := fn(a, corpus.Genes(j), total)
				m.data[i*n+j] = s
				m.data[j*n+i] = s
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}
