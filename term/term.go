// SPDX-License-Identifier: MIT

package term

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// DefaultDelimiter separates gene identifiers inside one membership string.
const DefaultDelimiter = ","

var (
	// ErrShapeMismatch is returned when the names and gene-ID columns differ in length.
	ErrShapeMismatch = errors.New("term: terms and gene IDs must have the same length")

	// ErrEmptyDelimiter is returned when WithDelimiter receives "".
	ErrEmptyDelimiter = errors.New("term: gene delimiter is empty")
)

// Term is one annotation unit. Index is its stable position in the corpus.
// Genes must be treated as read-only.
type Term struct {
	Index int
	Name  string
	Genes *roaring.Bitmap
}

// Size returns the number of distinct genes annotated to t.
func (t Term) Size() int {
	return int(t.Genes.GetCardinality())
}

// Option configures corpus construction.
type Option func(*options)

type options struct {
	delimiter string
}

// WithDelimiter overrides DefaultDelimiter.
func WithDelimiter(d string) Option {
	return func(o *options) { o.delimiter = d }
}

// Corpus is the immutable, indexed input of a clustering run.
type Corpus struct {
	terms []Term
	genes []string          // interned id -> gene identifier
	index map[string]uint32 // gene identifier -> interned id
}

// NewCorpus builds a Corpus from parallel name and membership columns.
// Each membership string is split on the delimiter; tokens are trimmed and
// empty tokens are dropped. Returns ErrShapeMismatch before doing any work
// when the columns disagree in length.
func NewCorpus(names, geneIDs []string, opts ...Option) (*Corpus, error) {
	if len(names) != len(geneIDs) {
		return nil, fmt.Errorf("%w: %d terms, %d gene-ID rows", ErrShapeMismatch, len(names), len(geneIDs))
	}
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	c := &Corpus{
		terms: make([]Term, len(names)),
		index: make(map[string]uint32),
	}
	for i, name := range names {
		set := roaring.New()
		for _, tok := range strings.Split(geneIDs[i], o.delimiter) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			set.Add(c.intern(tok))
		}
		set.RunOptimize()
		c.terms[i] = Term{Index: i, Name: name, Genes: set}
	}

	return c, nil
}

// intern returns the dense id for gene, assigning the next one on first sight.
func (c *Corpus) intern(gene string) uint32 {
	if id, ok := c.index[gene]; ok {
		return id
	}
	id := uint32(len(c.genes))
	c.index[gene] = id
	c.genes = append(c.genes, gene)

	return id
}

// Len returns the number of terms.
func (c *Corpus) Len() int { return len(c.terms) }

// Term returns the term at index i. Panics if i is out of range.
func (c *Corpus) Term(i int) Term { return c.terms[i] }

// Genes returns the gene set of term i. Panics if i is out of range.
func (c *Corpus) Genes(i int) *roaring.Bitmap { return c.terms[i].Genes }

// Name returns the display name of term i. Panics if i is out of range.
func (c *Corpus) Name(i int) string { return c.terms[i].Name }

// Names returns a copy of all display names in index order.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.terms))
	for i, t := range c.terms {
		out[i] = t.Name
	}

	return out
}

// TotalGenes returns the number of distinct gene identifiers across the corpus.
func (c *Corpus) TotalGenes() int { return len(c.genes) }

// GeneNames returns the gene identifiers of term i in interning order.
func (c *Corpus) GeneNames(i int) []string {
	ids := c.terms[i].Genes.ToArray()
	out := make([]string, len(ids))
	for k, id := range ids {
		out[k] = c.genes[id]
	}

	return out
}
