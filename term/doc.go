// Package term turns the two parallel input columns of a clustering run
// (term display names and delimiter-joined gene identifiers) into an
// immutable Corpus of indexed terms.
//
// Every gene identifier is interned once into a dense uint32 id, so the gene
// membership of a term is a roaring bitmap and set algebra between terms
// (intersection, union, cardinality) never touches strings again.
//
//	corpus, err := term.NewCorpus(
//		[]string{"GO:0006915", "GO:0012501"},
//		[]string{"TP53,BAX,CASP3", "BAX,CASP3,CASP9"},
//	)
//	if errors.Is(err, term.ErrShapeMismatch) { ... }
//	corpus.TotalGenes() // 4
//
// ReadTable reads the same two columns from a tab-separated stream.
package term
