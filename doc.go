// Package richcluster groups annotation terms (GO terms, pathways, any
// named gene set) into clusters of functionally related terms, judged by
// how much their gene memberships overlap.
//
// The pipeline is split into one package per stage:
//
//	term/        Term, Corpus and gene-ID interning; TSV table reader
//	similarity/  kappa and Jaccard scores over gene sets
//	matrix/      dense labeled similarity matrix, parallel Build, JSON form
//	graph/       threshold graph over the matrix (bitset adjacency rows)
//	cluster/     Cluster sets, the handle-addressed Partition, Dice
//	linkage/     single, complete, average, ward and david linkage scores
//	seed/        greedy per-node seeds and DAVID seed qualification
//	merge/       agglomerative linkage merge and DAVID Dice merge
//	engine/      Config, orchestration, Result export, logging
//
// Most callers only need engine:
//
//	e, err := engine.New(engine.DefaultConfig())
//	res, err := e.Run(ctx, terms, geneIDs)
//	_ = res.WriteJSON(os.Stdout)
//
// cmd/richcluster wraps the same call for tab-separated input files.
//
// Installation:
//
//	go get github.com/katalvlaran/richcluster
package richcluster
