// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/richcluster/cluster"
	"github.com/katalvlaran/richcluster/graph"
	"github.com/katalvlaran/richcluster/linkage"
	"github.com/katalvlaran/richcluster/matrix"
	"github.com/katalvlaran/richcluster/merge"
	"github.com/katalvlaran/richcluster/seed"
	"github.com/katalvlaran/richcluster/similarity"
	"github.com/katalvlaran/richcluster/term"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// strategies binds the seed/merge pair of a mode to one matrix.
type strategies func(m *matrix.Similarity) (seed.Strategy, merge.Strategy, error)

// Engine runs the clustering pipeline under one Config. It keeps no state
// between runs and may be reused sequentially or concurrently.
type Engine struct {
	cfg       Config
	mode      Mode
	metric    similarity.Func
	graphOpts []graph.Option
	bind      strategies
	log       *zap.Logger
}

// New validates cfg and binds its metric and strategy pair.
func New(cfg Config, opts ...Option) (*Engine, error) {
	p, err := cfg.parse()
	if err != nil {
		return nil, err
	}
	fn, err := p.metric.Func()
	if err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, mode: p.mode, metric: fn, log: zap.NewNop()}
	switch p.mode {
	case ModeDavid:
		e.graphOpts = []graph.Option{graph.WithStrict()}
		e.bind = davidStrategies(cfg)
	default:
		e.bind = linkageStrategies(cfg, p.method)
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func linkageStrategies(cfg Config, method linkage.Method) strategies {
	return func(m *matrix.Similarity) (seed.Strategy, merge.Strategy, error) {
		s, err := linkage.New(method, cfg.LinkageCutoff, m.Dist())
		if err != nil {
			return nil, nil, err
		}

		return seed.NewGreedy(s), &merge.Agglomerative{Scorer: s, MaxPasses: cfg.MaxMergePasses}, nil
	}
}

func davidStrategies(cfg Config) strategies {
	return func(*matrix.Similarity) (seed.Strategy, merge.Strategy, error) {
		return &seed.David{
				InitialGroupMembership:   cfg.InitialGroupMembership,
				MultipleLinkageThreshold: cfg.MultipleLinkageThreshold,
			},
			&merge.Dice{Threshold: cfg.MultipleLinkageThreshold},
			nil
	}
}

// Config returns the config the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Run clusters terms by the gene memberships in geneIDs. Both slices are
// index-aligned; a length mismatch fails with term.ErrShapeMismatch before
// any computation.
func (e *Engine) Run(ctx context.Context, terms, geneIDs []string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := e.log.With(zap.String("run_id", runID), zap.String("mode", string(e.mode)))

	corpus, err := term.NewCorpus(terms, geneIDs, term.WithDelimiter(e.cfg.GeneDelimiter))
	if err != nil {
		return nil, err
	}
	stats := Stats{Terms: corpus.Len(), Genes: corpus.TotalGenes()}
	log.Debug("corpus ready", zap.Int("terms", stats.Terms), zap.Int("genes", stats.Genes))

	stage := time.Now()
	m, err := matrix.Build(ctx, corpus, e.metric, matrix.WithWorkers(e.cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("engine: similarity matrix: %w", err)
	}
	log.Debug("similarity matrix built", zap.Duration("took", time.Since(stage)))

	g := graph.Build(m, e.cfg.SimilarityCutoff, e.graphOpts...)
	stats.Edges = g.EdgeCount()
	log.Debug("similarity graph built", zap.Int("edges", stats.Edges))

	seeder, merger, err := e.bind(m)
	if err != nil {
		return nil, err
	}
	seeds := seeder.Seeds(g, m)
	stats.Seeds = len(seeds)
	log.Debug("seeds built", zap.Int("seeds", stats.Seeds))

	stage = time.Now()
	p := cluster.NewPartition(seeds...)
	stats.Merge, err = merger.Merge(ctx, p)
	for i, n := range stats.Merge.PassMerges {
		log.Debug("merge pass", zap.Int("pass", i+1), zap.Int("merges", n))
	}
	if err != nil {
		return nil, fmt.Errorf("engine: merge: %w", err)
	}
	log.Debug("merge finished", zap.Int("clusters", p.Len()), zap.Duration("took", time.Since(stage)))

	stats.Duplicates = p.Deduplicate()

	minSize := 0
	if e.mode == ModeDavid {
		minSize = e.cfg.FinalGroupMembership
	}
	rows := exportRows(corpus, p, minSize)
	stats.Dropped = p.Len() - len(rows)
	stats.Elapsed = time.Since(start)

	log.Info("clustering complete",
		zap.Int("terms", stats.Terms),
		zap.Int("clusters", len(rows)),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("dropped", stats.Dropped),
		zap.Duration("elapsed", stats.Elapsed),
	)

	return &Result{RunID: runID, Mode: e.mode, Matrix: m, Clusters: rows, Stats: stats}, nil
}
