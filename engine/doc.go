// Package engine runs the full term-clustering pipeline:
//
//	corpus → similarity matrix → similarity graph → seeds → merge → deduplicate → export
//
// An Engine is built once from a Config. New validates every name and bound
// in the config, so an unknown metric, linkage method or mode fails before
// any pairwise work. The mode selects a seed/merge strategy pair:
//
//	linkage  seed.Greedy + merge.Agglomerative, graph predicate score >= cutoff
//	david    seed.David  + merge.Dice,          graph predicate score >  cutoff
//
// Run is deterministic for a given input and config. A failing Run returns
// no Result at all, never a partial one.
//
// Configuration can be loaded from YAML with LoadConfig or ParseConfig:
//
//	mode: linkage
//	similarity_metric: kappa
//	similarity_cutoff: 0.5
//	linkage_method: average
//	linkage_cutoff: 0.5
//
// Logging goes through the *zap.Logger passed with WithLogger; every entry
// of a run carries its run_id.
package engine
