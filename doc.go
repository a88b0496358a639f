// Package mplc provides a Go library for partitioning a labeled dataset
// across multiple partners in collaborative machine learning experiments.
//
// A Scenario takes one dataset and a per-partner configuration and produces
// disjoint train subsets, either by cutting the train set at cumulative
// share boundaries (random or stratified ordering) or by assigning label
// clusters per partner (advanced split). All randomness flows through
// explicit seeded sources, so a scenario is fully reproducible from its
// configuration and dataset.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/mshuaic/distributed-learning-contributivity"
//	    "github.com/mshuaic/distributed-learning-contributivity/dataset"
//	)
//
//	cfg := mplc.DefaultConfig()
//	cfg.PartnersCount = 3
//	cfg.AmountsPerPartner = []float64{0.5, 0.3, 0.2}
//
//	scenario, err := mplc.NewScenario(&cfg, dataset.NewInMemory(ds))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := scenario.Split(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	partners, _ := scenario.Partners()
//
// # Key Features
//
//   - Share-Based Splits: Cut the train set at cumulative share boundaries,
//     with random or stratified sample ordering
//   - Cluster-Based Splits: Give each partner exclusive or shared label
//     clusters for heterogeneous data distributions
//   - Two-Stage Resizing: Requested volumes are reconciled with actual
//     cluster capacity before any sample is assigned
//   - Label Corruption: Per-partner shuffled or randomized labels for
//     contributivity experiments
//   - Reproducibility: Explicit seeded random sources throughout
//
// # Architecture
//
// An advanced split runs a four-stage pipeline:
//
//	CLUSTER BUILDER → ASSIGNMENT PLANNER → RESIZE CALCULATOR → SAMPLE ALLOCATOR
//
// The planner decides which label clusters each partner draws from, the
// resize calculator shrinks infeasible demands, and the allocator
// materializes each partner's train subset. No partner is populated until
// the whole allocation is known to succeed.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    "github.com/mshuaic/distributed-learning-contributivity"
//	    "github.com/mshuaic/distributed-learning-contributivity/splitter"
//	)
//
//	strategy := splitter.NewAdvanced(
//	    splitter.WithSeed(7),
//	    splitter.WithMinibatchCount(20),
//	)
//
//	scenario, err := mplc.NewScenario(&cfg, src,
//	    mplc.WithStrategy(strategy),
//	    mplc.WithMetrics(collector),
//	)
//
// See the examples/ directory for complete working examples.
package mplc
