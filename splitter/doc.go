// Package splitter provides built-in split strategy implementations.
//
// Split strategies decide exactly which samples of the global dataset each
// partner receives. The package includes two built-in strategies:
//
//   - Simple: flat percentage split using cumulative split points, with
//     "random" or "stratified" ordering
//   - Advanced: cluster-based split with disjoint and overlapping label
//     groups and demand-driven rebalancing
//
// # Strategy Selection Guide
//
// Simple:
//   - Use when partners only differ in data volume
//   - OrderRandom shuffles the sample order with a fixed seed
//   - OrderStratified sorts by label so partners receive class-contiguous blocks
//
// Advanced:
//   - Use when partners must cover distinct or overlapping label regions
//   - Specific partners get exclusive label clusters, shared partners draw
//     from a common pool
//   - Requested volumes are reconciled with cluster capacity by a two-stage
//     resize before any sample is assigned
//
// Both strategies are fully deterministic for a fixed seed. Custom strategies
// can be implemented by satisfying the types.SplitStrategy interface.
package splitter
