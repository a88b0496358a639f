// Package dataset provides built-in dataset source implementations and
// dataset preparation helpers.
//
// Dataset sources supply the labeled data a scenario partitions. The
// package includes:
//
//   - InMemory: Wraps data already loaded by the caller
//   - Synthetic: Deterministic generated data for tests and demos
//
// Custom sources can be implemented by satisfying the types.DatasetSource
// interface.
//
// Preparation helpers derive new datasets without mutating their input:
// SplitTrainVal carves a validation split out of the train set and Truncate
// caps split sizes for quick experiment runs.
package dataset
