// Package types provides core type definitions and interfaces for the mplc library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the main mplc package and its internal implementations.
//
// Key types:
//   - Dataset: Immutable global train/validation/test arrays
//   - Partner: One simulated participant with its populated data subset
//   - PartnerDescriptor: Declarative description of a partner before splitting
//   - Cluster: Sample indices sharing one label value
//   - SplitStrategy: Partitioning algorithm interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
