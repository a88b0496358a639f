package types

import "context"

// DatasetSource provides the global dataset a scenario runs over.
//
// Implementations can load data from various backends:
//   - InMemory: a dataset already materialized by the caller
//   - Synthetic: deterministic generated data for tests and demos
//   - Custom: any acquisition or caching logic (out of scope here)
//
// The Scenario calls Load once during Split.
type DatasetSource interface {
	// Load returns the global dataset.
	//
	// Implementations should:
	//   - Return a dataset that passes Dataset.Validate
	//   - Handle context cancellation gracefully when loading is slow
	//   - Return the same dataset for repeated calls
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - *Dataset: The loaded dataset
	//   - error: Load error (nil on success)
	Load(ctx context.Context) (*Dataset, error)
}
