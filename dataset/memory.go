package dataset

import (
	"context"
	"sync"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// InMemory implements a dataset source over data already held by the caller.
type InMemory struct {
	mu sync.RWMutex
	ds *types.Dataset
}

var _ types.DatasetSource = (*InMemory)(nil)

// NewInMemory creates a new in-memory dataset source.
//
// The source returns the wrapped dataset as-is. Useful for testing and for
// callers that load data through their own pipeline before running a
// scenario.
//
// Parameters:
//   - ds: The dataset to serve
//
// Returns:
//   - *InMemory: Initialized in-memory source
//
// Example:
//
//	src := dataset.NewInMemory(ds)
//	scenario, err := mplc.NewScenario(&cfg, src)
//	if err != nil { /* handle */ }
func NewInMemory(ds *types.Dataset) *InMemory {
	return &InMemory{ds: ds}
}

// Load returns the wrapped dataset after validating its shape.
//
// Parameters:
//   - ctx: Unused, accepted to satisfy types.DatasetSource
//
// Returns:
//   - *types.Dataset: The wrapped dataset
//   - error: Wrapped ErrDatasetSourceRequired when no dataset was set, or a
//     dataset validation error
func (m *InMemory) Load(_ context.Context) (*types.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ds == nil {
		return nil, types.ErrDatasetSourceRequired
	}
	if err := m.ds.Validate(); err != nil {
		return nil, err
	}

	return m.ds, nil
}

// Update replaces the wrapped dataset.
//
// Useful when the same source instance serves several scenario runs over
// evolving data.
//
// Parameters:
//   - ds: The new dataset to serve
func (m *InMemory) Update(ds *types.Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ds = ds
}
