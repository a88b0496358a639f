package splitter

import (
	"github.com/mshuaic/distributed-learning-contributivity/logging"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// DefaultSeed is the scenario seed used when none is configured.
const DefaultSeed uint64 = 42

// Option configures a split strategy.
type Option func(*options)

// options holds optional strategy configuration shared by both strategies.
type options struct {
	seed           uint64
	minibatchCount int
	logger         types.Logger
}

func defaultOptions() options {
	return options{
		seed:           DefaultSeed,
		minibatchCount: 1,
		logger:         logging.NewNop(),
	}
}

// WithSeed sets the seed driving every random choice of the strategy.
//
// Identical seeds and inputs produce identical partitions.
//
// Parameters:
//   - seed: Scenario-level seed
//
// Returns:
//   - Option: Functional option for NewSimple / NewAdvanced
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMinibatchCount sets the mini-batch count precondition.
//
// The downstream trainer divides each partner's data into this many chunks
// per epoch, so no partner may end up with fewer train samples. A violation
// fails the split with ErrMinibatchExceedsPartner.
//
// Parameters:
//   - count: Mini-batch count (default 1, which only rejects empty partners)
//
// Returns:
//   - Option: Functional option for NewSimple / NewAdvanced
func WithMinibatchCount(count int) Option {
	return func(o *options) {
		o.minibatchCount = count
	}
}

// WithLogger sets the logger used for split diagnostics.
//
// Parameters:
//   - logger: Logger implementation (default: no-op)
//
// Returns:
//   - Option: Functional option for NewSimple / NewAdvanced
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
