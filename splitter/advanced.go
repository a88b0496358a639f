package splitter

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/mshuaic/distributed-learning-contributivity/internal/allocation"
	"github.com/mshuaic/distributed-learning-contributivity/internal/hash"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// Advanced implements the cluster-based split.
//
// Partners cover distinct or overlapping label regions: specific partners
// receive exclusive label clusters while shared partners draw from a common
// pool. Requested volumes are reconciled with actual cluster capacity by a
// two-stage resize before any sample is assigned, so the split never asks a
// cluster for more samples than it holds.
type Advanced struct {
	opts options

	mu         sync.Mutex
	lastFactor float64
	hasSplit   bool
}

var _ types.SplitStrategy = (*Advanced)(nil)

// NewAdvanced creates a new advanced split strategy.
//
// Parameters:
//   - opts: Optional seed, mini-batch count and logger
//
// Returns:
//   - *Advanced: Initialized advanced strategy
//
// Example:
//
//	strategy := splitter.NewAdvanced(splitter.WithSeed(42), splitter.WithMinibatchCount(20))
//	partners, err := strategy.Split(dataset, descriptors)
func NewAdvanced(opts ...Option) *Advanced {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Advanced{opts: o}
}

// Split runs the full cluster pipeline: cluster building, assignment
// planning, two-stage resizing and sample allocation.
//
// All randomness flows through one explicit random source derived from the
// configured seed, so identical seeds and inputs produce identical
// partitions, including the shared pool draws.
//
// Parameters:
//   - dataset: Immutable global dataset
//   - descriptors: Ordered partner declarations (index = partner ID)
//
// Returns:
//   - []*types.Partner: Populated partners ordered by partner ID
//   - error: Configuration, allocation or precondition error
func (a *Advanced) Split(dataset *types.Dataset, descriptors []types.PartnerDescriptor) ([]*types.Partner, error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	if _, err := shareVector(descriptors); err != nil {
		return nil, err
	}

	idx := allocation.IndexFor(dataset)

	seed := hash.Seed(a.opts.seed, "advanced", "planner")
	rng := rand.New(rand.NewPCG(seed, seed))
	plan, err := allocation.PlanAssignments(descriptors, idx, rng)
	if err != nil {
		return nil, err
	}

	factor, err := allocation.Factor(plan, idx, dataset.TrainSize())
	if err != nil {
		return nil, err
	}

	partners, summary := allocation.Allocate(dataset, descriptors, plan, idx, factor)

	smallest := partners[0].TrainSize()
	for _, p := range partners[1:] {
		smallest = min(smallest, p.TrainSize())
	}
	if smallest < a.opts.minibatchCount {
		return nil, fmt.Errorf("smallest partner holds %d train samples with minibatch count %d: %w",
			smallest, a.opts.minibatchCount, types.ErrMinibatchExceedsPartner)
	}

	a.mu.Lock()
	a.lastFactor = summary.Factor
	a.hasSplit = true
	a.mu.Unlock()

	a.opts.logger.Info("advanced split performed",
		"partners", len(partners),
		"resizeFactor", summary.Factor,
		"trainSamples", summary.Absolute,
		"relativeSamples", summary.Relative,
	)

	return partners, nil
}

// LastResizeFactor returns the resize factor applied by the most recent
// successful Split.
//
// Returns:
//   - float64: Factor of the last successful Split
//   - bool: False when no Split has completed yet
func (a *Advanced) LastResizeFactor() (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastFactor, a.hasSplit
}

// ResizeFactor computes the final resize factor for the given scenario
// without materializing any partner. Useful for inspecting feasibility
// before committing to a split.
//
// Parameters:
//   - dataset: Immutable global dataset
//   - descriptors: Ordered partner declarations
//
// Returns:
//   - float64: Final resize factor in (0, 1]
//   - error: Configuration or allocation error
func (a *Advanced) ResizeFactor(dataset *types.Dataset, descriptors []types.PartnerDescriptor) (float64, error) {
	if err := dataset.Validate(); err != nil {
		return 0, err
	}

	idx := allocation.IndexFor(dataset)

	seed := hash.Seed(a.opts.seed, "advanced", "planner")
	rng := rand.New(rand.NewPCG(seed, seed))
	plan, err := allocation.PlanAssignments(descriptors, idx, rng)
	if err != nil {
		return 0, err
	}

	return allocation.Factor(plan, idx, dataset.TrainSize())
}
