package splitter

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/mshuaic/distributed-learning-contributivity/internal/hash"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// shareTolerance is the floating tolerance accepted when partner shares are
// checked against a sum of 1.
const shareTolerance = 1e-9

// Simple implements the flat percentage split.
//
// The strategy arranges the train sample order according to its Order, then
// cuts the index sequence at K-1 cumulative split points derived from the
// partner shares. The test set is cut at the same relative proportions, so
// every partner receives an exclusively owned local test slice.
type Simple struct {
	order Order
	opts  options
}

var _ types.SplitStrategy = (*Simple)(nil)

// NewSimple creates a new simple split strategy.
//
// Parameters:
//   - order: Sample ordering applied before cutting (OrderRandom or OrderStratified)
//   - opts: Optional seed, mini-batch count and logger
//
// Returns:
//   - *Simple: Initialized simple strategy
//
// Example:
//
//	strategy := splitter.NewSimple(splitter.OrderRandom, splitter.WithSeed(42))
//	partners, err := strategy.Split(dataset, descriptors)
func NewSimple(order Order, opts ...Option) *Simple {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simple{order: order, opts: o}
}

// Split cuts the dataset into contiguous per-partner ranges.
//
// The algorithm:
//  1. Validate the dataset and the share vector
//  2. Arrange the train index order (seeded shuffle or stable label sort)
//  3. Compute K-1 cumulative split points from the shares, scale them by the
//     train and test sample counts independently, truncate to integers
//  4. Check the mini-batch precondition against the smallest resulting range
//  5. Cut the index sequences and populate partners in order
//
// No partner is populated before every check has passed.
//
// Parameters:
//   - dataset: Immutable global dataset
//   - descriptors: Ordered partner declarations (index = partner ID)
//
// Returns:
//   - []*types.Partner: Populated partners, one per descriptor
//   - error: Configuration, allocation or precondition error
func (s *Simple) Split(dataset *types.Dataset, descriptors []types.PartnerDescriptor) ([]*types.Partner, error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	shares, err := shareVector(descriptors)
	if err != nil {
		return nil, err
	}

	trainIdx := sequence(dataset.TrainSize())
	switch s.order {
	case OrderStratified:
		slices.SortStableFunc(trainIdx, func(a, b int) int {
			return dataset.YTrain[a] - dataset.YTrain[b]
		})
	case OrderRandom:
		seed := hash.Seed(s.opts.seed, "simple", "train-order")
		rng := rand.New(rand.NewPCG(seed, seed))
		rng.Shuffle(len(trainIdx), func(i, j int) {
			trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i]
		})
	default:
		return nil, fmt.Errorf("order %d: %w", s.order, types.ErrUnknownSplitOption)
	}

	cum := cumulativeShares(shares)
	trainBounds := cutBounds(cum, dataset.TrainSize())
	testBounds := cutBounds(cum, dataset.TestSize())

	for k := range descriptors {
		if size := trainBounds[k+1] - trainBounds[k]; size < s.opts.minibatchCount {
			return nil, fmt.Errorf("partner %d would hold %d train samples with minibatch count %d: %w",
				k, size, s.opts.minibatchCount, types.ErrMinibatchExceedsPartner)
		}
	}

	testIdx := sequence(dataset.TestSize())
	partners := make([]*types.Partner, len(descriptors))
	for k, desc := range descriptors {
		partners[k] = &types.Partner{
			ID:         k,
			Descriptor: desc,
		}
		partners[k].XTrain, partners[k].YTrain = gather(dataset.XTrain, dataset.YTrain, trainIdx[trainBounds[k]:trainBounds[k+1]])
		partners[k].XTest, partners[k].YTest = gather(dataset.XTest, dataset.YTest, testIdx[testBounds[k]:testBounds[k+1]])
	}

	sizes := make([]int, len(partners))
	for k, p := range partners {
		sizes[k] = p.TrainSize()
	}
	s.opts.logger.Info("simple split performed",
		"order", s.order.String(),
		"partners", len(partners),
		"trainSamples", sizes,
	)

	return partners, nil
}

// shareVector extracts and validates the per-partner share vector.
func shareVector(descriptors []types.PartnerDescriptor) ([]float64, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("no partners declared: %w", types.ErrInvalidConfig)
	}
	shares := make([]float64, len(descriptors))
	for i, desc := range descriptors {
		if desc.Share <= 0 || desc.Share > 1 {
			return nil, fmt.Errorf("partner %d share %g outside (0,1]: %w", i, desc.Share, types.ErrInvalidConfig)
		}
		shares[i] = desc.Share
	}
	if sum := floats.Sum(shares); math.Abs(sum-1) > shareTolerance {
		return nil, fmt.Errorf("shares sum to %g: %w", sum, types.ErrShareSum)
	}

	return shares, nil
}

// cumulativeShares computes the K-1 cumulative split points, excluding the
// trailing 1.0.
func cumulativeShares(shares []float64) []float64 {
	if len(shares) < 2 {
		return nil
	}
	cum := make([]float64, len(shares)-1)
	floats.CumSum(cum, shares[:len(shares)-1])

	return cum
}

// cutBounds scales the cumulative split points by n and truncates, producing
// K+1 segment boundaries from 0 to n.
func cutBounds(cum []float64, n int) []int {
	bounds := make([]int, 0, len(cum)+2)
	bounds = append(bounds, 0)
	for _, c := range cum {
		bounds = append(bounds, int(c*float64(n)))
	}

	return append(bounds, n)
}

// sequence returns the indices 0..n-1.
func sequence(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// gather builds an owned feature/label pair from the given sample indices.
// Feature rows reference the global dataset (read-only by contract); labels
// are copied so corruption modes can touch them safely.
func gather(x [][]float64, y []int, indices []int) ([][]float64, []int) {
	gx := make([][]float64, len(indices))
	gy := make([]int, len(indices))
	for i, sample := range indices {
		gx[i] = x[sample]
		gy[i] = y[sample]
	}

	return gx, gy
}
