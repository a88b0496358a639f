package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/mshuaic/distributed-learning-contributivity/internal/hash"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// DefaultValFraction is the validation fraction used when callers pass 0 to
// SplitTrainVal.
const DefaultValFraction = 0.1

// SplitTrainVal carves a validation split out of the dataset's train set.
//
// The train samples are shuffled with an explicit seeded source and the
// first fraction of them becomes the validation split; the remainder stays
// as the train split. The input dataset is not mutated, and the returned
// dataset shares feature rows with it.
//
// Parameters:
//   - ds: Source dataset; its validation split, if any, is discarded
//   - fraction: Fraction of train samples moved to validation, in (0, 1);
//     0 selects DefaultValFraction
//   - seed: Shuffle seed
//
// Returns:
//   - *types.Dataset: New dataset with train and validation splits
//   - error: Wrapped ErrInvalidConfig or a dataset validation error
func SplitTrainVal(ds *types.Dataset, fraction float64, seed uint64) (*types.Dataset, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if fraction == 0 {
		fraction = DefaultValFraction
	}
	if fraction < 0 || fraction >= 1 {
		return nil, fmt.Errorf("validation fraction %g outside (0,1): %w", fraction, types.ErrInvalidConfig)
	}

	n := ds.TrainSize()
	valSize := int(fraction * float64(n))
	if valSize == 0 || valSize == n {
		return nil, fmt.Errorf("validation fraction %g of %d train samples leaves an empty split: %w",
			fraction, n, types.ErrInvalidConfig)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	s := hash.Seed(seed, "train-val")
	rng := rand.New(rand.NewPCG(s, s))
	rng.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	out := &types.Dataset{
		XVal:  make([][]float64, 0, valSize),
		YVal:  make([]int, 0, valSize),
		XTest: ds.XTest,
		YTest: ds.YTest,
	}
	for _, i := range perm[:valSize] {
		out.XVal = append(out.XVal, ds.XTrain[i])
		out.YVal = append(out.YVal, ds.YTrain[i])
	}
	for _, i := range perm[valSize:] {
		out.XTrain = append(out.XTrain, ds.XTrain[i])
		out.YTrain = append(out.YTrain, ds.YTrain[i])
	}

	return out, nil
}

// Truncate caps the dataset's splits at the given sizes.
//
// Each split keeps its first samples in order; a limit of 0 or above the
// split size keeps the split whole. The input dataset is not mutated, and
// the returned dataset shares feature rows with it. Useful for quick runs
// that exercise a full scenario on a fraction of the data.
//
// Parameters:
//   - ds: Source dataset
//   - train: Maximum train samples, 0 for no cap
//   - val: Maximum validation samples, 0 for no cap
//   - test: Maximum test samples, 0 for no cap
//
// Returns:
//   - *types.Dataset: New dataset with capped splits
func Truncate(ds *types.Dataset, train, val, test int) *types.Dataset {
	clamp := func(size, limit int) int {
		if limit <= 0 || limit > size {
			return size
		}

		return limit
	}

	nTrain := clamp(ds.TrainSize(), train)
	nVal := clamp(ds.ValSize(), val)
	nTest := clamp(ds.TestSize(), test)

	return &types.Dataset{
		XTrain: ds.XTrain[:nTrain],
		YTrain: ds.YTrain[:nTrain],
		XVal:   ds.XVal[:nVal],
		YVal:   ds.YVal[:nVal],
		XTest:  ds.XTest[:nTest],
		YTest:  ds.YTest[:nTest],
	}
}
