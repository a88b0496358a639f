package types

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Dataset holds the global labeled dataset shared by every partner in a
// scenario.
//
// A Dataset is created once by a DatasetSource and never mutated afterwards.
// Partners reference its test arrays directly; the engine only reads the
// train arrays when materializing per-partner subsets.
type Dataset struct {
	// XTrain holds one feature vector per train sample.
	XTrain [][]float64

	// YTrain holds the integer label of each train sample.
	YTrain []int

	// XVal and YVal hold the optional validation split used for early
	// stopping by the downstream trainer. May be empty.
	XVal [][]float64
	YVal []int

	// XTest and YTest hold the shared test split.
	XTest [][]float64
	YTest []int
}

// TrainSize returns the number of train samples.
func (d *Dataset) TrainSize() int {
	return len(d.YTrain)
}

// ValSize returns the number of validation samples.
func (d *Dataset) ValSize() int {
	return len(d.YVal)
}

// TestSize returns the number of test samples.
func (d *Dataset) TestSize() int {
	return len(d.YTest)
}

// DistinctLabels returns the set of distinct label values present in the
// train split, in first-seen order.
//
// Returns:
//   - []int: Distinct labels ordered by first occurrence in YTrain
func (d *Dataset) DistinctLabels() []int {
	seen := make(map[int]struct{}, 16)
	labels := make([]int, 0, 16)
	for _, y := range d.YTrain {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		labels = append(labels, y)
	}

	return labels
}

// Validate checks the internal consistency of the dataset arrays.
//
// Validation rules:
//   - Train split must be non-empty
//   - Feature and label arrays must have matching lengths per split
//
// Returns:
//   - error: Wrapped ErrEmptyTrainSet or ErrDatasetMismatch, nil if valid
func (d *Dataset) Validate() error {
	if len(d.YTrain) == 0 {
		return ErrEmptyTrainSet
	}
	if len(d.XTrain) != len(d.YTrain) {
		return fmt.Errorf("train split has %d feature rows and %d labels: %w",
			len(d.XTrain), len(d.YTrain), ErrDatasetMismatch)
	}
	if len(d.XVal) != len(d.YVal) {
		return fmt.Errorf("validation split has %d feature rows and %d labels: %w",
			len(d.XVal), len(d.YVal), ErrDatasetMismatch)
	}
	if len(d.XTest) != len(d.YTest) {
		return fmt.Errorf("test split has %d feature rows and %d labels: %w",
			len(d.XTest), len(d.YTest), ErrDatasetMismatch)
	}

	return nil
}

// Fingerprint returns a stable 64-bit hash of the train labels.
//
// The fingerprint identifies the label layout of a dataset so that derived
// structures (such as per-label cluster indexes) can be cached and reused
// across scenarios running over the same dataset.
//
// Returns:
//   - uint64: XXH3 hash of the train label sequence
func (d *Dataset) Fingerprint() uint64 {
	buf := make([]byte, 8*len(d.YTrain))
	for i, y := range d.YTrain {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(y)) //nolint:gosec // labels are small non-negative values
	}

	return xxh3.Hash(buf)
}
