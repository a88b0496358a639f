package types

import (
	"fmt"
	"math/rand/v2"
)

// SplitKind selects how a partner's clusters relate to other partners in an
// advanced split.
type SplitKind int

const (
	// SplitSpecific assigns the partner clusters that no other partner uses.
	SplitSpecific SplitKind = iota

	// SplitShared lets the partner draw its clusters from a pool common to
	// all shared partners.
	SplitShared
)

// String returns the string representation of the split kind.
func (k SplitKind) String() string {
	switch k {
	case SplitSpecific:
		return "specific"
	case SplitShared:
		return "shared"
	default:
		return "unknown"
	}
}

// ParseSplitKind converts a configuration string into a SplitKind.
//
// Parameters:
//   - s: "specific" or "shared"
//
// Returns:
//   - SplitKind: Parsed kind
//   - error: Wrapped ErrUnknownSplitKind for any other value
func ParseSplitKind(s string) (SplitKind, error) {
	switch s {
	case "specific":
		return SplitSpecific, nil
	case "shared":
		return SplitShared, nil
	default:
		return 0, fmt.Errorf("split kind %q: %w", s, ErrUnknownSplitKind)
	}
}

// Corruption selects an optional label corruption applied to a partner's
// train subset after splitting. Corrupted partners are useful for testing
// contributivity measures against known-bad data.
type Corruption int

const (
	// CorruptionNone leaves the partner's labels untouched.
	CorruptionNone Corruption = iota

	// CorruptionShuffled permutes the partner's train labels in place.
	CorruptionShuffled

	// CorruptionRandom replaces every train label with a uniform draw from
	// the dataset's distinct labels.
	CorruptionRandom
)

// String returns the string representation of the corruption mode.
func (c Corruption) String() string {
	switch c {
	case CorruptionNone:
		return "not_corrupted"
	case CorruptionShuffled:
		return "shuffled"
	case CorruptionRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseCorruption converts a configuration string into a Corruption mode.
//
// Parameters:
//   - s: "none", "not_corrupted", "shuffled" or "random" ("" means not
//     corrupted)
//
// Returns:
//   - Corruption: Parsed mode
//   - error: Wrapped ErrUnknownCorruption for any other value
func ParseCorruption(s string) (Corruption, error) {
	switch s {
	case "", "none", "not_corrupted":
		return CorruptionNone, nil
	case "shuffled":
		return CorruptionShuffled, nil
	case "random":
		return CorruptionRandom, nil
	default:
		return 0, fmt.Errorf("corruption mode %q: %w", s, ErrUnknownCorruption)
	}
}

// PartnerDescriptor declares one partner before any data is assigned to it.
//
// Descriptors are immutable inputs to the splitting engine: the engine reads
// them to decide each partner's volume and cluster assignment, then produces
// fully populated Partner values. Share is used by both split modes;
// ClusterCount and Kind only apply to advanced splits.
type PartnerDescriptor struct {
	// Share is the requested fraction of the global train set, in (0, 1].
	// Shares of all partners must sum to 1 within floating tolerance.
	Share float64

	// ClusterCount is the number of label clusters the partner draws from
	// (advanced mode only).
	ClusterCount int

	// Kind selects specific or shared cluster assignment (advanced mode only).
	Kind SplitKind

	// Corruption is the optional label corruption applied after splitting.
	Corruption Corruption
}

// Partner is one simulated participant of the collaborative scenario.
//
// A partner starts empty and is populated exactly once by a SplitStrategy.
// XTrain and YTrain are exclusively owned by the partner; XTest and YTest
// reference the shared global test split in advanced mode, or an exclusively
// owned local slice in simple mode. The (out of scope) training stage may
// mutate a partner's own fields but never the global dataset.
type Partner struct {
	// ID is the partner's position in the descriptor list (0..K-1).
	ID int

	// Descriptor is the declaration this partner was built from.
	Descriptor PartnerDescriptor

	// AssignedClusters lists the label values assigned to the partner
	// (advanced mode only; nil for simple splits).
	AssignedClusters []int

	// XTrain and YTrain hold the partner's train subset.
	XTrain [][]float64
	YTrain []int

	// XTest and YTest hold the partner's test data.
	XTest [][]float64
	YTest []int
}

// TrainSize returns the number of train samples held by the partner.
func (p *Partner) TrainSize() int {
	return len(p.YTrain)
}

// LabelDistribution counts the partner's train samples per label value.
//
// Returns:
//   - map[int]int: Label value to sample count
func (p *Partner) LabelDistribution() map[int]int {
	dist := make(map[int]int, 16)
	for _, y := range p.YTrain {
		dist[y]++
	}

	return dist
}

// ShuffleLabels permutes the partner's train labels in place using the given
// random source. Only the partner's own label slice is touched.
//
// Parameters:
//   - rng: Seeded random source driving the permutation
func (p *Partner) ShuffleLabels(rng *rand.Rand) {
	rng.Shuffle(len(p.YTrain), func(i, j int) {
		p.YTrain[i], p.YTrain[j] = p.YTrain[j], p.YTrain[i]
	})
}

// RandomizeLabels replaces every train label with a uniform draw from the
// given label set. Only the partner's own label slice is touched.
//
// Parameters:
//   - rng: Seeded random source driving the draws
//   - labels: Candidate label values (typically Dataset.DistinctLabels)
func (p *Partner) RandomizeLabels(rng *rand.Rand, labels []int) {
	if len(labels) == 0 {
		return
	}
	for i := range p.YTrain {
		p.YTrain[i] = labels[rng.IntN(len(labels))]
	}
}
