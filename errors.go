package mplc

import "github.com/mshuaic/distributed-learning-contributivity/types"

// Sentinel errors returned by the Scenario.
//
// The definitions live in the `types` subpackage so that internal packages
// can return them without importing the root package; they are re-exported
// here for convenient errors.Is checks against `mplc.Err...`.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownSplitOption is returned for an unrecognized samples split option.
	ErrUnknownSplitOption = types.ErrUnknownSplitOption

	// ErrUnknownSplitKind is returned for an unrecognized cluster split kind.
	ErrUnknownSplitKind = types.ErrUnknownSplitKind

	// ErrUnknownCorruption is returned for an unrecognized corruption mode.
	ErrUnknownCorruption = types.ErrUnknownCorruption

	// ErrPartnerCountMismatch is returned when a per-partner list does not
	// match the configured partner count.
	ErrPartnerCountMismatch = types.ErrPartnerCountMismatch

	// ErrShareSum is returned when partner shares do not sum to 1.
	ErrShareSum = types.ErrShareSum

	// ErrInsufficientClusters is returned when the cluster demand of the
	// partners exceeds the distinct labels of the dataset.
	ErrInsufficientClusters = types.ErrInsufficientClusters

	// ErrDatasetSourceRequired is returned when the dataset source is nil.
	ErrDatasetSourceRequired = types.ErrDatasetSourceRequired

	// ErrEmptyTrainSet is returned when the global train split holds no samples.
	ErrEmptyTrainSet = types.ErrEmptyTrainSet

	// ErrMinibatchExceedsPartner is returned when the configured mini-batch
	// count exceeds the smallest partner's train set.
	ErrMinibatchExceedsPartner = types.ErrMinibatchExceedsPartner

	// ErrAlreadySplit is returned when Split is called on an already populated scenario.
	ErrAlreadySplit = types.ErrAlreadySplit

	// ErrNotSplit is returned when partners are requested before splitting.
	ErrNotSplit = types.ErrNotSplit
)
