package types

import "errors"

// Sentinel errors for the mplc library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// The errors fall into three groups matching the failure taxonomy of the
// splitting engine. All of them are fatal to scenario construction: they
// describe an invalid experiment definition, not a transient fault, and are
// surfaced before any partner is populated.

// Configuration errors - the scenario definition itself is inconsistent.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSplitOption is returned for an unrecognized samples split option.
	ErrUnknownSplitOption = errors.New("unrecognized samples split option")

	// ErrUnknownSplitKind is returned for a cluster split kind other than
	// "specific" or "shared".
	ErrUnknownSplitKind = errors.New("unrecognized cluster split kind")

	// ErrUnknownCorruption is returned for an unrecognized corruption mode.
	ErrUnknownCorruption = errors.New("unrecognized corruption mode")

	// ErrPartnerCountMismatch is returned when a per-partner list does not
	// have one entry per declared partner.
	ErrPartnerCountMismatch = errors.New("per-partner list length does not match partner count")

	// ErrShareSum is returned when partner shares do not sum to 1.
	ErrShareSum = errors.New("partner shares must sum to 1")

	// ErrInsufficientClusters is returned when the cluster demand of the
	// descriptors cannot be satisfied by the distinct labels of the dataset.
	ErrInsufficientClusters = errors.New("cluster demand exceeds distinct labels")

	// ErrDatasetSourceRequired is returned when the dataset source is nil.
	ErrDatasetSourceRequired = errors.New("dataset source is required")
)

// Allocation errors - the requested volumes cannot be materialized.
var (
	// ErrEmptyTrainSet is returned when the global train split holds no samples.
	ErrEmptyTrainSet = errors.New("train split is empty")

	// ErrDatasetMismatch is returned when feature and label arrays disagree in length.
	ErrDatasetMismatch = errors.New("feature and label arrays have mismatched lengths")

	// ErrZeroSampleRequest is returned when a partner's requested volume
	// truncates to zero samples, which would make a resize ratio undefined.
	ErrZeroSampleRequest = errors.New("partner requested volume truncates to zero samples")
)

// Precondition errors - the result would break the downstream trainer.
var (
	// ErrMinibatchExceedsPartner is returned when the configured mini-batch
	// count exceeds the smallest partner's train subset.
	ErrMinibatchExceedsPartner = errors.New("minibatch count exceeds smallest partner train set")
)

// Scenario errors - Public API errors returned by the Scenario orchestrator.
var (
	// ErrAlreadySplit is returned when Split is called on an already populated scenario.
	ErrAlreadySplit = errors.New("scenario already split")

	// ErrNotSplit is returned when partners are requested before splitting.
	ErrNotSplit = errors.New("scenario not split")
)
