package mplc

import "github.com/mshuaic/distributed-learning-contributivity/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the
// library's core types and interfaces. It uses type aliases to re-export
// definitions from the `types` subpackage, which contains the actual
// implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `mplc`
// package, while still providing a convenient `mplc.Dataset`,
// `mplc.Partner`, etc. for users.
type (
	Dataset           = types.Dataset
	Cluster           = types.Cluster
	Partner           = types.Partner
	PartnerDescriptor = types.PartnerDescriptor
	SplitKind         = types.SplitKind
	Corruption        = types.Corruption
)

// Re-export interfaces from the internal types package for convenience.
type (
	SplitStrategy    = types.SplitStrategy
	DatasetSource    = types.DatasetSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export SplitKind constants from the internal types package.
const (
	SplitSpecific = types.SplitSpecific
	SplitShared   = types.SplitShared
)

// Re-export Corruption constants from the internal types package.
const (
	CorruptionNone     = types.CorruptionNone
	CorruptionShuffled = types.CorruptionShuffled
	CorruptionRandom   = types.CorruptionRandom
)
