// Package allocation implements the advanced cluster-based splitting pipeline.
//
// The pipeline runs in four deterministic steps:
//
//	BuildClusters → PlanAssignments → Factor → Allocate
//
// BuildClusters groups train samples by label into clusters with stable index
// ordering. PlanAssignments decides which label clusters each partner draws
// from, keeping specific partners disjoint and letting shared partners sample
// from a common pool. Factor reconciles requested per-partner volumes with
// actual cluster capacity in exactly two feasibility passes. Allocate slices
// clusters according to the resized quotas and builds the final partners.
//
// All randomness flows through explicit *rand.Rand instances supplied by the
// caller, so identical seeds and inputs always produce identical partitions.
package allocation
