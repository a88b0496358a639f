package types

// SplitStrategy materializes per-partner data subsets from the global dataset.
//
// Strategies implement the two splitting policies:
//   - Simple: flat percentage split with "random" or "stratified" ordering
//   - Advanced: cluster-based split with specific/shared label groups and
//     demand-driven rebalancing
//
// Strategy implementations should:
//   - Be deterministic given their configured seed (same input → same output)
//   - Populate every partner exactly once, or no partner at all on error
//   - Never mutate the global dataset
type SplitStrategy interface {
	// Split builds one populated Partner per descriptor.
	//
	// Parameters:
	//   - dataset: Immutable global dataset
	//   - descriptors: Ordered partner declarations (index = partner ID)
	//
	// Returns:
	//   - []*Partner: Populated partners, one per descriptor, in order
	//   - error: Configuration, allocation or precondition error
	Split(dataset *Dataset, descriptors []PartnerDescriptor) ([]*Partner, error)
}
