package allocation

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// PartnerPlan records the cluster assignment decided for one partner.
type PartnerPlan struct {
	// PartnerID is the partner's position in the descriptor list.
	PartnerID int

	// Share is the partner's requested fraction of the train set.
	Share float64

	// ClusterCount is the number of clusters the partner draws from.
	ClusterCount int

	// Clusters lists the label values assigned to the partner.
	Clusters []int
}

// Plan is the immutable output of the assignment planner.
//
// The plan is produced once and consumed once to construct the final
// partners; no partner entity is mutated while planning, which keeps
// half-planned state from ever reaching the allocator.
type Plan struct {
	// Specific holds the plans of partners with exclusive clusters,
	// sorted by descending cluster count.
	Specific []PartnerPlan

	// Shared holds the plans of partners drawing from the common pool,
	// sorted by descending cluster count.
	Shared []PartnerPlan

	// SharedPool lists the label values reserved for shared partners.
	SharedPool []int
}

// PlanAssignments decides which label clusters each partner draws from.
//
// The algorithm:
//  1. Partition partners into specific and shared groups, each stably
//     sorted by descending cluster count
//  2. Shuffle the distinct labels with the supplied random source to obtain
//     a reproducible label ordering
//  3. Validate that total specific demand plus the largest shared demand
//     fits inside the distinct label count
//  4. Assign disjoint contiguous blocks of the shuffled labels to specific
//     partners, consuming front to back
//  5. Reserve the next max(shared cluster count) labels as the shared pool;
//     each shared partner samples its cluster count from the pool without
//     replacement, drawing from the same random source so the whole plan is
//     deterministic for a fixed seed
//
// Parameters:
//   - descriptors: Ordered partner declarations (index = partner ID)
//   - idx: Cluster index of the train split
//   - rng: Seeded random source driving the shuffle and pool draws
//
// Returns:
//   - *Plan: Immutable cluster assignment per partner
//   - error: Wrapped ErrInvalidConfig or ErrInsufficientClusters
func PlanAssignments(descriptors []types.PartnerDescriptor, idx *ClusterIndex, rng *rand.Rand) (*Plan, error) {
	plan := &Plan{}
	for id, desc := range descriptors {
		if desc.ClusterCount < 1 {
			return nil, fmt.Errorf("partner %d has cluster count %d: %w", id, desc.ClusterCount, types.ErrInvalidConfig)
		}
		pp := PartnerPlan{PartnerID: id, Share: desc.Share, ClusterCount: desc.ClusterCount}
		switch desc.Kind {
		case types.SplitSpecific:
			plan.Specific = append(plan.Specific, pp)
		case types.SplitShared:
			plan.Shared = append(plan.Shared, pp)
		default:
			return nil, fmt.Errorf("partner %d: split kind %d: %w", id, desc.Kind, types.ErrUnknownSplitKind)
		}
	}

	// Stable sort keeps equal cluster counts in partner order, making the
	// greedy walk reproducible.
	byCountDesc := func(a, b PartnerPlan) int { return b.ClusterCount - a.ClusterCount }
	slices.SortStableFunc(plan.Specific, byCountDesc)
	slices.SortStableFunc(plan.Shared, byCountDesc)

	labels := idx.Labels()
	rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	specificTotal := 0
	for _, pp := range plan.Specific {
		specificTotal += pp.ClusterCount
	}
	sharedMax := 0
	for _, pp := range plan.Shared {
		sharedMax = max(sharedMax, pp.ClusterCount)
	}
	if specificTotal+sharedMax > len(labels) {
		return nil, fmt.Errorf("%d specific + %d shared clusters over %d distinct labels: %w",
			specificTotal, sharedMax, len(labels), types.ErrInsufficientClusters)
	}

	// Greedy front-to-back consumption of the shuffled label list.
	cursor := 0
	for i := range plan.Specific {
		count := plan.Specific[i].ClusterCount
		plan.Specific[i].Clusters = slices.Clone(labels[cursor : cursor+count])
		cursor += count
	}

	plan.SharedPool = slices.Clone(labels[cursor : cursor+sharedMax])
	for i := range plan.Shared {
		plan.Shared[i].Clusters = samplePool(plan.SharedPool, plan.Shared[i].ClusterCount, rng)
	}

	return plan, nil
}

// samplePool draws k labels from the pool without replacement.
func samplePool(pool []int, k int, rng *rand.Rand) []int {
	perm := rng.Perm(len(pool))
	drawn := make([]int, k)
	for i := range k {
		drawn[i] = pool[perm[i]]
	}

	return drawn
}
