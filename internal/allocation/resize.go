package allocation

import (
	"fmt"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// Factor computes the global resize factor reconciling requested volumes
// with actual cluster capacity.
//
// The computation is exactly two feasibility passes, not an iterative
// solver; the two-pass result is already the binding constraint.
//
// Stage A (specific feasibility): for every specific partner compare the
// samples available in its clusters against its requested volume and take
// the smallest ratio, capped at 1.
//
// Stage B (shared feasibility): apply the stage A factor to every shared
// partner's volume, spread it evenly over its clusters, aggregate the demand
// per pool label, and take the smallest capacity/demand ratio, capped at 1.
// Pool labels with zero aggregated demand constrain nothing and are skipped.
//
// The final factor is the product of both stages. After applying it, no
// cluster is asked for more samples than it holds.
//
// Parameters:
//   - plan: Cluster assignment produced by PlanAssignments
//   - idx: Cluster index of the train split
//   - totalTrain: Global train sample count
//
// Returns:
//   - float64: Final resize factor in (0, 1]
//   - error: Wrapped ErrEmptyTrainSet or ErrZeroSampleRequest
func Factor(plan *Plan, idx *ClusterIndex, totalTrain int) (float64, error) {
	if totalTrain <= 0 {
		return 0, types.ErrEmptyTrainSet
	}

	// Stage A: specific feasibility.
	factorA := 1.0
	for _, pp := range plan.Specific {
		available := 0
		for _, label := range pp.Clusters {
			available += idx.Count(label)
		}
		requested := int(pp.Share * float64(totalTrain))
		if requested == 0 {
			return 0, fmt.Errorf("specific partner %d with share %g of %d samples: %w",
				pp.PartnerID, pp.Share, totalTrain, types.ErrZeroSampleRequest)
		}
		factorA = min(factorA, float64(available)/float64(requested))
	}

	if len(plan.Shared) == 0 {
		return factorA, nil
	}

	// Stage B: shared feasibility under the stage A factor.
	need := make(map[int]int, len(plan.SharedPool))
	for _, pp := range plan.Shared {
		resized := int(pp.Share * float64(totalTrain) * factorA)
		perCluster := resized / pp.ClusterCount
		for _, label := range pp.Clusters {
			need[label] += perCluster
		}
	}

	factorB := 1.0
	for _, label := range plan.SharedPool {
		demand := need[label]
		if demand == 0 {
			continue
		}
		factorB = min(factorB, float64(idx.Count(label))/float64(demand))
	}

	return factorA * factorB, nil
}

// Quota is the final resized volume of one partner.
type Quota struct {
	// Samples is the partner's total train volume after resizing.
	Samples int

	// PerCluster is the volume taken from each of the partner's clusters.
	PerCluster int
}

// QuotaFor computes the final volume of one planned partner under the given
// factor. Integer truncation mirrors the requested-volume computation.
//
// Parameters:
//   - pp: The partner's plan entry
//   - totalTrain: Global train sample count
//   - factor: Final resize factor from Factor
//
// Returns:
//   - Quota: Total and per-cluster sample counts
func QuotaFor(pp PartnerPlan, totalTrain int, factor float64) Quota {
	samples := int(pp.Share * float64(totalTrain) * factor)

	return Quota{Samples: samples, PerCluster: samples / pp.ClusterCount}
}
