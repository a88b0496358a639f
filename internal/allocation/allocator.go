package allocation

import (
	"math"
	"slices"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// Summary describes the final per-partner volumes of an advanced split.
type Summary struct {
	// Absolute holds each partner's final train volume, indexed by partner ID.
	Absolute []int

	// Relative holds each partner's fraction of the total allocated volume,
	// rounded to two decimals, indexed by partner ID.
	Relative []float64

	// Factor is the resize factor that produced these volumes.
	Factor float64
}

// Allocate materializes each partner's train subset by slicing clusters
// according to the resized quotas.
//
// For every assigned cluster the allocator takes the first PerCluster
// indices in the cluster's original order (a truncation, not a fresh random
// subsample) and concatenates across the partner's clusters. A cluster
// smaller than the per-cluster quota contributes all of its samples; the
// resize factor guarantees this only absorbs integer truncation slack.
// Every partner references the same untouched global test split.
//
// No partner is populated until the whole allocation is known to succeed,
// so a failing scenario never leaks half-built partners.
//
// Parameters:
//   - dataset: Immutable global dataset
//   - descriptors: Ordered partner declarations (index = partner ID)
//   - plan: Cluster assignment from PlanAssignments
//   - idx: Cluster index of the train split
//   - factor: Final resize factor from Factor
//
// Returns:
//   - []*types.Partner: Populated partners ordered by partner ID
//   - Summary: Absolute and relative per-partner volumes
func Allocate(dataset *types.Dataset, descriptors []types.PartnerDescriptor, plan *Plan, idx *ClusterIndex, factor float64) ([]*types.Partner, Summary) {
	partners := make([]*types.Partner, len(descriptors))
	totalTrain := dataset.TrainSize()

	populate := func(pp PartnerPlan) {
		quota := QuotaFor(pp, totalTrain, factor)

		xTrain := make([][]float64, 0, quota.Samples)
		yTrain := make([]int, 0, quota.Samples)
		for _, label := range pp.Clusters {
			cl, _ := idx.Cluster(label)
			take := min(quota.PerCluster, cl.Size())
			for _, sample := range cl.Indices[:take] {
				xTrain = append(xTrain, dataset.XTrain[sample])
				yTrain = append(yTrain, dataset.YTrain[sample])
			}
		}

		partners[pp.PartnerID] = &types.Partner{
			ID:               pp.PartnerID,
			Descriptor:       descriptors[pp.PartnerID],
			AssignedClusters: slices.Clone(pp.Clusters),
			XTrain:           xTrain,
			YTrain:           yTrain,
			XTest:            dataset.XTest,
			YTest:            dataset.YTest,
		}
	}

	for _, pp := range plan.Specific {
		populate(pp)
	}
	for _, pp := range plan.Shared {
		populate(pp)
	}

	return partners, summarize(partners, factor)
}

// summarize computes the absolute and relative volume table for diagnostics.
func summarize(partners []*types.Partner, factor float64) Summary {
	summary := Summary{
		Absolute: make([]int, len(partners)),
		Relative: make([]float64, len(partners)),
		Factor:   factor,
	}

	total := 0
	for i, p := range partners {
		summary.Absolute[i] = p.TrainSize()
		total += p.TrainSize()
	}
	if total == 0 {
		return summary
	}
	for i := range summary.Relative {
		summary.Relative[i] = math.Round(float64(summary.Absolute[i])/float64(total)*100) / 100
	}

	return summary
}
