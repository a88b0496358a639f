package allocation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	mplctesting "github.com/mshuaic/distributed-learning-contributivity/testing"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestPlanAssignments(t *testing.T) {
	idx := BuildClusters(mplctesting.BalancedDataset(10, 10).YTrain)

	t.Run("specific partners receive disjoint contiguous blocks", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 0.5, ClusterCount: 3, Kind: types.SplitSpecific},
			{Share: 0.3, ClusterCount: 2, Kind: types.SplitSpecific},
			{Share: 0.2, ClusterCount: 4, Kind: types.SplitSpecific},
		}

		plan, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.NoError(t, err)
		require.Len(t, plan.Specific, 3)
		require.Empty(t, plan.Shared)

		seen := make(map[int]int)
		for _, pp := range plan.Specific {
			require.Len(t, pp.Clusters, pp.ClusterCount)
			for _, label := range pp.Clusters {
				seen[label]++
			}
		}
		for label, n := range seen {
			require.Equalf(t, 1, n, "label %d assigned to %d specific partners", label, n)
		}
	})

	t.Run("sorts partners by cluster count descending", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 0.3, ClusterCount: 1, Kind: types.SplitSpecific},
			{Share: 0.4, ClusterCount: 4, Kind: types.SplitSpecific},
			{Share: 0.3, ClusterCount: 2, Kind: types.SplitSpecific},
		}

		plan, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 0}, []int{
			plan.Specific[0].PartnerID,
			plan.Specific[1].PartnerID,
			plan.Specific[2].PartnerID,
		})
	})

	t.Run("shared partners draw from the common pool without replacement", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 0.4, ClusterCount: 3, Kind: types.SplitSpecific},
			{Share: 0.3, ClusterCount: 4, Kind: types.SplitShared},
			{Share: 0.3, ClusterCount: 2, Kind: types.SplitShared},
		}

		plan, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.NoError(t, err)
		require.Len(t, plan.SharedPool, 4) // max shared cluster count

		for _, pp := range plan.Shared {
			require.Len(t, pp.Clusters, pp.ClusterCount)
			unique := make(map[int]struct{})
			for _, label := range pp.Clusters {
				require.Contains(t, plan.SharedPool, label)
				unique[label] = struct{}{}
			}
			require.Len(t, unique, pp.ClusterCount)
		}

		// Shared pool must not overlap specific blocks.
		for _, pp := range plan.Specific {
			for _, label := range pp.Clusters {
				require.NotContains(t, plan.SharedPool, label)
			}
		}
	})

	t.Run("validation passes at exact capacity", func(t *testing.T) {
		// 3 + 2 specific over 10 labels.
		descriptors := []types.PartnerDescriptor{
			{Share: 0.6, ClusterCount: 3, Kind: types.SplitSpecific},
			{Share: 0.4, ClusterCount: 2, Kind: types.SplitSpecific},
		}

		_, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.NoError(t, err)
	})

	t.Run("rejects cluster demand above distinct labels", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 0.5, ClusterCount: 6, Kind: types.SplitSpecific},
			{Share: 0.5, ClusterCount: 5, Kind: types.SplitSpecific},
		}

		_, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.ErrorIs(t, err, types.ErrInsufficientClusters)
	})

	t.Run("rejects non-positive cluster count", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 1, ClusterCount: 0, Kind: types.SplitSpecific},
		}

		_, err := PlanAssignments(descriptors, idx, newRNG(42))

		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("identical seeds produce identical plans", func(t *testing.T) {
		descriptors := []types.PartnerDescriptor{
			{Share: 0.4, ClusterCount: 3, Kind: types.SplitSpecific},
			{Share: 0.3, ClusterCount: 4, Kind: types.SplitShared},
			{Share: 0.3, ClusterCount: 2, Kind: types.SplitShared},
		}

		a, err := PlanAssignments(descriptors, idx, newRNG(7))
		require.NoError(t, err)
		b, err := PlanAssignments(descriptors, idx, newRNG(7))
		require.NoError(t, err)

		require.Equal(t, a, b)
	})
}
