package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"

	mplctesting "github.com/mshuaic/distributed-learning-contributivity/testing"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// plan builds a Plan directly so resize tests control cluster assignment
// without going through the planner's shuffle.
func fixedPlan(specific, shared []PartnerPlan, pool []int) *Plan {
	return &Plan{Specific: specific, Shared: shared, SharedPool: pool}
}

func TestFactor(t *testing.T) {
	// 10 labels with 100 train samples each, 1000 total.
	idx := BuildClusters(mplctesting.BalancedDataset(10, 100).YTrain)

	t.Run("factor is 1 when requested matches availability exactly", func(t *testing.T) {
		plan := fixedPlan([]PartnerPlan{
			{PartnerID: 0, Share: 0.3, ClusterCount: 3, Clusters: []int{0, 1, 2}},
			{PartnerID: 1, Share: 0.2, ClusterCount: 2, Clusters: []int{3, 4}},
		}, []PartnerPlan{
			{PartnerID: 2, Share: 0.5, ClusterCount: 5, Clusters: []int{5, 6, 7, 8, 9}},
		}, []int{5, 6, 7, 8, 9})

		factor, err := Factor(plan, idx, 1000)

		require.NoError(t, err)
		require.InDelta(t, 1.0, factor, 1e-12)
	})

	t.Run("stage A shrinks overdemanding specific partners", func(t *testing.T) {
		plan := fixedPlan([]PartnerPlan{
			{PartnerID: 0, Share: 0.6, ClusterCount: 3, Clusters: []int{0, 1, 2}},
			{PartnerID: 1, Share: 0.4, ClusterCount: 2, Clusters: []int{3, 4}},
		}, nil, nil)

		factor, err := Factor(plan, idx, 1000)

		require.NoError(t, err)
		// 300 available / 600 requested binds both partners at 0.5.
		require.InDelta(t, 0.5, factor, 1e-12)
	})

	t.Run("stage B shrinks contended shared clusters", func(t *testing.T) {
		// Two shared partners pile 400+400 resized demand onto one pool of
		// two clusters: 400 per cluster against 100 capacity.
		plan := fixedPlan(nil, []PartnerPlan{
			{PartnerID: 0, Share: 0.4, ClusterCount: 2, Clusters: []int{0, 1}},
			{PartnerID: 1, Share: 0.4, ClusterCount: 2, Clusters: []int{0, 1}},
		}, []int{0, 1})

		factor, err := Factor(plan, idx, 1000)

		require.NoError(t, err)
		require.InDelta(t, 0.25, factor, 1e-12)
	})

	t.Run("stages compose multiplicatively", func(t *testing.T) {
		plan := fixedPlan([]PartnerPlan{
			// 100 available / 500 requested: stage A factor 0.2.
			{PartnerID: 0, Share: 0.5, ClusterCount: 1, Clusters: []int{0}},
		}, []PartnerPlan{
			// Resized by stage A: 500*0.2=100 over 1 cluster, within the 100
			// capacity, so stage B stays 1.
			{PartnerID: 1, Share: 0.5, ClusterCount: 1, Clusters: []int{1}},
		}, []int{1})

		factor, err := Factor(plan, idx, 1000)

		require.NoError(t, err)
		require.InDelta(t, 0.2, factor, 1e-12)
	})

	t.Run("pool clusters nobody drew constrain nothing", func(t *testing.T) {
		plan := fixedPlan(nil, []PartnerPlan{
			{PartnerID: 0, Share: 1, ClusterCount: 1, Clusters: []int{0}},
		}, []int{0, 1, 2})

		factor, err := Factor(plan, idx, 100)

		require.NoError(t, err)
		require.InDelta(t, 1.0, factor, 1e-12)
	})

	t.Run("rejects empty train set", func(t *testing.T) {
		plan := fixedPlan(nil, nil, nil)

		_, err := Factor(plan, idx, 0)

		require.ErrorIs(t, err, types.ErrEmptyTrainSet)
	})

	t.Run("rejects a share that truncates to zero samples", func(t *testing.T) {
		plan := fixedPlan([]PartnerPlan{
			{PartnerID: 0, Share: 0.0001, ClusterCount: 1, Clusters: []int{0}},
		}, nil, nil)

		_, err := Factor(plan, idx, 1000)

		require.ErrorIs(t, err, types.ErrZeroSampleRequest)
	})
}

func TestQuotaFor(t *testing.T) {
	t.Run("truncates total and per-cluster volumes", func(t *testing.T) {
		pp := PartnerPlan{Share: 0.5, ClusterCount: 3}

		quota := QuotaFor(pp, 1000, 0.85)

		require.Equal(t, 425, quota.Samples)
		require.Equal(t, 141, quota.PerCluster)
	})

	t.Run("factor 1 keeps the requested volume", func(t *testing.T) {
		pp := PartnerPlan{Share: 0.2, ClusterCount: 2}

		quota := QuotaFor(pp, 1000, 1)

		require.Equal(t, 200, quota.Samples)
		require.Equal(t, 100, quota.PerCluster)
	})
}
