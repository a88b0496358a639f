package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"

	mplctesting "github.com/mshuaic/distributed-learning-contributivity/testing"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

func TestAllocate(t *testing.T) {
	ds := mplctesting.BalancedDataset(10, 100)
	idx := BuildClusters(ds.YTrain)

	descriptors := []types.PartnerDescriptor{
		{Share: 0.3, ClusterCount: 3, Kind: types.SplitSpecific},
		{Share: 0.2, ClusterCount: 2, Kind: types.SplitSpecific},
		{Share: 0.5, ClusterCount: 5, Kind: types.SplitShared},
	}
	plan := fixedPlan([]PartnerPlan{
		{PartnerID: 0, Share: 0.3, ClusterCount: 3, Clusters: []int{0, 1, 2}},
		{PartnerID: 1, Share: 0.2, ClusterCount: 2, Clusters: []int{3, 4}},
	}, []PartnerPlan{
		{PartnerID: 2, Share: 0.5, ClusterCount: 5, Clusters: []int{5, 6, 7, 8, 9}},
	}, []int{5, 6, 7, 8, 9})

	t.Run("slices cluster prefixes in original order", func(t *testing.T) {
		partners, _ := Allocate(ds, descriptors, plan, idx, 1)

		require.Len(t, partners, 3)
		require.Equal(t, 300, partners[0].TrainSize())
		require.Equal(t, 200, partners[1].TrainSize())
		require.Equal(t, 500, partners[2].TrainSize())

		// Partner 0 owns labels 0..2 exclusively, 100 samples each.
		require.Equal(t, map[int]int{0: 100, 1: 100, 2: 100}, partners[0].LabelDistribution())

		// The balanced fixture interleaves labels, so label 0's cluster is
		// samples 0,10,20,... Truncation must keep that exact prefix.
		require.Equal(t, []float64{0}, partners[0].XTrain[0])
		require.Equal(t, []float64{10}, partners[0].XTrain[1])
	})

	t.Run("every partner references the shared global test split", func(t *testing.T) {
		partners, _ := Allocate(ds, descriptors, plan, idx, 1)

		for _, p := range partners {
			require.Equal(t, ds.TestSize(), len(p.YTest))
			// Same backing arrays, not copies.
			require.Same(t, &ds.XTest[0], &p.XTest[0])
		}
	})

	t.Run("total allocation never exceeds the train set", func(t *testing.T) {
		for _, factor := range []float64{1, 0.85, 0.5, 0.1} {
			partners, _ := Allocate(ds, descriptors, plan, idx, factor)

			total := 0
			for _, p := range partners {
				total += p.TrainSize()
			}
			require.LessOrEqual(t, total, ds.TrainSize())
		}
	})

	t.Run("resize factor scales every partner uniformly", func(t *testing.T) {
		partners, summary := Allocate(ds, descriptors, plan, idx, 0.5)

		require.Equal(t, []int{150, 100, 250}, summary.Absolute)
		require.Equal(t, 150, partners[0].TrainSize())
		require.Equal(t, 0.5, summary.Factor)
	})

	t.Run("summary reports two-decimal relative volumes", func(t *testing.T) {
		_, summary := Allocate(ds, descriptors, plan, idx, 1)

		require.Equal(t, []int{300, 200, 500}, summary.Absolute)
		require.Equal(t, []float64{0.3, 0.2, 0.5}, summary.Relative)
	})

	t.Run("undersized clusters contribute everything they hold", func(t *testing.T) {
		// Label 1 holds only 30 samples; a per-cluster quota of 50 must not panic.
		skewed := mplctesting.SkewedDataset([]int{100, 30})
		skewedIdx := BuildClusters(skewed.YTrain)
		descs := []types.PartnerDescriptor{{Share: 1, ClusterCount: 2, Kind: types.SplitSpecific}}
		p := fixedPlan([]PartnerPlan{
			{PartnerID: 0, Share: 1, ClusterCount: 2, Clusters: []int{0, 1}},
		}, nil, nil)

		partners, _ := Allocate(skewed, descs, p, skewedIdx, 100.0/130.0)

		require.Len(t, partners, 1)
		dist := partners[0].LabelDistribution()
		require.Equal(t, 30, dist[1])
		require.LessOrEqual(t, partners[0].TrainSize(), skewed.TrainSize())
	})
}
