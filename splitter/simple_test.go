package splitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	mplctesting "github.com/mshuaic/distributed-learning-contributivity/testing"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

func shares(values ...float64) []types.PartnerDescriptor {
	descriptors := make([]types.PartnerDescriptor, len(values))
	for i, v := range values {
		descriptors[i] = types.PartnerDescriptor{Share: v}
	}

	return descriptors
}

func TestSimple_Split(t *testing.T) {
	ds := mplctesting.BalancedDataset(10, 100) // 1000 train, 10 test

	t.Run("cuts 500/300/200 for shares 0.5/0.3/0.2", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		partners, err := strategy.Split(ds, shares(0.5, 0.3, 0.2))

		require.NoError(t, err)
		require.Len(t, partners, 3)
		require.Equal(t, 500, partners[0].TrainSize())
		require.Equal(t, 300, partners[1].TrainSize())
		require.Equal(t, 200, partners[2].TrainSize())

		// Test set is cut at the same relative proportions.
		require.Len(t, partners[0].YTest, 5)
		require.Len(t, partners[1].YTest, 3)
		require.Len(t, partners[2].YTest, 2)
	})

	t.Run("single partner with share 1 receives everything", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		partners, err := strategy.Split(ds, shares(1))

		require.NoError(t, err)
		require.Len(t, partners, 1)
		require.Equal(t, ds.TrainSize(), partners[0].TrainSize())
		require.Len(t, partners[0].YTest, ds.TestSize())
	})

	t.Run("train indices round-trip to a permutation", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		partners, err := strategy.Split(ds, shares(0.5, 0.3, 0.2))
		require.NoError(t, err)

		// The fixture encodes the sample index as its only feature, so the
		// union of all partner features must be exactly 0..999.
		seen := make(map[float64]int, ds.TrainSize())
		for _, p := range partners {
			for _, row := range p.XTrain {
				seen[row[0]]++
			}
		}
		require.Len(t, seen, ds.TrainSize())
		for v, n := range seen {
			require.Equalf(t, 1, n, "sample %v assigned %d times", v, n)
		}
	})

	t.Run("identical seeds produce identical partitions", func(t *testing.T) {
		a, err := NewSimple(OrderRandom, WithSeed(7)).Split(ds, shares(0.6, 0.4))
		require.NoError(t, err)
		b, err := NewSimple(OrderRandom, WithSeed(7)).Split(ds, shares(0.6, 0.4))
		require.NoError(t, err)

		for k := range a {
			require.Equal(t, a[k].YTrain, b[k].YTrain)
			require.Equal(t, a[k].XTrain, b[k].XTrain)
		}
	})

	t.Run("different seeds produce different partitions", func(t *testing.T) {
		a, err := NewSimple(OrderRandom, WithSeed(1)).Split(ds, shares(0.6, 0.4))
		require.NoError(t, err)
		b, err := NewSimple(OrderRandom, WithSeed(2)).Split(ds, shares(0.6, 0.4))
		require.NoError(t, err)

		require.NotEqual(t, a[0].XTrain, b[0].XTrain)
	})

	t.Run("stratified ordering yields class-contiguous blocks", func(t *testing.T) {
		strategy := NewSimple(OrderStratified)

		partners, err := strategy.Split(ds, shares(0.5, 0.5))
		require.NoError(t, err)

		// Concatenated labels must be globally non-decreasing.
		prev := -1
		for _, p := range partners {
			for _, y := range p.YTrain {
				require.GreaterOrEqual(t, y, prev)
				prev = y
			}
		}

		// With 10 balanced labels, the first half covers labels 0..4 only.
		dist := partners[0].LabelDistribution()
		require.Equal(t, map[int]int{0: 100, 1: 100, 2: 100, 3: 100, 4: 100}, dist)
	})

	t.Run("rejects shares not summing to 1", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		partners, err := strategy.Split(ds, shares(0.5, 0.6))

		require.ErrorIs(t, err, types.ErrShareSum)
		require.Nil(t, partners)
	})

	t.Run("rejects out-of-range share", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		_, err := strategy.Split(ds, shares(1.2, -0.2))

		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects empty descriptor list", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		_, err := strategy.Split(ds, nil)

		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects minibatch count above the smallest partner", func(t *testing.T) {
		strategy := NewSimple(OrderRandom, WithMinibatchCount(250))

		partners, err := strategy.Split(ds, shares(0.8, 0.2))

		require.ErrorIs(t, err, types.ErrMinibatchExceedsPartner)
		require.Nil(t, partners)
	})

	t.Run("rejects empty dataset", func(t *testing.T) {
		strategy := NewSimple(OrderRandom)

		_, err := strategy.Split(&types.Dataset{}, shares(1))

		require.ErrorIs(t, err, types.ErrEmptyTrainSet)
	})
}

func TestParseOrder(t *testing.T) {
	t.Run("parses known options", func(t *testing.T) {
		order, err := ParseOrder("random")
		require.NoError(t, err)
		require.Equal(t, OrderRandom, order)

		order, err = ParseOrder("stratified")
		require.NoError(t, err)
		require.Equal(t, OrderStratified, order)
	})

	t.Run("rejects unrecognized option", func(t *testing.T) {
		_, err := ParseOrder("clustered")

		require.ErrorIs(t, err, types.ErrUnknownSplitOption)
	})
}
