package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

func TestSynthetic_Load(t *testing.T) {
	cfg := SyntheticConfig{
		Labels:        5,
		Features:      8,
		TrainPerLabel: 20,
		TestPerLabel:  2,
		Seed:          42,
	}

	t.Run("generates the requested shape", func(t *testing.T) {
		src := NewSynthetic(cfg)

		ds, err := src.Load(context.Background())

		require.NoError(t, err)
		require.NoError(t, ds.Validate())
		require.Equal(t, 100, ds.TrainSize())
		require.Equal(t, 10, ds.TestSize())
		require.Len(t, ds.XTrain[0], 8)
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, ds.DistinctLabels())
	})

	t.Run("interleaves train labels", func(t *testing.T) {
		src := NewSynthetic(cfg)

		ds, err := src.Load(context.Background())

		require.NoError(t, err)
		for i, y := range ds.YTrain {
			require.Equal(t, i%cfg.Labels, y)
		}
	})

	t.Run("is deterministic per seed", func(t *testing.T) {
		a, err := NewSynthetic(cfg).Load(context.Background())
		require.NoError(t, err)
		b, err := NewSynthetic(cfg).Load(context.Background())
		require.NoError(t, err)

		require.Equal(t, a.XTrain, b.XTrain)
		require.Equal(t, a.YTrain, b.YTrain)
		require.Equal(t, a.XTest, b.XTest)
	})

	t.Run("different seeds generate different features", func(t *testing.T) {
		other := cfg
		other.Seed = 7

		a, err := NewSynthetic(cfg).Load(context.Background())
		require.NoError(t, err)
		b, err := NewSynthetic(other).Load(context.Background())
		require.NoError(t, err)

		require.NotEqual(t, a.XTrain[0], b.XTrain[0])
	})

	t.Run("rejects a degenerate shape", func(t *testing.T) {
		src := NewSynthetic(SyntheticConfig{Labels: 0, Features: 8, TrainPerLabel: 10})

		_, err := src.Load(context.Background())

		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}
