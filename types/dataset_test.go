package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataset_Validate(t *testing.T) {
	t.Run("accepts consistent dataset", func(t *testing.T) {
		ds := &Dataset{
			XTrain: [][]float64{{1}, {2}, {3}},
			YTrain: []int{0, 1, 0},
			XTest:  [][]float64{{4}},
			YTest:  []int{1},
		}

		require.NoError(t, ds.Validate())
	})

	t.Run("rejects empty train split", func(t *testing.T) {
		ds := &Dataset{}

		err := ds.Validate()

		require.ErrorIs(t, err, ErrEmptyTrainSet)
	})

	t.Run("rejects mismatched train arrays", func(t *testing.T) {
		ds := &Dataset{
			XTrain: [][]float64{{1}},
			YTrain: []int{0, 1},
		}

		err := ds.Validate()

		require.ErrorIs(t, err, ErrDatasetMismatch)
	})

	t.Run("rejects mismatched test arrays", func(t *testing.T) {
		ds := &Dataset{
			XTrain: [][]float64{{1}},
			YTrain: []int{0},
			XTest:  [][]float64{{2}, {3}},
			YTest:  []int{1},
		}

		err := ds.Validate()

		require.ErrorIs(t, err, ErrDatasetMismatch)
	})
}

func TestDataset_DistinctLabels(t *testing.T) {
	t.Run("preserves first-seen order", func(t *testing.T) {
		ds := &Dataset{YTrain: []int{3, 1, 3, 2, 1, 0}}

		require.Equal(t, []int{3, 1, 2, 0}, ds.DistinctLabels())
	})

	t.Run("empty train split yields no labels", func(t *testing.T) {
		ds := &Dataset{}

		require.Empty(t, ds.DistinctLabels())
	})
}

func TestDataset_Fingerprint(t *testing.T) {
	t.Run("identical labels produce identical fingerprints", func(t *testing.T) {
		a := &Dataset{YTrain: []int{0, 1, 2, 0, 1, 2}}
		b := &Dataset{YTrain: []int{0, 1, 2, 0, 1, 2}}

		require.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("different labels produce different fingerprints", func(t *testing.T) {
		a := &Dataset{YTrain: []int{0, 1, 2}}
		b := &Dataset{YTrain: []int{0, 1, 3}}

		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
