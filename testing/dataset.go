package testing

import "github.com/mshuaic/distributed-learning-contributivity/types"

// BalancedDataset builds a deterministic dataset with perLabel train samples
// for each of numLabels label values, interleaved label by label
// (0,1,...,L-1,0,1,...), plus one test sample per label.
//
// Features encode the sample position so tests can verify exactly which
// samples a partner received: sample i has the single feature value float64(i).
//
// Parameters:
//   - numLabels: Number of distinct label values (0..numLabels-1)
//   - perLabel: Train samples per label
//
// Returns:
//   - *types.Dataset: Deterministic labeled dataset
func BalancedDataset(numLabels, perLabel int) *types.Dataset {
	total := numLabels * perLabel
	ds := &types.Dataset{
		XTrain: make([][]float64, total),
		YTrain: make([]int, total),
		XTest:  make([][]float64, numLabels),
		YTest:  make([]int, numLabels),
	}
	for i := range total {
		ds.XTrain[i] = []float64{float64(i)}
		ds.YTrain[i] = i % numLabels
	}
	for i := range numLabels {
		ds.XTest[i] = []float64{float64(total + i)}
		ds.YTest[i] = i
	}

	return ds
}

// SkewedDataset builds a deterministic dataset where label l has counts[l]
// train samples, laid out label block by label block, plus one test sample
// per label. Sample i has the single feature value float64(i).
//
// Parameters:
//   - counts: Train samples per label, indexed by label value
//
// Returns:
//   - *types.Dataset: Deterministic labeled dataset with skewed label sizes
func SkewedDataset(counts []int) *types.Dataset {
	total := 0
	for _, c := range counts {
		total += c
	}
	ds := &types.Dataset{
		XTrain: make([][]float64, 0, total),
		YTrain: make([]int, 0, total),
		XTest:  make([][]float64, len(counts)),
		YTest:  make([]int, len(counts)),
	}
	i := 0
	for label, c := range counts {
		for range c {
			ds.XTrain = append(ds.XTrain, []float64{float64(i)})
			ds.YTrain = append(ds.YTrain, label)
			i++
		}
	}
	for label := range counts {
		ds.XTest[label] = []float64{float64(total + label)}
		ds.YTest[label] = label
	}

	return ds
}
