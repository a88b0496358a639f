package allocation

import (
	"slices"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// ClusterIndex groups the train samples of a dataset by label value.
//
// The index is immutable after construction and safe for concurrent reads,
// which allows it to be cached and shared across scenarios running over the
// same dataset.
type ClusterIndex struct {
	clusters map[int]types.Cluster
	labels   []int
}

// BuildClusters groups sample indices by distinct label value.
//
// Within each cluster the original sample order is preserved, so truncating
// a cluster always yields the same prefix. The walk is a single O(N) pass
// with no randomness.
//
// Parameters:
//   - y: Train labels, indexed by sample position
//
// Returns:
//   - *ClusterIndex: Mapping from label value to its cluster
func BuildClusters(y []int) *ClusterIndex {
	idx := &ClusterIndex{
		clusters: make(map[int]types.Cluster, 16),
		labels:   make([]int, 0, 16),
	}

	for i, label := range y {
		cl, ok := idx.clusters[label]
		if !ok {
			idx.labels = append(idx.labels, label)
			cl = types.Cluster{Label: label}
		}
		cl.Indices = append(cl.Indices, i)
		idx.clusters[label] = cl
	}

	return idx
}

// Labels returns the distinct label values in first-seen order.
//
// Returns:
//   - []int: Copy of the label list, safe for the caller to reorder
func (ci *ClusterIndex) Labels() []int {
	return slices.Clone(ci.labels)
}

// NumLabels returns the number of distinct labels.
func (ci *ClusterIndex) NumLabels() int {
	return len(ci.labels)
}

// Cluster returns the cluster for a label value.
//
// Parameters:
//   - label: Label value to look up
//
// Returns:
//   - types.Cluster: The cluster (zero value if absent)
//   - bool: true if the label exists in the index
func (ci *ClusterIndex) Cluster(label int) (types.Cluster, bool) {
	cl, ok := ci.clusters[label]

	return cl, ok
}

// Count returns the number of samples carrying the given label.
func (ci *ClusterIndex) Count(label int) int {
	return len(ci.clusters[label].Indices)
}
