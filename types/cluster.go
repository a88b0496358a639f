package types

// Cluster groups the train samples carrying one distinct label value.
//
// A cluster is the unit of assignment in advanced splits. Indices preserve
// the original within-label order of the train split, so truncating a
// cluster always yields the same prefix for the same dataset.
type Cluster struct {
	// Label is the distinct label value shared by every sample in the cluster.
	Label int

	// Indices is the ordered sequence of train sample indices carrying Label.
	Indices []int
}

// Size returns the number of samples in the cluster.
func (c Cluster) Size() int {
	return len(c.Indices)
}
