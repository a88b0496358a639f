package allocation

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// indexCache holds cluster indexes keyed by dataset fingerprint.
//
// Contributivity experiments construct many scenarios over the same dataset,
// so the per-label grouping is reused instead of being rebuilt per scenario.
// The map is safe for concurrent scenario construction; a rare duplicate
// build on first contact is harmless since indexes are immutable.
var indexCache = xsync.NewMap[uint64, *ClusterIndex]()

// IndexFor returns the cluster index for a dataset, building it on first use.
//
// Parameters:
//   - dataset: Dataset whose train labels are indexed
//
// Returns:
//   - *ClusterIndex: Cached or freshly built cluster index
func IndexFor(dataset *types.Dataset) *ClusterIndex {
	key := dataset.Fingerprint()
	if idx, ok := indexCache.Load(key); ok {
		return idx
	}

	idx := BuildClusters(dataset.YTrain)
	indexCache.Store(key, idx)

	return idx
}
