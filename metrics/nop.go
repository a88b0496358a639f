// Package metrics provides MetricsCollector implementations for the mplc library.
package metrics

import "github.com/mshuaic/distributed-learning-contributivity/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	sc, err := mplc.NewScenario(&cfg, src, mplc.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSplitDuration discards the split duration metric.
func (n *NopMetrics) RecordSplitDuration(_ /* option */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordSplitAttempt discards the split attempt metric.
func (n *NopMetrics) RecordSplitAttempt(_ /* option */ string, _ /* success */ bool) {
	// No-op
}

// RecordPartnerCount discards the partner count metric.
func (n *NopMetrics) RecordPartnerCount(_ /* count */ int) {
	// No-op
}

// RecordPartnerSamples discards the partner sample volume metric.
func (n *NopMetrics) RecordPartnerSamples(_ /* partnerID */, _ /* samples */ int) {
	// No-op
}

// RecordResizeFactor discards the resize factor metric.
func (n *NopMetrics) RecordResizeFactor(_ /* factor */ float64) {
	// No-op
}
