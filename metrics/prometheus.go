package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics describe the outcome of split runs: attempt counts, durations,
// partner volumes and the advanced-mode resize factor. Registration is
// deferred to the first recorded metric so constructing a collector never
// fails on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	splitDuration  *prometheus.HistogramVec
	splitAttempts  *prometheus.CounterVec
	partnerCount   prometheus.Gauge
	partnerSamples *prometheus.GaugeVec
	resizeFactor   prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "mplc" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "mplc"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.splitDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "duration_seconds",
			Help:      "Duration of split runs in seconds by split option.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		}, []string{"option"})

		p.splitAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "attempts_total",
			Help:      "Total split attempts by option and result.",
		}, []string{"option", "result"})

		p.partnerCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scenario",
			Name:      "partners",
			Help:      "Number of partners in the current scenario.",
		})

		p.partnerSamples = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scenario",
			Name:      "partner_train_samples",
			Help:      "Final train sample volume per partner.",
		}, []string{"partner"})

		p.resizeFactor = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "split",
			Name:      "resize_factor",
			Help:      "Final resize factor applied by the last advanced split.",
		})

		collectors := []prometheus.Collector{
			p.splitDuration, p.splitAttempts, p.partnerCount, p.partnerSamples, p.resizeFactor,
		}
		for _, c := range collectors {
			// Ignore AlreadyRegisteredError so shared registries are usable across scenarios.
			_ = p.reg.Register(c)
		}
	})
}

// RecordSplitDuration records the time taken by one split run.
func (p *PrometheusCollector) RecordSplitDuration(option string, seconds float64) {
	p.ensureRegistered()
	p.splitDuration.WithLabelValues(option).Observe(seconds)
}

// RecordSplitAttempt records a split attempt outcome.
func (p *PrometheusCollector) RecordSplitAttempt(option string, success bool) {
	p.ensureRegistered()
	result := "failure"
	if success {
		result = "success"
	}
	p.splitAttempts.WithLabelValues(option, result).Inc()
}

// RecordPartnerCount sets the number of partners in the scenario.
func (p *PrometheusCollector) RecordPartnerCount(count int) {
	p.ensureRegistered()
	p.partnerCount.Set(float64(count))
}

// RecordPartnerSamples sets the final train volume of one partner.
func (p *PrometheusCollector) RecordPartnerSamples(partnerID, samples int) {
	p.ensureRegistered()
	p.partnerSamples.WithLabelValues(strconv.Itoa(partnerID)).Set(float64(samples))
}

// RecordResizeFactor sets the final resize factor applied by an advanced split.
func (p *PrometheusCollector) RecordResizeFactor(factor float64) {
	p.ensureRegistered()
	p.resizeFactor.Set(factor)
}
