package mplc

// Option configures a Scenario with optional dependencies.
type Option func(*scenarioOptions)

// scenarioOptions holds optional Scenario configuration.
type scenarioOptions struct {
	logger   Logger
	metrics  MetricsCollector
	strategy SplitStrategy
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style key/value pairs)
//
// Returns:
//   - Option: Functional option for NewScenario
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	scenario, err := mplc.NewScenario(&cfg, src, mplc.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *scenarioOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewScenario
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "mplc")
//	scenario, err := mplc.NewScenario(&cfg, src, mplc.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *scenarioOptions) {
		o.metrics = metrics
	}
}

// WithStrategy sets a custom split strategy, overriding the strategy the
// scenario would otherwise build from its SamplesSplitOption.
//
// Parameters:
//   - strategy: SplitStrategy implementation
//
// Returns:
//   - Option: Functional option for NewScenario
//
// Example:
//
//	strategy := splitter.NewAdvanced(splitter.WithSeed(7))
//	scenario, err := mplc.NewScenario(&cfg, src, mplc.WithStrategy(strategy))
func WithStrategy(strategy SplitStrategy) Option {
	return func(o *scenarioOptions) {
		o.strategy = strategy
	}
}
