package lazyvec

type options struct {
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures LazyVec constructor behavior.
type Option func(*options)

// WithCapacity pre-grows the index table so that writes below n never
// reallocate it. The allocation is O(n) but nothing is initialized: Len stays
// 0 and every read still fails until its index is written.
//
// Negative values are treated as 0.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithLogger configures structured logging. Index-table growth events are
// logged at Debug level.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
