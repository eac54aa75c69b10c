package spacesearch

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	maxSuccessors    int
	setMaxSuccessors bool
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Searcher construction.
type Option func(*options)

// WithLogger configures structured logging for a searcher.
// Pass nil to disable logging.
//
// Example:
//
//	s := spacesearch.New(start, m,
//	    spacesearch.WithLogger(spacesearch.NewTextLogger(slog.LevelDebug)),
//	)
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spacesearch.BasicMetricsCollector{}
//	s := spacesearch.New(start, m, spacesearch.WithMetricsCollector(metrics))
//	// ... pull solutions ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMaxSuccessors caps how many successors are drawn from each expanded
// state, overriding the manager's configuration. Zero means unlimited.
//
// Successor sequences are always consumed lazily. With a cap, a state whose
// NextStates never ends still yields control after n successors, so the
// search keeps making progress on infinite branching.
func WithMaxSuccessors(n int) Option {
	return func(o *options) {
		o.maxSuccessors = n
		o.setMaxSuccessors = true
	}
}
