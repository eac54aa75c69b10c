// Package prometheus exports search metrics through the Prometheus client.
//
//	c := prometheus.NewCollector("puzzle")
//	prom.MustRegister(c)
//	s := spacesearch.New(start, m, spacesearch.WithMetricsCollector(c))
//
// Every series is labelled with the strategy string, e.g.
// strategy="guided/hashable/route".
package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/spacesearch"
)

// Compile time checks.
var (
	_ spacesearch.MetricsCollector = (*Collector)(nil)
	_ prometheus.Collector         = (*Collector)(nil)
)

// Collector implements spacesearch.MetricsCollector on top of Prometheus
// vectors. It is itself a prometheus.Collector and can be registered
// directly.
type Collector struct {
	expansions  *prometheus.CounterVec
	generated   *prometheus.CounterVec
	enqueued    *prometheus.CounterVec
	duplicates  *prometheus.CounterVec
	solutions   *prometheus.CounterVec
	exhaustions *prometheus.CounterVec
	depth       *prometheus.HistogramVec
}

// NewCollector creates a collector whose metric names are prefixed with
// namespace (e.g. "puzzle_search_expansions_total"). An empty namespace
// omits the prefix.
func NewCollector(namespace string) *Collector {
	labels := []string{"strategy"}
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      name,
			Help:      help,
		}, labels)
	}

	return &Collector{
		expansions:  counter("expansions_total", "States expanded."),
		generated:   counter("successors_generated_total", "Successor states produced by expansion."),
		enqueued:    counter("successors_enqueued_total", "Successor states placed on the frontier."),
		duplicates:  counter("duplicates_total", "Dequeued states skipped as already visited."),
		solutions:   counter("solutions_total", "Solutions yielded."),
		exhaustions: counter("exhaustions_total", "Searches that ran out of states."),
		depth: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "solution_depth",
			Help:      "Transitions from the initial state to each yielded solution.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, labels),
	}
}

// RecordExpansion implements spacesearch.MetricsCollector.
func (c *Collector) RecordExpansion(st spacesearch.Strategy, generated, enqueued int) {
	l := st.String()
	c.expansions.WithLabelValues(l).Inc()
	c.generated.WithLabelValues(l).Add(float64(generated))
	c.enqueued.WithLabelValues(l).Add(float64(enqueued))
}

// RecordDuplicate implements spacesearch.MetricsCollector.
func (c *Collector) RecordDuplicate(st spacesearch.Strategy) {
	c.duplicates.WithLabelValues(st.String()).Inc()
}

// RecordSolution implements spacesearch.MetricsCollector.
func (c *Collector) RecordSolution(st spacesearch.Strategy, depth int) {
	l := st.String()
	c.solutions.WithLabelValues(l).Inc()
	c.depth.WithLabelValues(l).Observe(float64(depth))
}

// RecordExhausted implements spacesearch.MetricsCollector.
func (c *Collector) RecordExhausted(st spacesearch.Strategy) {
	c.exhaustions.WithLabelValues(st.String()).Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, v := range c.vectors() {
		v.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, v := range c.vectors() {
		v.Collect(ch)
	}
}

func (c *Collector) vectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.expansions, c.generated, c.enqueued, c.duplicates,
		c.solutions, c.exhaustions, c.depth,
	}
}

// DepthBuckets returns the upper bounds of the solution depth histogram,
// formatted as Prometheus "le" label values.
func DepthBuckets() []string {
	b := prometheus.ExponentialBuckets(1, 2, 12)
	out := make([]string, len(b))
	for i, v := range b {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}
