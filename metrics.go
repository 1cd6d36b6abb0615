package skipset

import "github.com/prometheus/client_golang/prometheus"

// Monitor collects per-operation counters and the distribution of drawn
// tower heights. Attach one to a container with WithMonitor and register
// it with a prometheus registry; a nil Monitor costs nothing.
//
// A Monitor may be shared between containers (Clone propagates it), in
// which case the figures are aggregates.
type Monitor struct {
	inserts  prometheus.Counter
	erases   prometheus.Counter
	searches prometheus.Counter
	heights  prometheus.Histogram
}

// NewMonitor returns a Monitor whose metrics live under the given
// namespace.
func NewMonitor(namespace string) *Monitor {
	return &Monitor{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "skipset",
			Name:      "inserts_total",
			Help:      "Elements inserted.",
		}),
		erases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "skipset",
			Name:      "erases_total",
			Help:      "Elements erased, including those released by Clear.",
		}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "skipset",
			Name:      "searches_total",
			Help:      "Find operations.",
		}),
		heights: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "skipset",
			Name:      "tower_height",
			Help:      "Tower heights drawn on insert.",
			Buckets:   prometheus.LinearBuckets(1, 1, HeightCap),
		}),
	}
}

// Describe implements prometheus.Collector.
func (m *Monitor) Describe(ch chan<- *prometheus.Desc) {
	m.inserts.Describe(ch)
	m.erases.Describe(ch)
	m.searches.Describe(ch)
	m.heights.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Monitor) Collect(ch chan<- prometheus.Metric) {
	m.inserts.Collect(ch)
	m.erases.Collect(ch)
	m.searches.Collect(ch)
	m.heights.Collect(ch)
}

func (m *Monitor) observeInsert(height int) {
	if m == nil {
		return
	}
	m.inserts.Inc()
	m.heights.Observe(float64(height))
}

func (m *Monitor) observeErase() {
	if m == nil {
		return
	}
	m.erases.Inc()
}

func (m *Monitor) observeSearch() {
	if m == nil {
		return
	}
	m.searches.Inc()
}
