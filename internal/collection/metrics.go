package collection

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the client's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	Fetches        prometheus.Counter
	FetchErrors    prometheus.Counter
	StaleDiscarded prometheus.Counter
	Mutations      *prometheus.CounterVec
	Entries        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "competency",
			Subsystem: "collection",
			Name:      "fetches_total",
			Help:      "Collection fetches started.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "competency",
			Subsystem: "collection",
			Name:      "fetch_errors_total",
			Help:      "Collection fetches that failed.",
		}),
		StaleDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "competency",
			Subsystem: "collection",
			Name:      "stale_discarded_total",
			Help:      "Fetch responses dropped because a newer fetch had started.",
		}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "competency",
			Subsystem: "collection",
			Name:      "mutations_total",
			Help:      "Mutations by outcome.",
		}, []string{"outcome"}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "competency",
			Subsystem: "collection",
			Name:      "entries",
			Help:      "Cached collection entries.",
		}),
	}
	reg.MustRegister(m.Fetches, m.FetchErrors, m.StaleDiscarded, m.Mutations, m.Entries)
	return m
}

func (m *Metrics) fetchStarted() {
	if m != nil {
		m.Fetches.Inc()
	}
}

func (m *Metrics) fetchFailed() {
	if m != nil {
		m.FetchErrors.Inc()
	}
}

func (m *Metrics) staleDiscarded() {
	if m != nil {
		m.StaleDiscarded.Inc()
	}
}

func (m *Metrics) mutation(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.Mutations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) entries(n int) {
	if m != nil {
		m.Entries.Set(float64(n))
	}
}
