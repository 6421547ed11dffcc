package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds per-cache prometheus counters. A nil *Metrics is valid
// and records nothing, so instrumentation stays optional.
type Metrics struct {
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Sets      prometheus.Counter
	Evictions prometheus.Counter
}

// NewMetrics registers counters for one cache family, e.g.
// NewMetrics(reg, "group_messages").
func NewMetrics(reg prometheus.Registerer, family string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"family": family}
	return &Metrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Name:        "banter_cache_hits_total",
			Help:        "Cache reads served without touching the durable store.",
			ConstLabels: labels,
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Name:        "banter_cache_misses_total",
			Help:        "Cache reads that fell through to the durable store.",
			ConstLabels: labels,
		}),
		Sets: factory.NewCounter(prometheus.CounterOpts{
			Name:        "banter_cache_sets_total",
			Help:        "Cache entry writes.",
			ConstLabels: labels,
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Name:        "banter_cache_evictions_total",
			Help:        "Entries evicted after their TTL elapsed.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.Misses.Inc()
	}
}

func (m *Metrics) sets() {
	if m != nil {
		m.Sets.Inc()
	}
}

func (m *Metrics) evicted() {
	if m != nil {
		m.Evictions.Inc()
	}
}
