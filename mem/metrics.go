package mem

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is an Allocator that exports Prometheus metrics for the
// traffic flowing through another allocator.
type Metrics struct {
	next Allocator

	allocTotal   prometheus.Counter
	deallocTotal prometheus.Counter
	refusedTotal prometheus.Counter
	liveBytes    prometheus.Gauge
}

// NewMetrics wraps next with Prometheus instrumentation registered on
// reg. The namespace prefixes every metric name, e.g. "myapp" yields
// myapp_container_allocations_total.
func NewMetrics(reg prometheus.Registerer, namespace string, next Allocator) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		next: next,
		allocTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_allocations_total",
			Help:      "Total container allocations admitted",
		}),
		deallocTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_deallocations_total",
			Help:      "Total container deallocations",
		}),
		refusedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_allocations_refused_total",
			Help:      "Total container allocations refused by the underlying allocator",
		}),
		liveBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_live_bytes",
			Help:      "Bytes currently held by live containers",
		}),
	}
}

func (m *Metrics) Allocate(size int) error {
	if err := m.next.Allocate(size); err != nil {
		m.refusedTotal.Inc()
		return err
	}
	m.allocTotal.Inc()
	m.liveBytes.Add(float64(size))
	return nil
}

func (m *Metrics) Deallocate(size int) {
	m.next.Deallocate(size)
	m.deallocTotal.Inc()
	m.liveBytes.Sub(float64(size))
}
