package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the circulation collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	checkouts     *prometheus.CounterVec
	returns       *prometheus.CounterVec
	reservations  *prometheus.CounterVec
	notifications *prometheus.CounterVec
	faults        prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "circulation",
			Name:      "checkouts_total",
			Help:      "Checkout attempts by outcome",
		}, []string{"outcome"}),
		returns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "circulation",
			Name:      "returns_total",
			Help:      "Return attempts by resulting copy status or failure",
		}, []string{"outcome"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "circulation",
			Name:      "reservations_total",
			Help:      "Reservation lifecycle transitions",
		}, []string{"status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "circulation",
			Name:      "notifications_total",
			Help:      "Notification dispatches by result",
		}, []string{"result"}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "circulation",
			Name:      "consistency_faults_total",
			Help:      "Internal invariant violations detected",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.checkouts,
		m.returns,
		m.reservations,
		m.notifications,
		m.faults,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Checkout(outcome string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Return(outcome string) {
	if m == nil {
		return
	}
	m.returns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Reservation(status string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(status).Inc()
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) Fault() {
	if m == nil {
		return
	}
	m.faults.Inc()
}
