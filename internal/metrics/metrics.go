package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors exported on /metrics. A nil *Metrics is valid
// and records nothing, which keeps tests and tools free of registration.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec
	ReqDuration   *prometheus.HistogramVec
	InFlight      prometheus.Gauge

	StoreDuration *prometheus.HistogramVec
	StoreFailures *prometheus.CounterVec

	DomainEvents *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
			[]string{"route", "method", "status"},
		),
		ReqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Request duration seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "document_store_duration_seconds",
				Help:    "Latency of document repository reads and writes",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		StoreFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "document_store_failures_total", Help: "Failed document repository calls"},
			[]string{"op"},
		),
		DomainEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "shop_events_total", Help: "Committed domain events"},
			[]string{"event"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.RequestsTotal, m.ReqDuration, m.InFlight, m.StoreDuration, m.StoreFailures, m.DomainEvents)
	}
	return m
}

// ObserveStore records one repository call. Not-found reads are not failures.
func (m *Metrics) ObserveStore(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil && !isNotFound(err) {
		m.StoreFailures.WithLabelValues(op).Inc()
	}
}

// Event counts a committed domain event such as "order_created".
func (m *Metrics) Event(name string) {
	if m == nil {
		return
	}
	m.DomainEvents.WithLabelValues(name).Inc()
}

// Handler exposes everything registered on g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
