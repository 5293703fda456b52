package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	wizardTransitions   *prometheus.CounterVec
	wizardRejections    *prometheus.CounterVec
	confirmations       prometheus.Counter
	offersReturned      prometheus.Histogram
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		wizardTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_transitions_total",
			Help:        "Booking wizard step transitions",
			ConstLabels: labels,
		}, []string{"from", "to"}),
		wizardRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_rejections_total",
			Help:        "Rejected booking wizard operations",
			ConstLabels: labels,
		}, []string{"operation", "reason"}),
		confirmations: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_confirmations_total",
			Help:        "Issued booking confirmations",
			ConstLabels: labels,
		}),
		offersReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_offers_returned",
			Help:        "Number of room offers returned by availability lookup",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32},
		}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) WizardTransition(from, to string) {
	m.wizardTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) WizardRejection(operation, reason string) {
	m.wizardRejections.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) ConfirmationIssued() {
	m.confirmations.Inc()
}

func (m *Metrics) OffersReturned(n int) {
	m.offersReturned.Observe(float64(n))
}
