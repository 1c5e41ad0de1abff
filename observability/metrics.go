package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus instruments used by the service.
type Metrics struct {
	ActionOutcomes  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ActionOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_actions_total",
			Help:      "Task form actions by action name and outcome.",
		}, []string{"action", "outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_ms",
			Help:      "HTTP request duration in milliseconds by method and status.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "status"}),
	}
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, strconv.Itoa(status)).
		Observe(float64(d.Milliseconds()))
}

// RecordAction counts one action attempt with its outcome.
func (m *Metrics) RecordAction(action, outcome string) {
	m.ActionOutcomes.WithLabelValues(action, outcome).Inc()
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
