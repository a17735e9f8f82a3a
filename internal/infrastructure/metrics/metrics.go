package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers prometheus metrics for use-case and controller
// execution times plus HTTP response statuses.
type Collector struct {
	useCaseDuration    *prometheus.HistogramVec
	controllerDuration *prometheus.HistogramVec
	httpStatus         *prometheus.CounterVec
}

// NewCollector registers the metrics against the provided registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accounts_usecase_duration_seconds",
			Help:    "Execution time of use cases.",
			Buckets: prometheus.DefBuckets,
		}, []string{"use_case"}),
		controllerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accounts_controller_duration_seconds",
			Help:    "Execution time of HTTP controllers.",
			Buckets: prometheus.DefBuckets,
		}, []string{"controller"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.useCaseDuration, c.controllerDuration, c.httpStatus)
	return c
}

// ObserveUseCaseDuration records a use-case execution time.
func (c *Collector) ObserveUseCaseDuration(useCase string, elapsed time.Duration) {
	c.useCaseDuration.WithLabelValues(useCase).Observe(elapsed.Seconds())
}

// ObserveControllerDuration records a controller execution time.
func (c *Collector) ObserveControllerDuration(controller string, elapsed time.Duration) {
	c.controllerDuration.WithLabelValues(controller).Observe(elapsed.Seconds())
}

// RecordHTTPStatus counts a response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler exposes the registry on /metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
