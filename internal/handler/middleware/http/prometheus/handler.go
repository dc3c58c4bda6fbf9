package prometheus

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricsHandler struct {
	reqCounter      *prometheus.CounterVec
	reqHistogram    *prometheus.HistogramVec
	reqInFlight     *prometheus.GaugeVec
	filterOperation OperationFilter
}

func New(options ...Option) func(http.Handler) http.Handler {
	conf := defaultOptions()

	for _, opt := range options {
		opt(&conf)
	}

	counter := promauto.With(conf.registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "requests_total"),
			Help:        "Count all requests by status code, method and path.",
			ConstLabels: conf.labels,
		},
		[]string{"http_code", "http_method", "http_path"},
	)

	histogram := promauto.With(conf.registerer).NewHistogramVec(prometheus.HistogramOpts{
		Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "request_duration_seconds"),
		Help:        "Duration of all requests by status code, method and path.",
		ConstLabels: conf.labels,
		Buckets: []float64{
			0.000001, // 1µs
			0.000002,
			0.000005,
			0.00001, // 10µs
			0.00002,
			0.00005,
			0.0001, // 100µs
			0.0002,
			0.0005,
			0.001, // 1ms
			0.002,
			0.005,
			0.01, // 10ms
			0.02,
			0.05,
			0.1, // 100 ms
			0.2,
			0.5,
			1.0, // 1s
			2.0,
			5.0,
		},
	},
		[]string{"http_code", "http_method", "http_path"},
	)

	gauge := promauto.With(conf.registerer).NewGaugeVec(prometheus.GaugeOpts{
		Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "requests_in_progress_total"),
		Help:        "All the requests in progress",
		ConstLabels: conf.labels,
	}, []string{"http_method"})

	handler := &metricsHandler{
		reqCounter:      counter,
		reqHistogram:    histogram,
		reqInFlight:     gauge,
		filterOperation: conf.filterOperation,
	}

	return handler.observeRequests
}

func (h *metricsHandler) observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if h.filterOperation(req) {
			next.ServeHTTP(rw, req)

			return
		}

		h.reqInFlight.WithLabelValues(req.Method).Inc()

		defer func() {
			h.reqInFlight.WithLabelValues(req.Method).Dec()
		}()

		metrics := httpsnoop.CaptureMetrics(next, rw, req)

		statusCode := strconv.Itoa(metrics.Code)
		h.reqCounter.WithLabelValues(statusCode, req.Method, req.URL.Path).Inc()
		h.reqHistogram.WithLabelValues(statusCode, req.Method, req.URL.Path).Observe(metrics.Duration.Seconds())
	})
}
