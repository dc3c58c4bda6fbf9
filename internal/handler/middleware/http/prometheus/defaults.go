package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

func defaultOptions() opts {
	return opts{
		registerer:      prometheus.DefaultRegisterer,
		namespace:       "http",
		labels:          make(prometheus.Labels),
		filterOperation: func(*http.Request) bool { return false },
	}
}
