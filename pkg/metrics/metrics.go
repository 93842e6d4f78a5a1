package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "http_requests_total", Help: "Number of handled HTTP requests by service, method, path and status."},
		[]string{"service", "method", "path", "status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
}
