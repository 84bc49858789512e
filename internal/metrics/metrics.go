package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route"},
	)

	bookingOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "booking_operations_total",
			Help:      "Booking operations by type and outcome.",
		},
		[]string{"op", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingOps)
	})
}

// IncHTTP increments the request counter for a method/route pair.
func IncHTTP(method, route string) {
	httpRequests.WithLabelValues(method, route).Inc()
}

// IncBookingOp increments the booking operation counter, outcome is
// "ok" or an error code.
func IncBookingOp(op, outcome string) {
	bookingOps.WithLabelValues(op, outcome).Inc()
}
