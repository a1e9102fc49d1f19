package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "bookings_created_total",
			Help:      "Booking creation attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated)
	})
}

// ObserveHTTP increments the request counter for a handled request.
func ObserveHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// Booking creation outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// ObserveBooking increments the booking creation counter for an outcome.
func ObserveBooking(outcome string) {
	bookingsCreated.WithLabelValues(outcome).Inc()
}
