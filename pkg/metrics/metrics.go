// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "event_booking"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	BookingAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_attempts_total",
		Help:      "Booking attempts by outcome.",
	}, []string{"outcome"})

	BookingCancellations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_cancellations_total",
		Help:      "Bookings cancelled.",
	})

	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publish_failures_total",
		Help:      "Booking notifications that could not be published.",
	}, []string{"routing_key"})
)

// Booking outcomes.
const (
	OutcomeBooked        = "booked"
	OutcomeNoSeats       = "no_seats"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)
