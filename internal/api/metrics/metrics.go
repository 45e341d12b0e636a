// Package metrics registers the application's Prometheus collectors.
// Request-level metrics come from the echoprometheus middleware; these cover
// domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alesthetic"

var (
	// AppointmentsCreatedTotal counts successfully booked appointments.
	AppointmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Number of appointments booked successfully.",
	})

	// BookingConflictsTotal counts create attempts rejected because the
	// entity's natural key was already taken.
	BookingConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Number of create attempts rejected as duplicates, by entity.",
	}, []string{"entity"})

	// TokensIssuedTotal counts bearer tokens handed out by login and refresh.
	TokensIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Number of bearer tokens issued.",
	})

	// LoginThrottledTotal counts token requests rejected by the rate limiter.
	LoginThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Number of token requests rejected by the login rate limiter.",
	})
)
