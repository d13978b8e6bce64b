// Package metrics defines and registers all custom Prometheus metrics for
// the rental API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// RentalsCreatedTotal counts successfully opened rentals.
var RentalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_created_total",
		Help:      "Total number of rentals created.",
	},
)

// ReturnsProcessedTotal counts return attempts by outcome.
// Label:
//   - result: "returned", "already_processed", "not_found"
var ReturnsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_processed_total",
		Help:      "Total number of return requests, labelled by outcome.",
	},
	[]string{"result"},
)

// RentalFee observes the fee charged per completed return.
var RentalFee = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fee_amount",
		Help:      "Rental fee charged per completed return.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1, 2, 4, .. 512
	},
)

// AuthFailuresTotal counts rejected login attempts.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed login attempts.",
	},
)
