// Package metrics defines and registers all custom Prometheus metrics for
// the PizzaHub ordering API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pizzahub"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// OrdersPlacedTotal counts checkout outcomes.
// Label:
//   - result: "placed" (new order committed), "replayed" (idempotency key
//     matched an existing order) or "duplicate" (double-submit rejected)
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of checkout requests, labelled by outcome.",
	},
	[]string{"result"},
)

// OrderValue observes committed order totals in minor-currency units.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Distribution of committed order totals (minor units).",
		Buckets:   []float64{500, 1000, 2000, 4000, 8000, 16000},
	},
)
