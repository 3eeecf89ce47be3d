// Package metrics defines the custom Prometheus metrics for the books API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics registered here use promauto, so importing the package is enough to
// register them with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "books_api"

// RegistrationsTotal counts successfully registered users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "user_not_found", or "invalid_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// BookWritesTotal counts successful mutations on the books resource.
// Label:
//   - operation: "create", "update", or "delete"
var BookWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "book_writes_total",
		Help:      "Total number of successful book mutations, labelled by operation.",
	},
	[]string{"operation"},
)
