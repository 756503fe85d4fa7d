// Package metrics defines and registers all custom Prometheus metrics for the
// inventory service. It is the single source of truth for metric names,
// labels, and help strings, and deliberately lives outside both the core and
// the transport layers so either side can increment counters without
// depending on the other. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ItemsCreatedTotal counts newly created items.
// Label:
//   - category: the item category supplied at creation ("" when absent)
var ItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of items created, by category.",
	},
	[]string{"category"},
)

// PolicyDenialsTotal counts authorization denials.
// Label:
//   - action: the denied action (e.g. "edit", "delete", "view_users")
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of requests denied by the policy engine, by action.",
	},
	[]string{"action"},
)

// ValidationFailuresTotal counts item drafts rejected by the validation layer.
// Label:
//   - field: the first field that failed validation
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of item writes rejected by field validation.",
	},
	[]string{"field"},
)

// AuthFailuresTotal counts failed caller resolutions.
// Label:
//   - surface: "session" or "data"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests with missing or invalid credentials, by surface.",
	},
	[]string{"surface"},
)
