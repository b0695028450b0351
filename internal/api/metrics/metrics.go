// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; no further setup is needed before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store"

// ── Purchase metrics ──────────────────────────────────────────────────────────

// PurchasesCreatedTotal counts purchases that committed successfully.
var PurchasesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_created_total",
		Help:      "Total number of purchases committed.",
	},
)

// PurchaseAmount observes the total amount of each committed purchase.
var PurchaseAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "purchase_amount",
		Help:      "Total amount of committed purchases.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000},
	},
)

// PurchaseRejectionsTotal counts purchase requests rejected before commit.
// Label:
//   - reason: "invalid_input", "user_not_found", "product_not_found", "insufficient_stock"
var PurchaseRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_rejections_total",
		Help:      "Total number of purchase requests rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)
