// Package metrics defines and registers all custom Prometheus metrics for the
// catalog service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at init; the router exposes them
// on GET /metrics together with the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token", "invalid_token", or "bad_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ProductWritesTotal counts catalog mutations.
// Label:
//   - op: "create", "update", or "delete"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of catalog writes, by operation.",
	},
	[]string{"op"},
)

// ChatMessagesTotal counts chat messages persisted and broadcast.
var ChatMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat messages persisted and broadcast.",
	},
)

// ChatConnectionsActive tracks websocket sessions currently registered with the hub.
var ChatConnectionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_connections_active",
		Help:      "Current number of active chat websocket connections.",
	},
)
