// Package metrics defines all custom Prometheus metrics for the banking API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "banking"

// RequestsTotal counts API requests by traffic kind, mirroring the logs
// table the dashboard reads.
// Label:
//   - kind: "read" (GET) or "write" (anything else)
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests, by traffic kind.",
	},
	[]string{"kind"},
)

// AccountsOpenedTotal counts newly opened accounts.
// Label:
//   - account_type: "savings" or "current"
var AccountsOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_opened_total",
		Help:      "Total number of accounts opened, by account type.",
	},
	[]string{"account_type"},
)

// MoneyMovementsTotal counts deposit/withdraw/transfer operations.
// Labels:
//   - kind: "deposit", "withdraw", or "transfer"
//   - result: "ok" or "rejected" (procedure signaled a business failure)
var MoneyMovementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "money_movements_total",
		Help:      "Total number of money movement operations, by kind and result.",
	},
	[]string{"kind", "result"},
)

// SigninsTotal counts authentication attempts.
// Label:
//   - result: "ok" or "failed"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)
