// Package metrics defines and registers all custom Prometheus metrics for the
// finance console. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry on import.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/finhub/console/internal/core/access"
)

const namespace = "console"

// ── Access metrics ────────────────────────────────────────────────────────────

// AccessDecisionsTotal counts capability checks.
// Labels:
//   - kind:   "resource_action" or "component", the addressing scheme of the key
//   - result: "allow" or "deny"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of capability checks, by key kind and result.",
	},
	[]string{"kind", "result"},
)

// UnknownCapabilityTotal counts checks against keys missing from the table.
// Label:
//   - kind: "resource_action" or "component". The key itself is logged, not
//     labelled, since /v1/access/check accepts arbitrary keys.
var UnknownCapabilityTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_capability_total",
		Help:      "Total number of checks against capabilities absent from the table.",
	},
	[]string{"kind"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionCacheTotal counts session cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var SessionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_total",
		Help:      "Total number of session cache lookups, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", "inactive", "not_found" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// DecisionRecorder returns an access observer that feeds the access metrics.
func DecisionRecorder() access.DecisionObserver {
	return access.ObserverFunc(func(d access.Decision) {
		kind := "component"
		if strings.Contains(d.Capability.String(), ":") {
			kind = "resource_action"
		}
		result := "deny"
		if d.Allowed {
			result = "allow"
		}
		AccessDecisionsTotal.WithLabelValues(kind, result).Inc()
		if !d.Known {
			UnknownCapabilityTotal.WithLabelValues(kind).Inc()
		}
	})
}
