// Package metrics defines all custom Prometheus metrics for the TrackNest
// admin dashboard. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto and are served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Remote tracking API ───────────────────────────────────────────────────────

// RemoteRequestsTotal counts calls made to the remote shipment resource.
// Labels:
//   - op: "list shipments", "create shipment", "update shipment", "delete shipment"
//   - outcome: the HTTP status code, or "error" when no response arrived
var RemoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_requests_total",
		Help:      "Total number of calls to the remote tracking API, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// RemoteRequestDuration measures the latency of remote calls.
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of calls to the remote tracking API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// SkippedRecordsTotal counts list elements that were not shipment objects.
var SkippedRecordsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skipped_records_total",
		Help:      "Total number of remote list elements skipped because they were not shipment records.",
	},
)

// ── Shipment submissions ──────────────────────────────────────────────────────

// ValidationFailuresTotal counts submissions blocked before any network call.
// Label:
//   - field: the offending field (e.g. "tracking_number", "destination_coords")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of shipment submissions rejected by validation.",
	},
	[]string{"field"},
)

// ShipmentMutationsTotal counts create/update/delete attempts that reached
// the remote resource.
// Labels:
//   - action: "create", "update", "delete"
//   - outcome: "succeeded" or "failed"
var ShipmentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_mutations_total",
		Help:      "Total number of shipment mutations sent to the remote API, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// AuditFailuresTotal counts audit entries that could not be written.
var AuditFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_failures_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
)

// ── Sessions ──────────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of operator login attempts, by result.",
	},
	[]string{"result"},
)
