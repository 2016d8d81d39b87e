package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciliation run outcomes.
const (
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
	RunLocked    = "locked"
)

// Per-record outcomes within a run.
const (
	RecordUpdated   = "updated"
	RecordConflict  = "conflict"
	RecordFailed    = "failed"
	RecordSkipped   = "skipped"
	RecordUnchanged = "unchanged"
)

var (
	// ReconcileRuns counts reconciliation invocations by outcome
	ReconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_reconcile_runs_total",
			Help: "Total number of reconciliation runs",
		},
		[]string{"outcome"},
	)

	// ReconcileDuration tracks how long a reconciliation run takes
	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bridge_reconcile_duration_seconds",
			Help:    "Reconciliation run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BatchSize tracks how many active transfers the last run fetched
	BatchSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_reconcile_batch_size",
			Help: "Number of active transfers fetched by the last reconciliation run",
		},
	)

	// RecordOutcomes counts per-record results
	RecordOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_reconcile_records_total",
			Help: "Total number of transfer records handled by outcome",
		},
		[]string{"outcome"},
	)

	// Transitions counts committed status transitions
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_transfer_transitions_total",
			Help: "Total number of committed transfer status transitions",
		},
		[]string{"from", "to"},
	)

	// StaleTransfers tracks active transfers older than the configured stale threshold
	StaleTransfers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_stale_transfers",
			Help: "Number of active transfers initiated longer ago than the stale threshold",
		},
	)

	// TransfersInitiated counts transfers created by the initiator
	TransfersInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_transfers_initiated_total",
			Help: "Total number of bridge transfers initiated",
		},
		[]string{"destination_chain", "status"},
	)

	// RelayRequests counts chain relay lookups
	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_relay_requests_total",
			Help: "Total number of chain relay confirmation lookups",
		},
		[]string{"chain", "result"},
	)

	// RelayBreakerState tracks the circuit breaker state per chain (0 closed, 1 half-open, 2 open)
	RelayBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_relay_breaker_state",
			Help: "Relay circuit breaker state by chain",
		},
		[]string{"chain"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
