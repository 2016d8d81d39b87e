// Package reconciler advances in-flight bridge transfers through their lifecycle.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/bridge-reconciler/internal/metrics"
	"github.com/chainsafe/bridge-reconciler/pkg/runlock"
	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
	"github.com/chainsafe/bridge-reconciler/pkg/transferstore"
)

// MaxBatchSize caps how many active transfers a single run fetches.
const MaxBatchSize = 500

const (
	defaultWorkers = 8
	staleTimeout   = 5 * time.Second
)

// ErrRunInProgress is returned when another run holds the run lock.
var ErrRunInProgress = errors.New("reconciliation already in progress")

// Store is the narrow data-access interface the engine needs.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListActive(ctx context.Context, limit int) ([]*transfer.Transfer, error)
	UpdateIfUnchanged(ctx context.Context, id int64, expect transfer.Expectation, patch *transfer.Patch) error
	CountStale(ctx context.Context, before time.Time) (int, error)
}

// Service runs reconciliation cycles.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Reconcile(ctx context.Context) (*Result, error)
}

// Result summarizes one reconciliation run.
type Result struct {
	// Processed is the number of active transfers fetched.
	Processed int `json:"processed"`
	// Updated counts transitions committed to the store.
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Conflicts int `json:"conflicts"`
	Failed    int `json:"failed"`
	// Skipped counts fetched transfers not reached before the run's deadline.
	Skipped int `json:"skipped"`
	Stale   int `json:"stale"`
}

func (r *Result) record(outcome string) {
	switch outcome {
	case metrics.RecordUpdated:
		r.Updated++
	case metrics.RecordUnchanged:
		r.Unchanged++
	case metrics.RecordConflict:
		r.Conflicts++
	case metrics.RecordFailed:
		r.Failed++
	case metrics.RecordSkipped:
		r.Skipped++
	}
	metrics.RecordOutcomes.WithLabelValues(outcome).Inc()
}

// Options tunes a reconciliation run.
type Options struct {
	BatchSize  int
	Workers    int
	Timeout    time.Duration
	StaleAfter time.Duration
}

// Engine is the Service implementation.
type Engine struct {
	store   Store
	source  ConfirmationSource
	locker  runlock.Locker
	opts    Options
	logger  *zap.Logger
	now     func() time.Time
	newHash HashFunc
	plan    planFunc
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLocker serializes runs across processes.
func WithLocker(l runlock.Locker) Option {
	return func(e *Engine) { e.locker = l }
}

// WithClock overrides the cycle timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithHashFunc overrides placeholder hash synthesis.
func WithHashFunc(h HashFunc) Option {
	return func(e *Engine) { e.newHash = h }
}

// NewEngine creates a reconciliation engine.
func NewEngine(store Store, source ConfirmationSource, opts Options, logger *zap.Logger, options ...Option) *Engine {
	if opts.BatchSize <= 0 || opts.BatchSize > MaxBatchSize {
		opts.BatchSize = MaxBatchSize
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	e := &Engine{
		store:   store,
		source:  source,
		locker:  runlock.Noop{},
		opts:    opts,
		logger:  logger,
		now:     time.Now,
		newHash: transfer.NewPlaceholderHash,
		plan:    plan,
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Reconcile fetches up to one batch of active transfers and applies exactly
// one transition to each. Only a failed fetch (or lock error) fails the run;
// per-record failures are counted in the result.
func (e *Engine) Reconcile(ctx context.Context) (*Result, error) {
	token, ok, err := e.locker.TryLock(ctx)
	if err != nil {
		metrics.ReconcileRuns.WithLabelValues(metrics.RunFailed).Inc()
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		metrics.ReconcileRuns.WithLabelValues(metrics.RunLocked).Inc()
		return nil, ErrRunInProgress
	}
	defer func() {
		if err := e.locker.Unlock(context.WithoutCancel(ctx), token); err != nil {
			e.logger.Warn("Failed to release run lock", zap.Error(err))
		}
	}()

	start := time.Now()
	defer func() { metrics.ReconcileDuration.Observe(time.Since(start).Seconds()) }()

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	now := e.now()

	transfers, err := e.store.ListActive(ctx, e.opts.BatchSize)
	if err != nil {
		metrics.ReconcileRuns.WithLabelValues(metrics.RunFailed).Inc()
		return nil, fmt.Errorf("failed to fetch active transfers: %w", err)
	}
	metrics.BatchSize.Set(float64(len(transfers)))

	res := &Result{Processed: len(transfers)}
	var mu sync.Mutex
	collect := func(outcome string) {
		mu.Lock()
		res.record(outcome)
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i, t := range transfers {
		if ctx.Err() != nil {
			for range transfers[i:] {
				collect(metrics.RecordSkipped)
			}
			break
		}
		g.Go(func() error {
			collect(e.apply(ctx, t, now))
			return nil
		})
	}
	_ = g.Wait()

	if e.opts.StaleAfter > 0 {
		// the run deadline may already have passed
		staleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), staleTimeout)
		res.Stale = e.reportStale(staleCtx, now)
		cancel()
	}

	metrics.ReconcileRuns.WithLabelValues(metrics.RunSucceeded).Inc()
	return res, nil
}

// apply moves a single transfer one step and returns the record outcome.
func (e *Engine) apply(ctx context.Context, t *transfer.Transfer, now time.Time) string {
	if ctx.Err() != nil {
		return metrics.RecordSkipped
	}

	var obs Observation
	if needsObservation(t) {
		var err error
		obs, err = e.source.Observe(ctx, t)
		if err != nil {
			e.logger.Warn("Failed to observe confirmations",
				zap.String("bridge_id", t.BridgeID),
				zap.String("status", t.Status.String()),
				zap.Error(err))
			metrics.ErrorsTotal.WithLabelValues("reconciler", "observe").Inc()
			return metrics.RecordFailed
		}
	}

	patch := e.plan(t, obs, now, e.newHash)
	if patch == nil {
		return metrics.RecordUnchanged
	}
	if patch.Status != nil && *patch.Status != t.Status && !t.Status.CanTransitionTo(*patch.Status) {
		e.logger.Error("Refusing illegal status transition",
			zap.String("bridge_id", t.BridgeID),
			zap.String("from", t.Status.String()),
			zap.String("to", patch.Status.String()))
		metrics.ErrorsTotal.WithLabelValues("reconciler", "transition").Inc()
		return metrics.RecordFailed
	}

	err := e.store.UpdateIfUnchanged(ctx, t.ID, t.Expect(), patch)
	switch {
	case err == nil:
		to := t.Status
		if patch.Status != nil {
			to = *patch.Status
		}
		metrics.Transitions.WithLabelValues(t.Status.String(), to.String()).Inc()
		e.logger.Debug("Transfer advanced",
			zap.String("bridge_id", t.BridgeID),
			zap.String("from", t.Status.String()),
			zap.String("to", to.String()))
		return metrics.RecordUpdated
	case errors.Is(err, transferstore.ErrConflict):
		e.logger.Info("Transfer changed concurrently, leaving it for the next run",
			zap.String("bridge_id", t.BridgeID),
			zap.String("expected_status", t.Status.String()),
			zap.Int("expected_confirmations", t.Confirmations))
		return metrics.RecordConflict
	default:
		e.logger.Warn("Failed to update transfer",
			zap.String("bridge_id", t.BridgeID),
			zap.Int64("id", t.ID),
			zap.Error(err))
		metrics.ErrorsTotal.WithLabelValues("reconciler", "update").Inc()
		return metrics.RecordFailed
	}
}

// reportStale surfaces active transfers that have not completed within the
// stale window. They are never mutated.
func (e *Engine) reportStale(ctx context.Context, now time.Time) int {
	n, err := e.store.CountStale(ctx, now.Add(-e.opts.StaleAfter))
	if err != nil {
		e.logger.Warn("Failed to count stale transfers", zap.Error(err))
		return 0
	}
	metrics.StaleTransfers.Set(float64(n))
	if n > 0 {
		e.logger.Warn("Active transfers exceeded the stale threshold",
			zap.Int("count", n),
			zap.Duration("stale_after", e.opts.StaleAfter))
	}
	return n
}

var _ Service = (*Engine)(nil)
