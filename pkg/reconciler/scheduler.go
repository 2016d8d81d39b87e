package reconciler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Scheduler invokes a Service on a fixed interval.
type Scheduler struct {
	svc        Service
	interval   time.Duration
	runOnStart bool
	logger     *zap.Logger

	ready  atomic.Bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler; call Start to begin ticking.
func NewScheduler(svc Service, interval time.Duration, runOnStart bool, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		svc:        svc,
		interval:   interval,
		runOnStart: runOnStart,
		logger:     logger,
	}
}

// Start runs reconciliation in a background goroutine until Stop is called.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("Started periodic reconciliation", zap.Duration("interval", s.interval))

		if s.runOnStart {
			s.runOnce(ctx)
		}

		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-ctx.Done():
				s.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

// Stop cancels any in-flight run and waits for the loop to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Ready reports whether at least one run has completed.
func (s *Scheduler) Ready() bool {
	return s.ready.Load()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	// errors are logged by the service decorator
	_, err := s.svc.Reconcile(ctx)
	if err == nil || errors.Is(err, ErrRunInProgress) {
		s.ready.Store(true)
	}
}
