package reconciler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const serviceName = "ReconcileService"

// logService wraps Service with run-level logging
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the reconciliation Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Reconcile(ctx context.Context) (res *Result, err error) {
	start := time.Now()

	ls.logger.Debug("Reconcile started",
		zap.String("service", serviceName),
		zap.String("method", "Reconcile"),
	)

	defer func() {
		duration := time.Since(start)

		switch {
		case errors.Is(err, ErrRunInProgress):
			ls.logger.Info("Reconcile skipped, another run holds the lock",
				zap.String("service", serviceName),
				zap.String("method", "Reconcile"),
				zap.Duration("duration", duration),
			)
		case err != nil:
			ls.logger.Error("Reconcile failed",
				zap.String("service", serviceName),
				zap.String("method", "Reconcile"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		default:
			ls.logger.Info("Reconcile completed",
				zap.String("service", serviceName),
				zap.String("method", "Reconcile"),
				zap.Int("processed", res.Processed),
				zap.Int("updated", res.Updated),
				zap.Int("unchanged", res.Unchanged),
				zap.Int("conflicts", res.Conflicts),
				zap.Int("failed", res.Failed),
				zap.Int("skipped", res.Skipped),
				zap.Int("stale", res.Stale),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Reconcile(ctx)
}
