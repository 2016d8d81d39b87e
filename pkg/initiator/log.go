package initiator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

const serviceName = "InitiatorService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the initiator Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Initiate(ctx context.Context, req *transfer.InitiateRequest) (resp *transfer.Response, err error) {
	start := time.Now()

	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", "Initiate"),
	}
	if req != nil {
		fields = append(fields,
			zap.String("source_chain", req.SourceChain),
			zap.String("destination_chain", req.DestinationChain),
			zap.String("source_amount", req.SourceAmount),
		)
	}
	ls.logger.Info("Initiate started", fields...)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Initiate failed",
				zap.String("service", serviceName),
				zap.String("method", "Initiate"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Initiate completed",
			zap.String("service", serviceName),
			zap.String("method", "Initiate"),
			zap.String("bridge_id", resp.BridgeID),
			zap.String("status", resp.Status.String()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Initiate(ctx, req)
}

func (ls *logService) GetTransfer(ctx context.Context, bridgeID string) (resp *transfer.Response, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Debug("GetTransfer failed",
				zap.String("service", serviceName),
				zap.String("method", "GetTransfer"),
				zap.String("bridge_id", bridgeID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.GetTransfer(ctx, bridgeID)
}

func (ls *logService) ListTransfers(ctx context.Context, limit int) (resp []*transfer.Response, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Error("ListTransfers failed",
				zap.String("service", serviceName),
				zap.String("method", "ListTransfers"),
				zap.Int("limit", limit),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.ListTransfers(ctx, limit)
}
