package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chainsafe/bridge-reconciler/internal/metrics"
	"github.com/chainsafe/bridge-reconciler/pkg/config"
)

// ChainReader is the subset of ethclient.Client the EVM adapter needs.
type ChainReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// EVMAdapter reads confirmation depth of source transactions from an EVM JSON-RPC node.
type EVMAdapter struct {
	chain          string
	reader         ChainReader
	limiter        *rate.Limiter
	breaker        *gobreaker.CircuitBreaker[Advance]
	finality       int
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewEVMAdapter wraps reader with rate limiting and a circuit breaker.
func NewEVMAdapter(
	cfg config.EVMRelayConfig,
	breakerCfg config.BreakerConfig,
	reader ChainReader,
	logger *zap.Logger,
) *EVMAdapter {
	logger = logger.With(zap.String("chain", cfg.Chain))

	st := gobreaker.Settings{
		Name:        "relay:" + cfg.Chain,
		MaxRequests: breakerCfg.MaxRequests,
		Interval:    breakerCfg.Interval,
		Timeout:     breakerCfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= breakerCfg.ConsecutiveFailures
		},
		// answers about the transaction are not node failures
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrTransactionFailed)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RelayBreakerState.WithLabelValues(cfg.Chain).Set(float64(to))
			logger.Warn("Relay circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &EVMAdapter{
		chain:          cfg.Chain,
		reader:         reader,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:        gobreaker.NewCircuitBreaker[Advance](st),
		finality:       cfg.FinalityBlocks,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// DialEVM connects to the configured RPC endpoint and returns an adapter for it.
func DialEVM(ctx context.Context, cfg config.EVMRelayConfig, breakerCfg config.BreakerConfig, logger *zap.Logger) (*EVMAdapter, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s RPC: %w", cfg.Chain, err)
	}
	logger.Info("Connected to chain RPC",
		zap.String("chain", cfg.Chain),
		zap.String("rpc_url", cfg.RPCURL))
	return NewEVMAdapter(cfg, breakerCfg, client, logger), nil
}

func (a *EVMAdapter) Advance(ctx context.Context, _, _ string, txHash string) (Advance, error) {
	hash, err := parseHash(txHash)
	if err != nil {
		return Advance{}, err
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return Advance{}, fmt.Errorf("relay rate limit wait: %w", err)
	}

	adv, err := a.breaker.Execute(func() (Advance, error) {
		return a.lookup(ctx, hash)
	})
	metrics.RelayRequests.WithLabelValues(a.chain, resultLabel(err)).Inc()
	if err != nil {
		return Advance{}, err
	}
	return adv, nil
}

func (a *EVMAdapter) lookup(ctx context.Context, hash common.Hash) (Advance, error) {
	if a.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.requestTimeout)
		defer cancel()
	}

	receipt, err := a.reader.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return Advance{}, ErrNotFound
		}
		return Advance{}, fmt.Errorf("failed to get receipt %s: %w", hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Advance{}, fmt.Errorf("%w: %s", ErrTransactionFailed, hash.Hex())
	}

	latest, err := a.reader.BlockNumber(ctx)
	if err != nil {
		return Advance{}, fmt.Errorf("failed to get latest block: %w", err)
	}

	confirmations := 0
	if receipt.BlockNumber != nil && latest >= receipt.BlockNumber.Uint64() {
		// the inclusion block counts as the first confirmation
		confirmations = int(latest-receipt.BlockNumber.Uint64()) + 1
	}

	return Advance{
		Confirmations: confirmations,
		Settled:       confirmations >= a.finality,
	}, nil
}

func parseHash(txHash string) (common.Hash, error) {
	b, err := hexutil.Decode(txHash)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidHash, txHash)
	}
	return common.BytesToHash(b), nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTransactionFailed):
		return "reverted"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	}
	return "error"
}

var _ Adapter = (*EVMAdapter)(nil)
