package reconciler

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/pkg/config"
	"github.com/chainsafe/bridge-reconciler/pkg/pgutil"
	reconcilerpkg "github.com/chainsafe/bridge-reconciler/pkg/reconciler"
	"github.com/chainsafe/bridge-reconciler/pkg/relay"
	"github.com/chainsafe/bridge-reconciler/pkg/runlock"
	"github.com/chainsafe/bridge-reconciler/pkg/transferstore"
)

// components are the long-lived dependencies shared by the serve and one-shot modes.
type components struct {
	store   transferstore.Store
	service reconcilerpkg.Service
	closers []func()
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func buildComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *components, err error) {
	c := &components{}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	if err := c.openStore(ctx, cfg, logger); err != nil {
		return nil, err
	}

	source, err := newConfirmationSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	options := []reconcilerpkg.Option{}
	if cfg.Lock.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Lock.Addr,
			Password: cfg.Lock.Password,
			DB:       cfg.Lock.DB,
		})
		c.closers = append(c.closers, func() { _ = client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect run lock redis: %w", err)
		}
		options = append(options, reconcilerpkg.WithLocker(runlock.NewRedisLocker(client, cfg.Lock.Key, cfg.Lock.TTL)))
		logger.Info("Distributed run lock enabled", zap.String("addr", cfg.Lock.Addr), zap.String("key", cfg.Lock.Key))
	}

	engine := reconcilerpkg.NewEngine(c.store, source, reconcilerpkg.Options{
		BatchSize:  cfg.Reconciler.BatchSize,
		Workers:    cfg.Reconciler.Workers,
		Timeout:    cfg.Reconciler.Timeout,
		StaleAfter: cfg.Reconciler.StaleAfter,
	}, logger, options...)
	c.service = reconcilerpkg.NewLog(engine, logger)

	return c, nil
}

func (c *components) openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("Using in-memory transfer store, state is lost on exit")
		c.store = transferstore.NewMemoryStore()
		return nil
	}

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect reconciler db: %w", err)
	}
	c.closers = append(c.closers, func() { _ = db.Close() })
	logger.Info("Database connection established")

	c.store = transferstore.NewStore(db)
	return nil
}

func newConfirmationSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (reconcilerpkg.ConfirmationSource, error) {
	simulated := reconcilerpkg.NewSimulatedSource(cfg.Confirmations.MinIncrement, cfg.Confirmations.MaxIncrement, nil)
	if cfg.Confirmations.Source != config.SourceRelay {
		logger.Info("Using simulated confirmation source",
			zap.Int("min_increment", cfg.Confirmations.MinIncrement),
			zap.Int("max_increment", cfg.Confirmations.MaxIncrement))
		return simulated, nil
	}

	adapters := make(map[string]relay.Adapter, len(cfg.Relay.EVM))
	for _, evm := range cfg.Relay.EVM {
		a, err := relay.DialEVM(ctx, evm, cfg.Relay.Breaker, logger)
		if err != nil {
			return nil, err
		}
		adapters[evm.Chain] = a
	}
	router := relay.NewRouter(adapters)
	logger.Info("Using relay confirmation source", zap.Strings("chains", router.Chains()))

	return reconcilerpkg.NewRelaySource(router, simulated, logger), nil
}
