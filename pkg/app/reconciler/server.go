// Package reconciler implements app.Runner for the bridge reconciler process.
package reconciler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/pkg/app"
	apphttp "github.com/chainsafe/bridge-reconciler/pkg/app/http"
	"github.com/chainsafe/bridge-reconciler/pkg/config"
	"github.com/chainsafe/bridge-reconciler/pkg/initiator"
	reconcilerpkg "github.com/chainsafe/bridge-reconciler/pkg/reconciler"
)

const defaultHTTPMiddlewareTimeout = 60 * time.Second

// Server holds configuration for the reconciler process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new reconciler Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the scheduler and the HTTP API. It blocks until an OS shutdown
// signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge reconciler",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Duration("interval", cfg.Reconciler.Interval),
	)

	c, err := buildComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	ready := func() bool { return true }
	var scheduler *reconcilerpkg.Scheduler
	if cfg.Reconciler.Interval > 0 {
		scheduler = reconcilerpkg.NewScheduler(c.service, cfg.Reconciler.Interval, cfg.Reconciler.RunOnStart, logger)
		scheduler.Start()
		// Stopped explicitly after ServeAndWait; the defer is a safety net.
		defer scheduler.Stop()
		ready = scheduler.Ready
	} else {
		logger.Info("In-process scheduler disabled, runs are triggered externally")
	}

	transfers := initiator.NewLog(initiator.NewService(c.store, cfg.Chains, logger), logger)
	router := s.newRouter(c.service, transfers, ready, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	if scheduler != nil {
		scheduler.Stop()
	}
	return err
}

// RunOnce performs a single reconciliation run and returns its result.
func (s *Server) RunOnce(ctx context.Context, logger *zap.Logger) (*reconcilerpkg.Result, error) {
	if s.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	c, err := buildComponents(ctx, s.cfg, logger)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.service.Reconcile(ctx)
}

func (s *Server) newRouter(
	reconcileSvc reconcilerpkg.Service,
	transfers initiator.Service,
	ready func() bool,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
			if !ready() {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("READY"))
		})

		if s.cfg.Monitoring.Enabled {
			r.Handle("/metrics", promhttp.Handler())
			logger.Info("Metrics enabled", zap.String("path", "/metrics"))
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		// bounded by reconciler.timeout rather than the middleware timeout
		reconcilerpkg.RegisterRoutes(r, reconcileSvc, s.cfg.Reconciler.Timeout, logger)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))
			initiator.RegisterRoutes(r, transfers, logger)
		})
	})

	return r
}

var _ app.Runner = (*Server)(nil)
