package reconciler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-reconciler/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-reconciler/pkg/app/http"
)

// writeGrace leaves room to encode the result after a run that used its full timeout.
const writeGrace = 10 * time.Second

// HTTP exposes the reconciliation trigger
type HTTP struct {
	service    Service
	runTimeout time.Duration
	logger     *zap.Logger
}

// RegisterRoutes registers the reconciliation endpoint on the given chi router.
// runTimeout is the engine's run bound; the response write deadline is
// extended past it so the server's write timeout cannot cut off the result.
// Zero removes the write deadline for this route.
func RegisterRoutes(r chi.Router, service Service, runTimeout time.Duration, logger *zap.Logger) {
	h := &HTTP{
		service:    service,
		runTimeout: runTimeout,
		logger:     logger,
	}

	r.Post("/reconcile", apphttp.HandleError(h.reconcile))
}

func (h *HTTP) reconcile(w http.ResponseWriter, r *http.Request) error {
	var deadline time.Time
	if h.runTimeout > 0 {
		deadline = time.Now().Add(h.runTimeout + writeGrace)
	}
	if err := http.NewResponseController(w).SetWriteDeadline(deadline); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.Warn("Failed to extend write deadline", zap.Error(err))
	}

	// a dropped client must not abort a batch half way
	res, err := h.service.Reconcile(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			return apperrors.LockedError(err, "reconciliation already in progress")
		}
		return apperrors.New(apperrors.CategoryGeneralError, err, "reconciliation failed")
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}
