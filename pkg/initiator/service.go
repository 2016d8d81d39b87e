// Package initiator creates new bridge transfers and serves read access to them.
package initiator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/internal/metrics"
	apperrors "github.com/chainsafe/bridge-reconciler/pkg/app/errors"
	"github.com/chainsafe/bridge-reconciler/pkg/config"
	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
	"github.com/chainsafe/bridge-reconciler/pkg/transferstore"
)

const (
	// BridgeIDPrefix starts every bridge id issued by the initiator.
	BridgeIDPrefix = "brg_"

	DefaultListLimit = 100
	MaxListLimit     = 500
)

var (
	ErrUnknownChain  = errors.New("chain is not configured")
	ErrInvalidAmount = errors.New("amount must be a positive decimal")
)

// Store is the narrow data-access interface for the initiator.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Create(ctx context.Context, t *transfer.Transfer) error
	GetByBridgeID(ctx context.Context, bridgeID string) (*transfer.Transfer, error)
	ListRecent(ctx context.Context, limit int) ([]*transfer.Transfer, error)
}

// Service defines the bridge initiation and read operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Initiate(ctx context.Context, req *transfer.InitiateRequest) (*transfer.Response, error)
	GetTransfer(ctx context.Context, bridgeID string) (*transfer.Response, error)
	ListTransfers(ctx context.Context, limit int) ([]*transfer.Response, error)
}

type initiatorService struct {
	store    Store
	chains   map[string]config.ChainConfig
	validate *validator.Validate
	logger   *zap.Logger
	newID    func() string
}

// NewService creates an initiator for the configured chains.
func NewService(store Store, chains []config.ChainConfig, logger *zap.Logger) Service {
	byName := make(map[string]config.ChainConfig, len(chains))
	for _, c := range chains {
		byName[c.Name] = c
	}
	return &initiatorService{
		store:    store,
		chains:   byName,
		validate: validator.New(),
		logger:   logger,
		newID:    newBridgeID,
	}
}

func newBridgeID() string {
	return BridgeIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Initiate validates req and records a new transfer. Transfers to a chain
// marked ready skip escrow and start in confirming with a placeholder hash.
func (s *initiatorService) Initiate(ctx context.Context, req *transfer.InitiateRequest) (*transfer.Response, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "request body required")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, fmt.Sprintf("invalid request: %v", err))
	}

	amount, err := parsePositive(req.SourceAmount)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "source_amount must be a positive decimal")
	}
	var destAmount *decimal.Decimal
	if req.DestinationAmount != "" {
		d, err := parsePositive(req.DestinationAmount)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "destination_amount must be a positive decimal")
		}
		destAmount = &d
	}

	if _, ok := s.chains[req.SourceChain]; !ok {
		return nil, apperrors.BadRequestError(ErrUnknownChain, fmt.Sprintf("unknown source chain %q", req.SourceChain))
	}
	dest, ok := s.chains[req.DestinationChain]
	if !ok {
		return nil, apperrors.BadRequestError(ErrUnknownChain, fmt.Sprintf("unknown destination chain %q", req.DestinationChain))
	}

	t := &transfer.Transfer{
		BridgeID:              s.newID(),
		SourceChain:           req.SourceChain,
		DestinationChain:      req.DestinationChain,
		SourceAmount:          amount,
		DestinationAmount:     destAmount,
		Status:                transfer.StatusInitiated,
		RequiredConfirmations: dest.RequiredConfirmations,
	}
	if t.RequiredConfirmations <= 0 {
		t.RequiredConfirmations = transfer.DefaultRequiredConfirmations
	}
	if dest.Ready {
		t.Status = transfer.StatusConfirming
		t.TransactionHash = transfer.NewPlaceholderHash(t.BridgeID, t.SourceChain)
	}

	if err := s.store.Create(ctx, t); err != nil {
		if errors.Is(err, transferstore.ErrDuplicate) {
			return nil, apperrors.ConflictError(err, "transfer already exists")
		}
		return nil, apperrors.DependencyFailureError(fmt.Errorf("failed to create transfer: %w", err), "transfer store unavailable")
	}

	metrics.TransfersInitiated.WithLabelValues(t.DestinationChain, t.Status.String()).Inc()
	return t.ToResponse(), nil
}

func (s *initiatorService) GetTransfer(ctx context.Context, bridgeID string) (*transfer.Response, error) {
	if bridgeID == "" {
		return nil, apperrors.BadRequestError(nil, "bridge id required")
	}

	t, err := s.store.GetByBridgeID(ctx, bridgeID)
	if err != nil {
		if errors.Is(err, transferstore.ErrNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "transfer not found")
		}
		return nil, apperrors.DependencyFailureError(fmt.Errorf("failed to get transfer: %w", err), "transfer store unavailable")
	}
	return t.ToResponse(), nil
}

func (s *initiatorService) ListTransfers(ctx context.Context, limit int) ([]*transfer.Response, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	ts, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.DependencyFailureError(fmt.Errorf("failed to list transfers: %w", err), "transfer store unavailable")
	}

	out := make([]*transfer.Response, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ToResponse())
	}
	return out, nil
}

func parsePositive(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}
