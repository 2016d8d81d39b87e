package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/pkg/relay"
	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

// Observation is the confirmation progress seen for a transfer in one cycle.
type Observation struct {
	// Confirmations is an absolute count, not a delta.
	Confirmations int
	// Settled forces the transfer to its threshold regardless of the count.
	Settled bool
}

// ConfirmationSource reports confirmation progress for transfers that are
// waiting on confirmations.
//
//go:generate mockery --name ConfirmationSource --output mocks --outpkg mocks --filename mock_confirmation_source.go --with-expecter
type ConfirmationSource interface {
	Observe(ctx context.Context, t *transfer.Transfer) (Observation, error)
}

// SimulatedSource advances confirmations by a bounded random increment each
// cycle. It stands in for a relay when none can serve a transfer.
type SimulatedSource struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	min, max int
}

// NewSimulatedSource returns a source drawing increments uniformly from [minInc, maxInc].
func NewSimulatedSource(minInc, maxInc int, rnd *rand.Rand) *SimulatedSource {
	if minInc < 1 {
		minInc = 1
	}
	if maxInc < minInc {
		maxInc = minInc
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SimulatedSource{rnd: rnd, min: minInc, max: maxInc}
}

func (s *SimulatedSource) Observe(_ context.Context, t *transfer.Transfer) (Observation, error) {
	s.mu.Lock()
	inc := s.min + s.rnd.IntN(s.max-s.min+1)
	s.mu.Unlock()
	return Observation{Confirmations: t.Confirmations + inc}, nil
}

// FixedSource advances confirmations by the same increment every cycle.
type FixedSource int

func (f FixedSource) Observe(_ context.Context, t *transfer.Transfer) (Observation, error) {
	return Observation{Confirmations: t.Confirmations + int(f)}, nil
}

// RelaySource asks the chain relay for real confirmation counts. Transfers the
// relay cannot serve (placeholder hashes, chains without an adapter) use the
// fallback source.
type RelaySource struct {
	adapter  relay.Adapter
	fallback ConfirmationSource
	logger   *zap.Logger
}

// NewRelaySource creates a relay-backed source.
func NewRelaySource(adapter relay.Adapter, fallback ConfirmationSource, logger *zap.Logger) *RelaySource {
	return &RelaySource{adapter: adapter, fallback: fallback, logger: logger}
}

func (s *RelaySource) Observe(ctx context.Context, t *transfer.Transfer) (Observation, error) {
	if t.TransactionHash == "" || transfer.IsPlaceholderHash(t.TransactionHash) {
		return s.fallback.Observe(ctx, t)
	}

	adv, err := s.adapter.Advance(ctx, t.SourceChain, t.DestinationChain, t.TransactionHash)
	switch {
	case err == nil:
		return Observation{Confirmations: adv.Confirmations, Settled: adv.Settled}, nil
	case errors.Is(err, relay.ErrUnsupportedChain):
		return s.fallback.Observe(ctx, t)
	case errors.Is(err, relay.ErrNotFound):
		// not mined yet; hold the current count
		s.logger.Debug("Source transaction not found on chain",
			zap.String("bridge_id", t.BridgeID),
			zap.String("tx_hash", t.TransactionHash))
		return Observation{Confirmations: t.Confirmations}, nil
	}
	return Observation{}, fmt.Errorf("relay advance for %s: %w", t.BridgeID, err)
}

var (
	_ ConfirmationSource = (*SimulatedSource)(nil)
	_ ConfirmationSource = FixedSource(0)
	_ ConfirmationSource = (*RelaySource)(nil)
)
