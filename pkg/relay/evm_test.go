package relay

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-reconciler/pkg/config"
)

type fakeReader struct {
	receipts     map[common.Hash]*types.Receipt
	latest       uint64
	receiptErr   error
	blockErr     error
	receiptCalls int
}

func (f *fakeReader) TransactionReceipt(_ context.Context, h common.Hash) (*types.Receipt, error) {
	f.receiptCalls++
	if f.receiptErr != nil {
		return nil, f.receiptErr
	}
	r, ok := f.receipts[h]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (f *fakeReader) BlockNumber(context.Context) (uint64, error) {
	return f.latest, f.blockErr
}

var testHash = common.HexToHash("0x9b2f0c3a1e6d4b7a8c5f3e2d1c0b9a8f7e6d5c4b3a29180716253443526170ab")

func testAdapter(reader ChainReader) *EVMAdapter {
	return NewEVMAdapter(
		config.EVMRelayConfig{
			Chain:             "ethereum",
			RequestsPerSecond: 1000,
			Burst:             100,
			RequestTimeout:    time.Second,
			FinalityBlocks:    12,
		},
		config.BreakerConfig{
			MaxRequests:         1,
			Interval:            time.Minute,
			Timeout:             time.Minute,
			ConsecutiveFailures: 2,
		},
		reader,
		zap.NewNop(),
	)
}

func TestEVMAdapter_Confirmations(t *testing.T) {
	tests := []struct {
		name          string
		block, latest uint64
		confirmations int
		settled       bool
	}{
		{"just mined", 100, 100, 1, false},
		{"below finality", 100, 105, 6, false},
		{"at finality", 100, 111, 12, true},
		{"node behind receipt", 100, 99, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReader{
				receipts: map[common.Hash]*types.Receipt{
					testHash: {Status: types.ReceiptStatusSuccessful, BlockNumber: new(big.Int).SetUint64(tt.block)},
				},
				latest: tt.latest,
			}
			adv, err := testAdapter(reader).Advance(context.Background(), "ethereum", "polygon", testHash.Hex())
			if err != nil {
				t.Fatalf("Advance() failed: %v", err)
			}
			if adv.Confirmations != tt.confirmations || adv.Settled != tt.settled {
				t.Fatalf("expected %d/%v, got %+v", tt.confirmations, tt.settled, adv)
			}
		})
	}
}

func TestEVMAdapter_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := testAdapter(&fakeReader{}).Advance(ctx, "ethereum", "polygon", "sim:0xabc"); !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}

	if _, err := testAdapter(&fakeReader{}).Advance(ctx, "ethereum", "polygon", testHash.Hex()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	reverted := &fakeReader{
		receipts: map[common.Hash]*types.Receipt{
			testHash: {Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(1)},
		},
		latest: 50,
	}
	if _, err := testAdapter(reverted).Advance(ctx, "ethereum", "polygon", testHash.Hex()); !errors.Is(err, ErrTransactionFailed) {
		t.Fatalf("expected ErrTransactionFailed, got %v", err)
	}
}

func TestEVMAdapter_BreakerOpensOnNodeFailures(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{receiptErr: errors.New("connection refused")}
	a := testAdapter(reader)

	for i := 0; i < 2; i++ {
		if _, err := a.Advance(ctx, "ethereum", "polygon", testHash.Hex()); err == nil {
			t.Fatal("expected node error")
		}
	}

	_, err := a.Advance(ctx, "ethereum", "polygon", testHash.Hex())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if reader.receiptCalls != 2 {
		t.Fatalf("expected breaker to short-circuit the third call, got %d calls", reader.receiptCalls)
	}
}

func TestEVMAdapter_NotFoundDoesNotTripBreaker(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{}
	a := testAdapter(reader)

	for i := 0; i < 5; i++ {
		if _, err := a.Advance(ctx, "ethereum", "polygon", testHash.Hex()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("call %d: expected ErrNotFound, got %v", i, err)
		}
	}
	if reader.receiptCalls != 5 {
		t.Fatalf("expected every call to reach the node, got %d", reader.receiptCalls)
	}
}

type staticAdapter struct{ adv Advance }

func (s staticAdapter) Advance(context.Context, string, string, string) (Advance, error) {
	return s.adv, nil
}

func TestRouter(t *testing.T) {
	r := NewRouter(map[string]Adapter{"ethereum": staticAdapter{Advance{Confirmations: 3}}})

	adv, err := r.Advance(context.Background(), "ethereum", "polygon", testHash.Hex())
	if err != nil || adv.Confirmations != 3 {
		t.Fatalf("Advance() = %+v, %v", adv, err)
	}

	if _, err := r.Advance(context.Background(), "solana", "polygon", testHash.Hex()); !errors.Is(err, ErrUnsupportedChain) {
		t.Fatalf("expected ErrUnsupportedChain, got %v", err)
	}

	if chains := r.Chains(); len(chains) != 1 || chains[0] != "ethereum" {
		t.Fatalf("unexpected chains %v", chains)
	}
}
