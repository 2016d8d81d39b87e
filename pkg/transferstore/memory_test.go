package transferstore

import (
	"context"
	"testing"
	"time"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(*testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	mustCreate(t, s, newTestTransfer("brg_copy", transfer.StatusInitiated, storeEpoch))

	got, err := s.GetByBridgeID(ctx, "brg_copy")
	if err != nil {
		t.Fatalf("GetByBridgeID() failed: %v", err)
	}
	got.Status = transfer.StatusCompleted

	again, err := s.GetByBridgeID(ctx, "brg_copy")
	if err != nil {
		t.Fatalf("GetByBridgeID() failed: %v", err)
	}
	if again.Status != transfer.StatusInitiated {
		t.Fatalf("mutating a returned transfer leaked into the store")
	}
}

func TestMemoryStore_StampsTimes(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
	s.now = func() time.Time { return now }

	tr := mustCreate(t, s, newTestTransfer("brg_time", transfer.StatusInitiated, time.Time{}))
	if !tr.InitiatedAt.Equal(now) || !tr.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got %v/%v", now, tr.InitiatedAt, tr.UpdatedAt)
	}
}
