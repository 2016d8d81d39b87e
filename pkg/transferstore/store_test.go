package transferstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

var storeEpoch = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func newTestTransfer(bridgeID string, status transfer.Status, initiatedAt time.Time) *transfer.Transfer {
	return &transfer.Transfer{
		BridgeID:              bridgeID,
		SourceChain:           "ethereum",
		DestinationChain:      "canton",
		SourceAmount:          decimal.RequireFromString("12.5"),
		Status:                status,
		RequiredConfirmations: 6,
		InitiatedAt:           initiatedAt,
	}
}

func mustCreate(t *testing.T, s Store, tr *transfer.Transfer) *transfer.Transfer {
	t.Helper()
	if err := s.Create(context.Background(), tr); err != nil {
		t.Fatalf("Create(%s) failed: %v", tr.BridgeID, err)
	}
	return tr
}

// runStoreSuite checks the behavior both Store implementations share.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created := mustCreate(t, s, newTestTransfer("brg_get", transfer.StatusInitiated, storeEpoch))
		if created.ID == 0 {
			t.Fatal("expected an id to be assigned")
		}

		got, err := s.GetByBridgeID(ctx, "brg_get")
		if err != nil {
			t.Fatalf("GetByBridgeID() failed: %v", err)
		}
		if got.ID != created.ID || got.Status != transfer.StatusInitiated {
			t.Fatalf("unexpected transfer %+v", got)
		}
		if !got.SourceAmount.Equal(decimal.RequireFromString("12.5")) {
			t.Fatalf("expected amount 12.5, got %s", got.SourceAmount)
		}
		if !got.InitiatedAt.Equal(storeEpoch) {
			t.Fatalf("expected initiated_at %v, got %v", storeEpoch, got.InitiatedAt)
		}
		if got.TransactionHash != "" || got.CompletedAt != nil {
			t.Fatalf("expected empty hash and completion, got %+v", got)
		}

		if _, err := s.GetByBridgeID(ctx, "brg_missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate bridge id", func(t *testing.T) {
		s := newStore(t)

		mustCreate(t, s, newTestTransfer("brg_dup", transfer.StatusInitiated, storeEpoch))
		err := s.Create(context.Background(), newTestTransfer("brg_dup", transfer.StatusInitiated, storeEpoch))
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("list active newest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		mustCreate(t, s, newTestTransfer("brg_a", transfer.StatusInitiated, storeEpoch))
		mustCreate(t, s, newTestTransfer("brg_b", transfer.StatusConfirming, storeEpoch.Add(time.Minute)))
		mustCreate(t, s, newTestTransfer("brg_c", transfer.StatusCompleted, storeEpoch.Add(2*time.Minute)))
		mustCreate(t, s, newTestTransfer("brg_d", transfer.StatusReleasing, storeEpoch.Add(3*time.Minute)))

		active, err := s.ListActive(ctx, 10)
		if err != nil {
			t.Fatalf("ListActive() failed: %v", err)
		}
		want := []string{"brg_d", "brg_b", "brg_a"}
		if len(active) != len(want) {
			t.Fatalf("expected %d active transfers, got %d", len(want), len(active))
		}
		for i, id := range want {
			if active[i].BridgeID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, active[i].BridgeID)
			}
		}

		limited, err := s.ListActive(ctx, 2)
		if err != nil {
			t.Fatalf("ListActive() failed: %v", err)
		}
		if len(limited) != 2 || limited[0].BridgeID != "brg_d" {
			t.Fatalf("unexpected limited result %v", limited)
		}

		recent, err := s.ListRecent(ctx, 10)
		if err != nil {
			t.Fatalf("ListRecent() failed: %v", err)
		}
		if len(recent) != 4 || recent[1].BridgeID != "brg_c" {
			t.Fatalf("expected completed transfers in recent list, got %d", len(recent))
		}
	})

	t.Run("conditional update", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		tr := mustCreate(t, s, newTestTransfer("brg_cas", transfer.StatusInitiated, storeEpoch))

		next := transfer.StatusEscrowLocked
		zero := 0
		hash := "sim:0x01"
		err := s.UpdateIfUnchanged(ctx, tr.ID, tr.Expect(), &transfer.Patch{
			Status:          &next,
			Confirmations:   &zero,
			TransactionHash: &hash,
		})
		if err != nil {
			t.Fatalf("UpdateIfUnchanged() failed: %v", err)
		}

		// the stale expectation no longer matches
		other := "sim:0x02"
		err = s.UpdateIfUnchanged(ctx, tr.ID, tr.Expect(), &transfer.Patch{Status: &next, TransactionHash: &other})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}

		got, err := s.GetByBridgeID(ctx, "brg_cas")
		if err != nil {
			t.Fatalf("GetByBridgeID() failed: %v", err)
		}
		if got.Status != transfer.StatusEscrowLocked || got.TransactionHash != hash {
			t.Fatalf("unexpected transfer %+v", got)
		}

		if err := s.UpdateIfUnchanged(ctx, 999_999, got.Expect(), &transfer.Patch{Status: &next}); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict for unknown id, got %v", err)
		}
		if err := s.UpdateIfUnchanged(ctx, tr.ID, tr.Expect(), &transfer.Patch{}); err != nil {
			t.Fatalf("expected empty patch to be a no-op, got %v", err)
		}
	})

	t.Run("write once fields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		tr := newTestTransfer("brg_once", transfer.StatusReleasing, storeEpoch)
		tr.Confirmations = 6
		tr.TransactionHash = "0xabc"
		mustCreate(t, s, tr)

		done := transfer.StatusCompleted
		completedAt := storeEpoch.Add(time.Hour)
		hash := "sim:0xdef"
		err := s.UpdateIfUnchanged(ctx, tr.ID, tr.Expect(), &transfer.Patch{
			Status:          &done,
			TransactionHash: &hash,
			CompletedAt:     &completedAt,
		})
		if err != nil {
			t.Fatalf("UpdateIfUnchanged() failed: %v", err)
		}

		got, err := s.GetByBridgeID(ctx, "brg_once")
		if err != nil {
			t.Fatalf("GetByBridgeID() failed: %v", err)
		}
		if got.TransactionHash != "0xabc" {
			t.Fatalf("expected hash to be preserved, got %q", got.TransactionHash)
		}
		if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
			t.Fatalf("expected completed_at %v, got %v", completedAt, got.CompletedAt)
		}
	})

	t.Run("racing updates commit once", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		tr := mustCreate(t, s, newTestTransfer("brg_race", transfer.StatusConfirming, storeEpoch))
		expect := tr.Expect()

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			committed int
			conflicts int
		)
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c := i + 1
				err := s.UpdateIfUnchanged(ctx, tr.ID, expect, &transfer.Patch{Confirmations: &c})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					committed++
				case errors.Is(err, ErrConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if committed != 1 || conflicts != 7 {
			t.Fatalf("expected 1 commit and 7 conflicts, got %d/%d", committed, conflicts)
		}
	})

	t.Run("count stale", func(t *testing.T) {
		s := newStore(t)

		for i, status := range []transfer.Status{transfer.StatusConfirming, transfer.StatusCompleted, transfer.StatusInitiated} {
			mustCreate(t, s, newTestTransfer(fmt.Sprintf("brg_stale_%d", i), status, storeEpoch))
		}
		mustCreate(t, s, newTestTransfer("brg_fresh", transfer.StatusInitiated, storeEpoch.Add(2*time.Hour)))

		n, err := s.CountStale(context.Background(), storeEpoch.Add(time.Hour))
		if err != nil {
			t.Fatalf("CountStale() failed: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 stale transfers, got %d", n)
		}
	})
}
