// Package transferstore persists bridge transfers.
package transferstore

import (
	"context"
	"errors"
	"time"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

var (
	// ErrNotFound is returned when a lookup finds no matching transfer.
	ErrNotFound = errors.New("transfer not found")
	// ErrConflict is returned by UpdateIfUnchanged when the stored record no
	// longer matches the expected status and confirmation count.
	ErrConflict = errors.New("transfer changed concurrently")
	// ErrDuplicate is returned when a transfer with the same bridge id exists.
	ErrDuplicate = errors.New("transfer already exists")
)

// Store defines the persistence operations used by the reconciler and the initiator.
type Store interface {
	// ListActive returns up to limit non-completed transfers, newest initiated first.
	ListActive(ctx context.Context, limit int) ([]*transfer.Transfer, error)
	// UpdateIfUnchanged applies patch to the transfer with the given id only if
	// its status and confirmations still match expect.
	UpdateIfUnchanged(ctx context.Context, id int64, expect transfer.Expectation, patch *transfer.Patch) error
	Create(ctx context.Context, t *transfer.Transfer) error
	GetByBridgeID(ctx context.Context, bridgeID string) (*transfer.Transfer, error)
	ListRecent(ctx context.Context, limit int) ([]*transfer.Transfer, error)
	// CountStale counts active transfers initiated before the cutoff.
	CountStale(ctx context.Context, before time.Time) (int, error)
}

var (
	_ Store = (*pgStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
