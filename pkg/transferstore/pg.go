package transferstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the transfer store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ListActive(ctx context.Context, limit int) ([]*transfer.Transfer, error) {
	var daos []TransferDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("status IN (?)", bun.In(transfer.ActiveStatuses)).
		Order("initiated_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active transfers: %w", err)
	}
	return toTransfers(daos)
}

func (s *pgStore) UpdateIfUnchanged(
	ctx context.Context,
	id int64,
	expect transfer.Expectation,
	patch *transfer.Patch,
) error {
	if patch.IsEmpty() {
		return nil
	}

	q := s.db.NewUpdate().
		Model((*TransferDao)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", expect.Status).
		Where("confirmations = ?", expect.Confirmations)

	if patch.Status != nil {
		q = q.Set("status = ?", *patch.Status)
	}
	if patch.Confirmations != nil {
		q = q.Set("confirmations = ?", *patch.Confirmations)
	}
	if patch.RequiredConfirmations != nil {
		q = q.Set("required_confirmations = ?", *patch.RequiredConfirmations)
	}
	if patch.TransactionHash != nil {
		// never overwrite a hash that is already set
		q = q.Set("transaction_hash = COALESCE(NULLIF(transaction_hash, ''), ?)", *patch.TransactionHash)
	}
	if patch.CompletedAt != nil {
		q = q.Set("completed_at = COALESCE(completed_at, ?)", *patch.CompletedAt)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update transfer %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for transfer %d: %w", id, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (s *pgStore) Create(ctx context.Context, t *transfer.Transfer) error {
	dao := toTransferDao(t)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	t.ID = dao.ID
	t.InitiatedAt = dao.InitiatedAt
	t.UpdatedAt = dao.UpdatedAt
	return nil
}

func (s *pgStore) GetByBridgeID(ctx context.Context, bridgeID string) (*transfer.Transfer, error) {
	dao := new(TransferDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("bridge_id = ?", bridgeID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return toTransfer(dao)
}

func (s *pgStore) ListRecent(ctx context.Context, limit int) ([]*transfer.Transfer, error) {
	var daos []TransferDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("initiated_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return toTransfers(daos)
}

func (s *pgStore) CountStale(ctx context.Context, before time.Time) (int, error) {
	n, err := s.db.NewSelect().
		Model((*TransferDao)(nil)).
		Where("status IN (?)", bun.In(transfer.ActiveStatuses)).
		Where("initiated_at < ?", before).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count stale transfers: %w", err)
	}
	return n, nil
}
