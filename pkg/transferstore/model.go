package transferstore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

// TransferDao maps to the 'bridge_transfers' table in PostgreSQL.
type TransferDao struct {
	bun.BaseModel         `bun:"table:bridge_transfers,alias:bt"`
	ID                    int64           `bun:"id,pk,autoincrement"`
	BridgeID              string          `bun:"bridge_id,unique,notnull,type:varchar(64)"`
	SourceChain           string          `bun:"source_chain,notnull,type:varchar(64)"`
	DestinationChain      string          `bun:"destination_chain,notnull,type:varchar(64)"`
	SourceAmount          string          `bun:"source_amount,notnull,type:numeric(38,18)"`
	DestinationAmount     *string         `bun:"destination_amount,type:numeric(38,18)"`
	Status                transfer.Status `bun:"status,notnull,type:varchar(32)"`
	Confirmations         int             `bun:"confirmations,notnull,default:0"`
	RequiredConfirmations int             `bun:"required_confirmations,notnull,default:6"`
	TransactionHash       *string         `bun:"transaction_hash,type:varchar(128)"`
	InitiatedAt           time.Time       `bun:"initiated_at,nullzero,notnull,default:current_timestamp"`
	CompletedAt           *time.Time      `bun:"completed_at"`
	UpdatedAt             time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toTransferDao(t *transfer.Transfer) *TransferDao {
	dao := &TransferDao{
		ID:                    t.ID,
		BridgeID:              t.BridgeID,
		SourceChain:           t.SourceChain,
		DestinationChain:      t.DestinationChain,
		SourceAmount:          t.SourceAmount.String(),
		Status:                t.Status,
		Confirmations:         t.Confirmations,
		RequiredConfirmations: t.RequiredConfirmations,
		InitiatedAt:           t.InitiatedAt,
		CompletedAt:           t.CompletedAt,
		UpdatedAt:             t.UpdatedAt,
	}
	if t.DestinationAmount != nil {
		s := t.DestinationAmount.String()
		dao.DestinationAmount = &s
	}
	if t.TransactionHash != "" {
		dao.TransactionHash = &t.TransactionHash
	}
	return dao
}

func toTransfer(dao *TransferDao) (*transfer.Transfer, error) {
	amount, err := decimal.NewFromString(dao.SourceAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid source amount for %s: %w", dao.BridgeID, err)
	}

	t := &transfer.Transfer{
		ID:                    dao.ID,
		BridgeID:              dao.BridgeID,
		SourceChain:           dao.SourceChain,
		DestinationChain:      dao.DestinationChain,
		SourceAmount:          amount,
		Status:                dao.Status,
		Confirmations:         dao.Confirmations,
		RequiredConfirmations: dao.RequiredConfirmations,
		InitiatedAt:           dao.InitiatedAt,
		CompletedAt:           dao.CompletedAt,
		UpdatedAt:             dao.UpdatedAt,
	}
	if dao.DestinationAmount != nil {
		dst, err := decimal.NewFromString(*dao.DestinationAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid destination amount for %s: %w", dao.BridgeID, err)
		}
		t.DestinationAmount = &dst
	}
	if dao.TransactionHash != nil {
		t.TransactionHash = *dao.TransactionHash
	}
	return t, nil
}

func toTransfers(daos []TransferDao) ([]*transfer.Transfer, error) {
	out := make([]*transfer.Transfer, 0, len(daos))
	for i := range daos {
		t, err := toTransfer(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
