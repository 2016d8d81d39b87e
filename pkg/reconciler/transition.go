package reconciler

import (
	"time"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

// HashFunc synthesizes a transaction hash for a transfer entering escrow.
type HashFunc func(bridgeID, chain string) string

type planFunc func(t *transfer.Transfer, obs Observation, now time.Time, newHash HashFunc) *transfer.Patch

// needsObservation reports whether planning t requires a confirmation reading.
func needsObservation(t *transfer.Transfer) bool {
	return t.Status == transfer.StatusEscrowLocked || t.Status == transfer.StatusConfirming
}

// plan computes the single transition for t in this cycle. It returns nil when
// the record is terminal or nothing would change.
func plan(t *transfer.Transfer, obs Observation, now time.Time, newHash HashFunc) *transfer.Patch {
	required := t.EffectiveRequiredConfirmations()
	patch := &transfer.Patch{}
	if t.RequiredConfirmations != required {
		patch.RequiredConfirmations = &required
	}

	switch t.Status {
	case transfer.StatusInitiated:
		next := transfer.StatusEscrowLocked
		zero := 0
		patch.Status = &next
		patch.Confirmations = &zero
		if t.TransactionHash == "" {
			h := newHash(t.BridgeID, t.SourceChain)
			patch.TransactionHash = &h
		}

	case transfer.StatusEscrowLocked, transfer.StatusConfirming:
		c := max(obs.Confirmations, t.Confirmations, 0)
		if obs.Settled {
			c = required
		}
		c = min(c, required)

		next := transfer.StatusConfirming
		if c >= required {
			next = transfer.StatusReleasing
		}
		if next != t.Status {
			patch.Status = &next
		}
		if c != t.Confirmations {
			patch.Confirmations = &c
		}

	case transfer.StatusReleasing:
		next := transfer.StatusCompleted
		ts := now
		patch.Status = &next
		patch.CompletedAt = &ts
		if t.Confirmations > required {
			patch.Confirmations = &required
		}

	default:
		return nil
	}

	if patch.IsEmpty() {
		return nil
	}
	return patch
}
