// Package transfer holds the bridge transfer domain model.
package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRequiredConfirmations is applied whenever a record carries no usable
// confirmation threshold.
const DefaultRequiredConfirmations = 6

// Transfer is one token movement between two chains.
type Transfer struct {
	ID                    int64
	BridgeID              string
	SourceChain           string
	DestinationChain      string
	SourceAmount          decimal.Decimal
	DestinationAmount     *decimal.Decimal
	Status                Status
	Confirmations         int
	RequiredConfirmations int
	TransactionHash       string
	InitiatedAt           time.Time
	CompletedAt           *time.Time
	UpdatedAt             time.Time
}

// EffectiveRequiredConfirmations returns the confirmation threshold, falling
// back to DefaultRequiredConfirmations for absent or non-positive values.
func (t *Transfer) EffectiveRequiredConfirmations() int {
	if t.RequiredConfirmations <= 0 {
		return DefaultRequiredConfirmations
	}
	return t.RequiredConfirmations
}

// Expectation is the state observed at read time that a conditional update
// must still find in the store for the write to apply.
type Expectation struct {
	Status        Status
	Confirmations int
}

// Expect captures the compare-and-swap precondition for t.
func (t *Transfer) Expect() Expectation {
	return Expectation{Status: t.Status, Confirmations: t.Confirmations}
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Status                *Status
	Confirmations         *int
	RequiredConfirmations *int
	// TransactionHash is only written when the stored hash is still empty.
	TransactionHash *string
	CompletedAt     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p == nil || (p.Status == nil &&
		p.Confirmations == nil &&
		p.RequiredConfirmations == nil &&
		p.TransactionHash == nil &&
		p.CompletedAt == nil)
}

// Apply returns a copy of t with the patch applied using the same write-once
// rules the stores enforce.
func (p *Patch) Apply(t Transfer) Transfer {
	if p == nil {
		return t
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Confirmations != nil {
		t.Confirmations = *p.Confirmations
	}
	if p.RequiredConfirmations != nil {
		t.RequiredConfirmations = *p.RequiredConfirmations
	}
	if p.TransactionHash != nil && t.TransactionHash == "" {
		t.TransactionHash = *p.TransactionHash
	}
	if p.CompletedAt != nil && t.CompletedAt == nil {
		ts := *p.CompletedAt
		t.CompletedAt = &ts
	}
	return t
}
