package transfer

import (
	"database/sql/driver"
	"fmt"
)

// Status is the lifecycle stage of a bridge transfer.
type Status string

const (
	StatusInitiated    Status = "initiated"
	StatusEscrowLocked Status = "escrow_locked"
	StatusConfirming   Status = "confirming"
	StatusReleasing    Status = "releasing"
	StatusCompleted    Status = "completed"
)

// ActiveStatuses lists every non-terminal status, in lifecycle order.
var ActiveStatuses = []Status{
	StatusInitiated,
	StatusEscrowLocked,
	StatusConfirming,
	StatusReleasing,
}

// ParseStatus converts a raw value into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown transfer status %q", s)
	}
	return st, nil
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusInitiated, StatusEscrowLocked, StatusConfirming, StatusReleasing, StatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the reconciler still has work to do for s.
func (s Status) IsActive() bool {
	return s.IsValid() && !s.IsTerminal()
}

// IsTerminal reports whether s is the final status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanTransitionTo reports whether moving from s to next is a legal single step.
// confirming -> confirming is allowed because confirmations may accumulate over
// several cycles; escrow_locked may jump to releasing when the threshold is met
// in the first confirmation cycle.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusInitiated:
		return next == StatusEscrowLocked
	case StatusEscrowLocked, StatusConfirming:
		return next == StatusConfirming || next == StatusReleasing
	case StatusReleasing:
		return next == StatusCompleted
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Scan implements sql.Scanner.
func (s *Status) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("failed to scan Status: expected string, got %T", value)
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid transfer status %q", string(s))
	}
	return string(s), nil
}
