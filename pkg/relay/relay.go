// Package relay reports on-chain confirmation progress for bridge transfers.
package relay

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedChain is returned when no adapter serves the source chain.
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrNotFound is returned when the chain does not (yet) know the transaction.
	ErrNotFound = errors.New("transaction not found")
	// ErrTransactionFailed is returned when the transaction was mined but reverted.
	ErrTransactionFailed = errors.New("transaction reverted")
	// ErrInvalidHash is returned for values that are not a 32-byte hex hash.
	ErrInvalidHash = errors.New("invalid transaction hash")
)

// Advance is the progress the chain reports for one source transaction.
type Advance struct {
	Confirmations int
	// Settled is true once the transaction is past the chain's finality depth.
	Settled bool
}

// Adapter looks up confirmation progress for a transfer's source transaction.
//
//go:generate mockery --name Adapter --output mocks --outpkg mocks --filename adapter.go --with-expecter
type Adapter interface {
	Advance(ctx context.Context, sourceChain, destinationChain, txHash string) (Advance, error)
}

// Router dispatches to the adapter registered for the source chain.
type Router struct {
	adapters map[string]Adapter
}

// NewRouter creates a router over per-chain adapters keyed by chain name.
func NewRouter(adapters map[string]Adapter) *Router {
	m := make(map[string]Adapter, len(adapters))
	for chain, a := range adapters {
		m[chain] = a
	}
	return &Router{adapters: m}
}

func (r *Router) Advance(ctx context.Context, sourceChain, destinationChain, txHash string) (Advance, error) {
	a, ok := r.adapters[sourceChain]
	if !ok {
		return Advance{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, sourceChain)
	}
	return a.Advance(ctx, sourceChain, destinationChain, txHash)
}

// Chains lists the chains the router can serve.
func (r *Router) Chains() []string {
	out := make([]string, 0, len(r.adapters))
	for chain := range r.adapters {
		out = append(out, chain)
	}
	return out
}

var _ Adapter = (*Router)(nil)
