package transferstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

// MemoryStore is an in-process Store. It applies the same compare-and-swap
// and write-once rules as the postgres store.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*transfer.Transfer
	now    func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[int64]*transfer.Transfer),
		now:  time.Now,
	}
}

func (s *MemoryStore) ListActive(_ context.Context, limit int) ([]*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(limit, func(t *transfer.Transfer) bool { return t.Status.IsActive() }), nil
}

func (s *MemoryStore) UpdateIfUnchanged(
	_ context.Context,
	id int64,
	expect transfer.Expectation,
	patch *transfer.Patch,
) error {
	if patch.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[id]
	if !ok || cur.Expect() != expect {
		return ErrConflict
	}
	next := patch.Apply(*cur)
	next.UpdatedAt = s.now()
	s.byID[id] = &next
	return nil
}

func (s *MemoryStore) Create(_ context.Context, t *transfer.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if existing.BridgeID == t.BridgeID {
			return ErrDuplicate
		}
	}

	s.nextID++
	now := s.now()
	t.ID = s.nextID
	if t.InitiatedAt.IsZero() {
		t.InitiatedAt = now
	}
	t.UpdatedAt = now

	cp := *t
	s.byID[cp.ID] = &cp
	return nil
}

func (s *MemoryStore) GetByBridgeID(_ context.Context, bridgeID string) (*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.byID {
		if t.BridgeID == bridgeID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]*transfer.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(limit, func(*transfer.Transfer) bool { return true }), nil
}

func (s *MemoryStore) CountStale(_ context.Context, before time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.byID {
		if t.Status.IsActive() && t.InitiatedAt.Before(before) {
			n++
		}
	}
	return n, nil
}

// sorted returns copies of matching transfers, newest initiated first. Caller holds the lock.
func (s *MemoryStore) sorted(limit int, keep func(*transfer.Transfer) bool) []*transfer.Transfer {
	out := make([]*transfer.Transfer, 0, len(s.byID))
	for _, t := range s.byID {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].InitiatedAt.Equal(out[j].InitiatedAt) {
			return out[i].InitiatedAt.After(out[j].InitiatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
