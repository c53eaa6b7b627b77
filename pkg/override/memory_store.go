package override

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*Override
}

func NewMemoryStore(rows ...*Override) *MemoryStore {
	s := &MemoryStore{rows: make(map[uuid.UUID]*Override, len(rows))}
	for _, row := range rows {
		s.rows[row.OrgID] = cloneOverride(row)
	}
	return s
}

func (s *MemoryStore) Get(ctx context.Context, orgID uuid.UUID) (*Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[orgID]
	if !ok {
		return nil, ErrNoOverrideRow
	}
	return cloneOverride(row), nil
}

func (s *MemoryStore) Save(ctx context.Context, ov *Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[ov.OrgID] = cloneOverride(ov)
	return nil
}

func cloneOverride(ov *Override) *Override {
	return &Override{
		OrgID:                ov.OrgID,
		DisabledPermissions:  slices.Clone(ov.DisabledPermissions),
		DisabledIntegrations: slices.Clone(ov.DisabledIntegrations),
	}
}
