package modules

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type orgModuleKey struct {
	orgID uuid.UUID
	slug  Slug
}

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	catalog []Module
	rows    map[orgModuleKey]*OrgModule
}

func NewMemoryStore(catalog ...Module) *MemoryStore {
	sorted := slices.Clone(catalog)
	slices.SortFunc(sorted, func(a, b Module) int { return a.DisplayOrder - b.DisplayOrder })
	return &MemoryStore{
		catalog: sorted,
		rows:    make(map[orgModuleKey]*OrgModule),
	}
}

func (s *MemoryStore) Catalog(ctx context.Context) ([]Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.catalog), nil
}

func (s *MemoryStore) Get(ctx context.Context, orgID uuid.UUID, slug Slug) (*OrgModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[orgModuleKey{orgID: orgID, slug: slug}]
	if !ok {
		return nil, ErrNoModuleRow
	}
	return cloneRow(row), nil
}

func (s *MemoryStore) ListForOrg(ctx context.Context, orgID uuid.UUID) ([]OrgModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []OrgModule
	for key, row := range s.rows {
		if key.orgID == orgID {
			rows = append(rows, *cloneRow(row))
		}
	}
	return rows, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, row *OrgModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[orgModuleKey{orgID: row.OrgID, slug: row.Slug}] = cloneRow(row)
	return nil
}

func cloneRow(row *OrgModule) *OrgModule {
	c := *row
	if row.Config != nil {
		c.Config = maps.Clone(row.Config)
	}
	return &c
}
