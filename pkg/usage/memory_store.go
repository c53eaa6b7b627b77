package usage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests. Counts are set directly;
// campaigns are recorded with creation instants so the month filter is
// exercised for real.
type MemoryStore struct {
	mu          sync.RWMutex
	members     map[uuid.UUID]int64
	groups      map[uuid.UUID]int64
	campaignsAt map[uuid.UUID][]time.Time
	integration map[uuid.UUID]int64
	links       map[uuid.UUID]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members:     make(map[uuid.UUID]int64),
		groups:      make(map[uuid.UUID]int64),
		campaignsAt: make(map[uuid.UUID][]time.Time),
		integration: make(map[uuid.UUID]int64),
		links:       make(map[uuid.UUID]int64),
	}
}

func (s *MemoryStore) SetTeamMembers(orgID uuid.UUID, n int64) {
	s.mu.Lock()
	s.members[orgID] = n
	s.mu.Unlock()
}

func (s *MemoryStore) SetGroups(orgID uuid.UUID, n int64) {
	s.mu.Lock()
	s.groups[orgID] = n
	s.mu.Unlock()
}

func (s *MemoryStore) AddCampaign(orgID uuid.UUID, createdAt time.Time) {
	s.mu.Lock()
	s.campaignsAt[orgID] = append(s.campaignsAt[orgID], createdAt)
	s.mu.Unlock()
}

func (s *MemoryStore) SetIntegrations(orgID uuid.UUID, n int64) {
	s.mu.Lock()
	s.integration[orgID] = n
	s.mu.Unlock()
}

func (s *MemoryStore) SetLinks(orgID uuid.UUID, n int64) {
	s.mu.Lock()
	s.links[orgID] = n
	s.mu.Unlock()
}

func (s *MemoryStore) CountTeamMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[orgID], nil
}

func (s *MemoryStore) CountGroups(ctx context.Context, orgID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groups[orgID], nil
}

func (s *MemoryStore) CountCampaignsSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, at := range s.campaignsAt[orgID] {
		if !at.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountIntegrations(ctx context.Context, orgID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.integration[orgID], nil
}

func (s *MemoryStore) CountLinks(ctx context.Context, orgID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.links[orgID], nil
}
