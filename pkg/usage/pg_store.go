package usage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore runs the counting queries against Postgres. COUNT over an absent
// org naturally yields zero.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PgStore) CountTeamMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM org_members WHERE org_id = $1`, orgID)
}

func (s *PgStore) CountGroups(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM groups WHERE org_id = $1`, orgID)
}

func (s *PgStore) CountCampaignsSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM campaigns WHERE org_id = $1 AND created_at >= $2`, orgID, since)
}

func (s *PgStore) CountIntegrations(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM integrations WHERE org_id = $1`, orgID)
}

func (s *PgStore) CountLinks(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM links WHERE org_id = $1`, orgID)
}
