package override

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the Postgres-backed Store. The deny-lists live in text[]
// columns on a single row keyed by org.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Get(ctx context.Context, orgID uuid.UUID) (*Override, error) {
	row := Override{OrgID: orgID}
	err := s.db.QueryRow(ctx, `
		SELECT disabled_permissions, disabled_integrations
		FROM feature_overrides
		WHERE org_id = $1
	`, orgID).Scan(&row.DisabledPermissions, &row.DisabledIntegrations)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoOverrideRow
		}
		return nil, err
	}
	return &row, nil
}

func (s *PgStore) Save(ctx context.Context, ov *Override) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO feature_overrides (org_id, disabled_permissions, disabled_integrations)
		VALUES ($1, $2, $3)
		ON CONFLICT (org_id) DO UPDATE SET
			disabled_permissions = EXCLUDED.disabled_permissions,
			disabled_integrations = EXCLUDED.disabled_integrations
	`, ov.OrgID, ov.DisabledPermissions, ov.DisabledIntegrations)
	return err
}
