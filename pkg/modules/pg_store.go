package modules

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the Postgres-backed Store.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Catalog(ctx context.Context) ([]Module, error) {
	rows, err := s.db.Query(ctx, `
		SELECT slug, name, is_premium, display_order
		FROM modules
		ORDER BY display_order, slug
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []Module
	for rows.Next() {
		var m Module
		if err := rows.Scan(&m.Slug, &m.Name, &m.IsPremium, &m.DisplayOrder); err != nil {
			return nil, err
		}
		catalog = append(catalog, m)
	}
	return catalog, rows.Err()
}

func (s *PgStore) Get(ctx context.Context, orgID uuid.UUID, slug Slug) (*OrgModule, error) {
	row := OrgModule{OrgID: orgID, Slug: slug}
	var rawConfig []byte

	err := s.db.QueryRow(ctx, `
		SELECT is_enabled, config, updated_at
		FROM organization_modules
		WHERE org_id = $1 AND module_slug = $2
	`, orgID, slug).Scan(&row.Enabled, &rawConfig, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoModuleRow
		}
		return nil, err
	}

	if len(rawConfig) > 0 {
		if err := json.Unmarshal(rawConfig, &row.Config); err != nil {
			return nil, fmt.Errorf("decode module config: %w", err)
		}
	}
	return &row, nil
}

func (s *PgStore) ListForOrg(ctx context.Context, orgID uuid.UUID) ([]OrgModule, error) {
	rows, err := s.db.Query(ctx, `
		SELECT module_slug, is_enabled, config, updated_at
		FROM organization_modules
		WHERE org_id = $1
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrgModule
	for rows.Next() {
		row := OrgModule{OrgID: orgID}
		var rawConfig []byte
		if err := rows.Scan(&row.Slug, &row.Enabled, &rawConfig, &row.UpdatedAt); err != nil {
			return nil, err
		}
		if len(rawConfig) > 0 {
			if err := json.Unmarshal(rawConfig, &row.Config); err != nil {
				return nil, fmt.Errorf("decode module config: %w", err)
			}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (s *PgStore) Upsert(ctx context.Context, row *OrgModule) error {
	rawConfig, err := json.Marshal(row.Config)
	if err != nil {
		return fmt.Errorf("encode module config: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO organization_modules (org_id, module_slug, is_enabled, config, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (org_id, module_slug) DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			config = EXCLUDED.config,
			updated_at = NOW()
	`, row.OrgID, row.Slug, row.Enabled, rawConfig)
	return err
}
