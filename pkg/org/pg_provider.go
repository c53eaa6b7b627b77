package org

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProvider is the Postgres-backed Provider.
type PgProvider struct {
	db *pgxpool.Pool
}

func NewPgProvider(db *pgxpool.Pool) *PgProvider {
	return &PgProvider{db: db}
}

// GetByIdentifier looks an organization up by UUID when the identifier
// parses as one, by slug otherwise.
func (p *PgProvider) GetByIdentifier(ctx context.Context, identifier string) (*Organization, error) {
	if identifier == "" {
		return nil, ErrInvalidIdentifier
	}

	query := `
		SELECT id, slug, name, timezone, plan_id, active, created_at
		FROM organizations
		WHERE slug = $1
	`
	args := []any{identifier}
	if id, err := uuid.Parse(identifier); err == nil {
		query = `
			SELECT id, slug, name, timezone, plan_id, active, created_at
			FROM organizations
			WHERE id = $1
		`
		args = []any{id}
	}

	var o Organization
	err := p.db.QueryRow(ctx, query, args...).Scan(
		&o.ID,
		&o.Slug,
		&o.Name,
		&o.Timezone,
		&o.PlanID,
		&o.Active,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &o, nil
}
