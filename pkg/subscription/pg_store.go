package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the Postgres-backed Store and LimitSource.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error) {
	query := `
		SELECT s.org_id, s.plan_id, p.name, s.status, s.custom_limits,
		       s.created_at, s.updated_at, s.cancelled_at
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.org_id = $1
	`

	var (
		sub       Subscription
		rawLimits []byte
	)
	err := s.db.QueryRow(ctx, query, orgID).Scan(
		&sub.OrgID,
		&sub.PlanID,
		&sub.PlanName,
		&sub.Status,
		&rawLimits,
		&sub.CreatedAt,
		&sub.UpdatedAt,
		&sub.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	if len(rawLimits) > 0 {
		if err := json.Unmarshal(rawLimits, &sub.CustomLimits); err != nil {
			return nil, fmt.Errorf("decode custom_limits: %w", err)
		}
	}
	return &sub, nil
}

func (s *PgStore) Save(ctx context.Context, sub *Subscription) error {
	rawLimits, err := json.Marshal(sub.CustomLimits)
	if err != nil {
		return fmt.Errorf("encode custom_limits: %w", err)
	}

	query := `
		INSERT INTO subscriptions (org_id, plan_id, status, custom_limits, created_at, updated_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (org_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			status = EXCLUDED.status,
			custom_limits = EXCLUDED.custom_limits,
			updated_at = EXCLUDED.updated_at,
			cancelled_at = EXCLUDED.cancelled_at
	`
	_, err = s.db.Exec(ctx, query,
		sub.OrgID, sub.PlanID, sub.Status, rawLimits,
		sub.CreatedAt, sub.UpdatedAt, sub.CancelledAt,
	)
	return err
}

// PlanLimits returns the seeded limit rows for a plan in display order.
func (s *PgStore) PlanLimits(ctx context.Context, planID string) ([]PlanLimit, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1)`, planID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPlanNotFound
	}

	rows, err := s.db.Query(ctx, `
		SELECT limit_key, limit_value
		FROM plan_limits
		WHERE plan_id = $1
		ORDER BY sort_order, limit_key
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var limits []PlanLimit
	for rows.Next() {
		var l PlanLimit
		if err := rows.Scan(&l.Key, &l.Value); err != nil {
			return nil, err
		}
		limits = append(limits, l)
	}
	return limits, rows.Err()
}
