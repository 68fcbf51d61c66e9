// internal/repository/postgres/plan_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"authbase-service/internal/domain/plan"
	xerrors "authbase-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

// Seed upserts the static catalog. Prices and features win over whatever is
// stored so catalog edits ship with the binary.
func (r *PlanRepository) Seed(ctx context.Context, plans []plan.Plan) error {
	query := `
		INSERT INTO plans (plan_id, name, game, duration, price, features, popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (plan_id, duration) DO UPDATE
		SET name = EXCLUDED.name,
		    game = EXCLUDED.game,
		    price = EXCLUDED.price,
		    features = EXCLUDED.features,
		    popular = EXCLUDED.popular,
		    updated_at = NOW()
	`

	for i := range plans {
		p := &plans[i]
		if _, err := r.db.Exec(ctx, query,
			p.PlanID, p.Name, p.Game, p.Duration, p.Price, p.Features, p.Popular,
		); err != nil {
			return fmt.Errorf("failed to seed plan %s/%s: %w", p.PlanID, p.Duration, err)
		}
	}

	return nil
}

// List returns the catalog, optionally filtered by game.
func (r *PlanRepository) List(ctx context.Context, game string) ([]plan.Plan, error) {
	query := `
		SELECT id, plan_id, name, game, duration, price, features, popular, created_at, updated_at
		FROM plans
	`
	args := []interface{}{}
	if game != "" {
		query += ` WHERE game = $1`
		args = append(args, game)
	}
	query += ` ORDER BY game, CASE duration WHEN 'month' THEN 0 WHEN 'week' THEN 1 ELSE 2 END`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []plan.Plan
	for rows.Next() {
		var p plan.Plan
		var features []string
		if err := rows.Scan(
			&p.ID, &p.PlanID, &p.Name, &p.Game, &p.Duration,
			&p.Price, &features, &p.Popular, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		p.Features = pq.StringArray(features)
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return plans, nil
}

// FindByPlanAndDuration resolves one catalog entry for price lookup.
func (r *PlanRepository) FindByPlanAndDuration(ctx context.Context, planID, duration string) (*plan.Plan, error) {
	query := `
		SELECT id, plan_id, name, game, duration, price, features, popular, created_at, updated_at
		FROM plans
		WHERE plan_id = $1 AND duration = $2
	`

	var p plan.Plan
	var features []string
	err := r.db.QueryRow(ctx, query, planID, duration).Scan(
		&p.ID, &p.PlanID, &p.Name, &p.Game, &p.Duration,
		&p.Price, &features, &p.Popular, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}
	p.Features = pq.StringArray(features)

	return &p, nil
}
