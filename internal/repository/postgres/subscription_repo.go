// internal/repository/postgres/subscription_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"authbase-service/internal/domain/subscription"
	xerrors "authbase-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const subscriptionColumns = `
	id, user_id, plan_id, game, status, price,
	subscription_start, subscription_end, renewal_date,
	payment_method, payment_last_four, duration,
	metadata, created_at, updated_at
`

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts one new history row. A plan switch inserts rather than
// updates, so prior rows for the same user are left untouched.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, user_id, plan_id, game, status, price,
			subscription_start, subscription_end, renewal_date,
			payment_method, payment_last_four, duration, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	var metadataJSON []byte
	var err error

	if sub.Metadata != nil {
		metadataJSON, err = json.Marshal(sub.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	err = r.db.QueryRow(
		ctx, query,
		sub.ID, sub.UserID, sub.PlanID, sub.Game, sub.Status, sub.Price,
		sub.SubscriptionStart, sub.SubscriptionEnd, sub.RenewalDate,
		sub.PaymentMethod, sub.PaymentLastFour, sub.Duration, metadataJSON,
	).Scan(&sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// FindByID retrieves a subscription by ID
func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	query := `SELECT` + subscriptionColumns + `FROM subscriptions WHERE id = $1`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return sub, nil
}

// Cancel marks the row cancelled and records the cancellation moment in
// subscription_end. renewal_date is deliberately left alone: access runs
// until the boundary the user already paid for.
func (r *SubscriptionRepository) Cancel(ctx context.Context, id string, endedAt time.Time) (*subscription.Subscription, error) {
	query := `
		UPDATE subscriptions
		SET status = $2, subscription_end = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING` + subscriptionColumns

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, id, subscription.StatusCancelled, endedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	return sub, nil
}

// FindActiveByUser returns the newest row that is active and either never
// cancelled or cancelled with an end moment still in the future. Absence is
// reported as nil, nil.
func (r *SubscriptionRepository) FindActiveByUser(ctx context.Context, userID string, now time.Time) (*subscription.Subscription, error) {
	query := `
		SELECT` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1
		  AND status = 'active'
		  AND (subscription_end IS NULL OR subscription_end > $2)
		ORDER BY created_at DESC
		LIMIT 1
	`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, userID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	return sub, nil
}

// FindVisibleByUser is the broader display selection: cancelled rows remain
// visible until their renewal boundary passes.
func (r *SubscriptionRepository) FindVisibleByUser(ctx context.Context, userID string, now time.Time) (*subscription.Subscription, error) {
	query := `
		SELECT` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1
		  AND status IN ('active', 'cancelled')
		  AND renewal_date > $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, userID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find visible subscription: %w", err)
	}

	return sub, nil
}

// ListByUser returns the user's full history, newest first.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	query := `
		SELECT` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []subscription.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subs, nil
}

func scanSubscription(row pgx.Row) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	var metadataJSON []byte

	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.PlanID, &sub.Game, &sub.Status, &sub.Price,
		&sub.SubscriptionStart, &sub.SubscriptionEnd, &sub.RenewalDate,
		&sub.PaymentMethod, &sub.PaymentLastFour, &sub.Duration,
		&metadataJSON, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadataJSON) > 0 {
		json.Unmarshal(metadataJSON, &sub.Metadata)
	}

	return &sub, nil
}
