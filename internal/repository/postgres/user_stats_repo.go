// internal/repository/postgres/user_stats_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"authbase-service/internal/domain/user"
	xerrors "authbase-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStatsRepository struct {
	db *pgxpool.Pool
}

func NewUserStatsRepository(db *pgxpool.Pool) *UserStatsRepository {
	return &UserStatsRepository{db: db}
}

func (r *UserStatsRepository) Find(ctx context.Context, userID string) (*user.Stats, error) {
	query := `
		SELECT user_id, total_logins, last_login, profile_visits, account_created
		FROM user_stats
		WHERE user_id = $1
	`

	var s user.Stats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.TotalLogins, &s.LastLogin, &s.ProfileVisits, &s.AccountCreated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user stats: %w", err)
	}

	return &s, nil
}

// RecordLogin bumps total_logins and refreshes last_login, creating the row
// on first login.
func (r *UserStatsRepository) RecordLogin(ctx context.Context, userID string) error {
	query := `
		INSERT INTO user_stats (user_id, total_logins, last_login)
		VALUES ($1, 1, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET total_logins = user_stats.total_logins + 1,
		    last_login = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}

	return nil
}

// RecordProfileVisit bumps profile_visits, creating the row if the profile
// owner has never logged a stat.
func (r *UserStatsRepository) RecordProfileVisit(ctx context.Context, userID string) error {
	query := `
		INSERT INTO user_stats (user_id, total_logins, profile_visits)
		VALUES ($1, 0, 1)
		ON CONFLICT (user_id) DO UPDATE
		SET profile_visits = user_stats.profile_visits + 1
	`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to record profile visit: %w", err)
	}

	return nil
}

// SiteStats derives the aggregate snapshot from user_stats at read time.
func (r *UserStatsRepository) SiteStats(ctx context.Context) (*user.SiteStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE last_login > NOW() - INTERVAL '7 days'),
		       COUNT(*) FILTER (WHERE account_created > NOW() - INTERVAL '7 days'),
		       NOW()
		FROM user_stats
	`

	var s user.SiteStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalUsers, &s.ActiveUsersLastWeek, &s.NewUsersLastWeek, &s.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load site stats: %w", err)
	}

	return &s, nil
}
