// internal/repository/postgres/user_settings_repo.go
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

type UserSettingsRepository struct {
	db *pgxpool.Pool
}

func NewUserSettingsRepository(db *pgxpool.Pool) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

func (r *UserSettingsRepository) Find(ctx context.Context, userID string) (*user.Settings, error) {
	query := `
		SELECT user_id, dark_mode, email_updates, timezone, language, last_updated
		FROM user_settings
		WHERE user_id = $1
	`

	var s user.Settings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.DarkMode, &s.EmailUpdates, &s.Timezone, &s.Language, &s.LastUpdated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user settings: %w", err)
	}

	return &s, nil
}

// Upsert writes the full settings row, stamping last_updated.
func (r *UserSettingsRepository) Upsert(ctx context.Context, s *user.Settings) error {
	query := `
		INSERT INTO user_settings (user_id, dark_mode, email_updates, timezone, language, last_updated)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET dark_mode = EXCLUDED.dark_mode,
		    email_updates = EXCLUDED.email_updates,
		    timezone = EXCLUDED.timezone,
		    language = EXCLUDED.language,
		    last_updated = NOW()
		RETURNING last_updated
	`

	err := r.db.QueryRow(ctx, query,
		s.UserID, s.DarkMode, s.EmailUpdates, s.Timezone, s.Language,
	).Scan(&s.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}

	return nil
}
