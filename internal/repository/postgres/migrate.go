// internal/repository/postgres/migrate.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS subscriptions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	plan_id TEXT NOT NULL,
	game TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	price NUMERIC(10, 2) NOT NULL,
	subscription_start TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	subscription_end TIMESTAMP WITH TIME ZONE NULL,
	renewal_date TIMESTAMP WITH TIME ZONE NOT NULL,
	payment_method TEXT DEFAULT 'credit_card',
	payment_last_four TEXT,
	duration TEXT NOT NULL DEFAULT 'month',
	metadata JSONB DEFAULT '{}'::JSONB,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_subscriptions_user_created
	ON subscriptions (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS plans (
	id BIGSERIAL PRIMARY KEY,
	plan_id TEXT NOT NULL,
	name TEXT NOT NULL,
	game TEXT NOT NULL,
	duration TEXT NOT NULL,
	price NUMERIC(10, 2) NOT NULL,
	features TEXT[] NOT NULL DEFAULT '{}',
	popular BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	UNIQUE (plan_id, duration)
);

CREATE TABLE IF NOT EXISTS user_settings (
	user_id TEXT PRIMARY KEY,
	dark_mode BOOLEAN DEFAULT TRUE,
	email_updates BOOLEAN DEFAULT TRUE,
	timezone TEXT DEFAULT 'UTC',
	language TEXT DEFAULT 'en',
	last_updated TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_stats (
	user_id TEXT PRIMARY KEY,
	total_logins INTEGER DEFAULT 1,
	last_login TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	profile_visits INTEGER DEFAULT 0,
	account_created TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS visit_history (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	visitor_id TEXT NULL,
	visitor_name TEXT NULL,
	visited_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_visit_history_user_visited
	ON visit_history (user_id, visited_at DESC);
`

// Migrate applies the schema. Statements are idempotent so re-running on
// startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
