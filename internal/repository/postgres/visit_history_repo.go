// internal/repository/postgres/visit_history_repo.go
package postgres

import (
	"context"
	"fmt"

	"authbase-service/internal/domain/user"

	"github.com/jackc/pgx/v5/pgxpool"
)

type VisitHistoryRepository struct {
	db *pgxpool.Pool
}

func NewVisitHistoryRepository(db *pgxpool.Pool) *VisitHistoryRepository {
	return &VisitHistoryRepository{db: db}
}

func (r *VisitHistoryRepository) Record(ctx context.Context, v *user.Visit) error {
	query := `
		INSERT INTO visit_history (id, user_id, visitor_id, visitor_name)
		VALUES ($1, $2, $3, $4)
		RETURNING visited_at
	`

	err := r.db.QueryRow(ctx, query, v.ID, v.UserID, v.VisitorID, v.VisitorName).Scan(&v.VisitedAt)
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}

	return nil
}

func (r *VisitHistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]user.Visit, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, user_id, visitor_id, visitor_name, visited_at
		FROM visit_history
		WHERE user_id = $1
		ORDER BY visited_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	var visits []user.Visit
	for rows.Next() {
		var v user.Visit
		if err := rows.Scan(&v.ID, &v.UserID, &v.VisitorID, &v.VisitorName, &v.VisitedAt); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return visits, nil
}
