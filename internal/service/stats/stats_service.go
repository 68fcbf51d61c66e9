// internal/service/stats/stats_service.go
package stats

import (
	"context"
	"database/sql"
	"fmt"

	"authbase-service/internal/domain/user"
	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/repository/postgres"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type StatsService struct {
	settingsRepo *postgres.UserSettingsRepository
	statsRepo    *postgres.UserStatsRepository
	visitRepo    *postgres.VisitHistoryRepository
	logger       *zap.Logger
}

func NewStatsService(
	settingsRepo *postgres.UserSettingsRepository,
	statsRepo *postgres.UserStatsRepository,
	visitRepo *postgres.VisitHistoryRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		visitRepo:    visitRepo,
		logger:       logger,
	}
}

// Settings returns the user's settings, falling back to defaults when the
// user has never saved any.
func (s *StatsService) Settings(ctx context.Context, userID string) (*user.Settings, error) {
	settings, err := s.settingsRepo.Find(ctx, userID)
	if xerrors.Is(err, xerrors.ErrNotFound) {
		return &user.Settings{
			UserID:       userID,
			DarkMode:     true,
			EmailUpdates: true,
			Timezone:     "UTC",
			Language:     "en",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial update over the stored (or default)
// settings and persists the result.
func (s *StatsService) UpdateSettings(ctx context.Context, userID string, req *user.UpdateSettingsRequest) (*user.Settings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.EmailUpdates != nil {
		settings.EmailUpdates = *req.EmailUpdates
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *StatsService) Stats(ctx context.Context, userID string) (*user.Stats, error) {
	return s.statsRepo.Find(ctx, userID)
}

// RecordLogin bumps the login counter. Called by the frontend after the
// identity provider reports a successful sign-in.
func (s *StatsService) RecordLogin(ctx context.Context, userID string) error {
	if err := s.statsRepo.RecordLogin(ctx, userID); err != nil {
		return err
	}
	s.logger.Debug("login recorded", zap.String("user_id", userID))
	return nil
}

// RecordProfileVisit bumps the owner's visit counter and appends a history
// row. visitorID is empty for anonymous visitors.
func (s *StatsService) RecordProfileVisit(ctx context.Context, ownerID, visitorID, visitorName string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: missing profile owner id", xerrors.ErrInvalidInput)
	}

	if err := s.statsRepo.RecordProfileVisit(ctx, ownerID); err != nil {
		return err
	}

	visit := &user.Visit{
		ID:     ulid.Make().String(),
		UserID: ownerID,
	}
	if visitorID != "" {
		visit.VisitorID = sql.NullString{String: visitorID, Valid: true}
	}
	if visitorName != "" {
		visit.VisitorName = sql.NullString{String: visitorName, Valid: true}
	}

	if err := s.visitRepo.Record(ctx, visit); err != nil {
		// The counter already moved; surface the failure rather than retry.
		return err
	}

	return nil
}

func (s *StatsService) RecentVisits(ctx context.Context, userID string, limit int) ([]user.Visit, error) {
	return s.visitRepo.ListRecent(ctx, userID, limit)
}

func (s *StatsService) SiteStats(ctx context.Context) (*user.SiteStats, error) {
	return s.statsRepo.SiteStats(ctx)
}
