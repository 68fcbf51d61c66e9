// internal/service/plan/plan_service.go
package plan

import (
	"context"
	"fmt"

	"authbase-service/internal/domain/plan"
	"authbase-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type PlanService struct {
	planRepo *postgres.PlanRepository
	logger   *zap.Logger
}

func NewPlanService(planRepo *postgres.PlanRepository, logger *zap.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

// SeedCatalog pushes the built-in catalog into the plans table. Run on
// startup after migration.
func (s *PlanService) SeedCatalog(ctx context.Context) error {
	if err := s.planRepo.Seed(ctx, plan.Catalog()); err != nil {
		return fmt.Errorf("failed to seed plan catalog: %w", err)
	}
	s.logger.Info("plan catalog seeded", zap.Int("plans", len(plan.Catalog())))
	return nil
}

// List returns purchasable plans, optionally restricted to one game.
func (s *PlanService) List(ctx context.Context, game string) ([]plan.Plan, error) {
	return s.planRepo.List(ctx, game)
}

// Find resolves one catalog entry; used at subscribe time to price the
// selection server-side.
func (s *PlanService) Find(ctx context.Context, planID, duration string) (*plan.Plan, error) {
	return s.planRepo.FindByPlanAndDuration(ctx, planID, duration)
}
