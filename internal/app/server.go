// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"authbase-service/internal/config"
	"authbase-service/internal/db"
	plansHandler "authbase-service/internal/handlers/plans"
	statsHandler "authbase-service/internal/handlers/stats"
	subscriptionHandler "authbase-service/internal/handlers/subscription"
	"authbase-service/internal/metrics"
	"authbase-service/internal/middleware"
	"authbase-service/internal/pkg/identity"
	"authbase-service/internal/repository/cache"
	"authbase-service/internal/repository/postgres"
	planUsecase "authbase-service/internal/service/plan"
	statsUsecase "authbase-service/internal/service/stats"
	subscriptionUsecase "authbase-service/internal/service/subscription"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer  *http.Server
	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.redisClient = redisClient
	log.Println("[REDIS] connected successfully")

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Schema -----
	if s.cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		logger.Info("schema migrated")
	}

	// ----- Metrics -----
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	subMetrics := metrics.NewSubscriptionMetrics(registry)

	// ----- Identity provider -----
	verifier := identity.NewHTTPVerifier(s.cfg.IdentityBaseURL, s.cfg.IdentityAPIKey, redisClient, logger)

	// ----- Repositories -----
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	settingsRepo := postgres.NewUserSettingsRepository(pool)
	userStatsRepo := postgres.NewUserStatsRepository(pool)
	visitRepo := postgres.NewVisitHistoryRepository(pool)

	subscriptionCache := cache.NewSubscriptionCache(redisClient, logger)

	// ----- Services (Usecases) -----
	subscriptionService := subscriptionUsecase.NewSubscriptionService(
		subscriptionRepo,
		subscriptionCache,
		subMetrics,
		logger,
	)
	planService := planUsecase.NewPlanService(planRepo, logger)
	statsService := statsUsecase.NewStatsService(settingsRepo, userStatsRepo, visitRepo, logger)

	if s.cfg.AutoMigrate {
		if err := planService.SeedCatalog(ctx); err != nil {
			return fmt.Errorf("failed to seed plan catalog: %w", err)
		}
	}

	// ----- Handlers -----
	subscriptionHandlerInst := subscriptionHandler.NewSubscriptionHandler(subscriptionService, planService)
	planHandlerInst := plansHandler.NewPlanHandler(planService)
	statsHandlerInst := statsHandler.NewStatsHandler(statsService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(httpMetrics),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		SubscriptionHandler: subscriptionHandlerInst,
		PlanHandler:         planHandlerInst,
		StatsHandler:        statsHandlerInst,
		AuthMiddleware:      authMiddleware,
	}
	SetupRouter(s.engine, registry, handlers)

	// ----- Start HTTP -----
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	log.Printf("server running on %s", s.cfg.HTTPAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes connections.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			firstErr = err
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}

	return firstErr
}
