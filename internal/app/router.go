// internal/app/router.go
package app

import (
	plansHandler "authbase-service/internal/handlers/plans"
	statsHandler "authbase-service/internal/handlers/stats"
	subscriptionHandler "authbase-service/internal/handlers/subscription"
	"authbase-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	SubscriptionHandler *subscriptionHandler.SubscriptionHandler
	PlanHandler         *plansHandler.PlanHandler
	StatsHandler        *statsHandler.StatsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, registry *prometheus.Registry, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health & Metrics ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// ==================== Plans (public) ====================
	api.GET("/plans", h.PlanHandler.ListPlans)

	// ==================== Profile visits (anonymous allowed) ====================
	visits := api.Group("/profile")
	visits.Use(h.AuthMiddleware.OptionalAuth())
	{
		visits.POST("/:user_id/visit", h.StatsHandler.RecordProfileVisit)
	}

	// ==================== Subscriptions ====================
	subscriptions := api.Group("/subscriptions")
	subscriptions.Use(h.AuthMiddleware.Auth())
	{
		subscriptions.POST("", h.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("", h.SubscriptionHandler.ListSubscriptions)
		subscriptions.GET("/active", h.SubscriptionHandler.GetActiveSubscription)
		subscriptions.GET("/visible", h.SubscriptionHandler.GetVisibleSubscription)
		subscriptions.GET("/summary", h.SubscriptionHandler.GetSummary)
		subscriptions.GET("/expiring", h.SubscriptionHandler.GetExpiringSoon)
		subscriptions.DELETE("/:id", h.SubscriptionHandler.CancelSubscription)
	}

	// ==================== Account ====================
	me := api.Group("/me")
	me.Use(h.AuthMiddleware.Auth())
	{
		me.GET("/settings", h.StatsHandler.GetSettings)
		me.PUT("/settings", h.StatsHandler.UpdateSettings)
		me.GET("/stats", h.StatsHandler.GetStats)
		me.POST("/login-event", h.StatsHandler.RecordLogin)
		me.GET("/visits", h.StatsHandler.GetRecentVisits)
	}

	// ==================== Site stats ====================
	api.GET("/stats/site", h.StatsHandler.GetSiteStats)
}
