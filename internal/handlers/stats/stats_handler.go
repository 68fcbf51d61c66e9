// internal/handlers/stats/stats_handler.go
package stats

import (
	"net/http"
	"strconv"

	"authbase-service/internal/domain/user"
	"authbase-service/internal/middleware"
	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/pkg/response"
	service "authbase-service/internal/service/stats"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSettings returns the caller's settings, defaults included.
func (h *StatsHandler) GetSettings(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	settings, err := h.statsService.Settings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	response.Success(c, http.StatusOK, "settings retrieved", settings)
}

// UpdateSettings applies a partial settings update.
func (h *StatsHandler) UpdateSettings(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req user.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	settings, err := h.statsService.UpdateSettings(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save settings", err)
		return
	}

	response.Success(c, http.StatusOK, "settings saved", settings)
}

// GetStats returns the caller's login/visit counters.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	stats, err := h.statsService.Stats(c.Request.Context(), userID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.Success(c, http.StatusOK, "no stats recorded yet", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load stats", err)
		return
	}

	response.Success(c, http.StatusOK, "stats retrieved", stats)
}

// RecordLogin is called by the frontend after the identity provider confirms
// a sign-in.
func (h *StatsHandler) RecordLogin(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.statsService.RecordLogin(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to record login", err)
		return
	}

	response.Success(c, http.StatusOK, "login recorded", nil)
}

// RecordProfileVisit counts a view of :user_id's profile. The visitor is the
// caller when authenticated.
func (h *StatsHandler) RecordProfileVisit(c *gin.Context) {
	ownerID := c.Param("user_id")

	var req user.RecordVisitRequest
	_ = c.ShouldBindJSON(&req) // body optional

	visitorID, _ := middleware.GetUserID(c)

	if err := h.statsService.RecordProfileVisit(c.Request.Context(), ownerID, visitorID, req.VisitorName); err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "invalid visit", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to record visit", err)
		return
	}

	response.Success(c, http.StatusOK, "visit recorded", nil)
}

// GetRecentVisits lists who viewed the caller's profile lately.
func (h *StatsHandler) GetRecentVisits(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	visits, err := h.statsService.RecentVisits(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list visits", err)
		return
	}

	response.Success(c, http.StatusOK, "recent visits retrieved", visits)
}

// GetSiteStats returns the aggregate user counters.
func (h *StatsHandler) GetSiteStats(c *gin.Context) {
	stats, err := h.statsService.SiteStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load site stats", err)
		return
	}

	response.Success(c, http.StatusOK, "site stats retrieved", stats)
}
