// internal/handlers/plans/plan_handler.go
package plans

import (
	"net/http"

	"authbase-service/internal/pkg/response"
	service "authbase-service/internal/service/plan"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// ListPlans returns the catalog, optionally filtered with ?game=.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	game := c.Query("game")

	plans, err := h.planService.List(c.Request.Context(), game)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list plans", err)
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", plans)
}
