// internal/handlers/subscription/subscription_handler.go
package subscription

import (
	"net/http"

	domain "authbase-service/internal/domain/subscription"
	"authbase-service/internal/middleware"
	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/pkg/response"
	planService "authbase-service/internal/service/plan"
	service "authbase-service/internal/service/subscription"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	planService         *planService.PlanService
}

func NewSubscriptionHandler(
	subscriptionService *service.SubscriptionService,
	planService *planService.PlanService,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		planService:         planService,
	}
}

// CreateSubscription opens a new subscription for the caller. The price is
// resolved from the catalog server-side; the client only picks plan, game
// and duration. No payment is processed, this is a demo billing flow.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req domain.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	dur, err := domain.ParseDuration(req.Duration)
	if err != nil {
		response.ValidationError(c, "unsupported duration", err)
		return
	}

	p, err := h.planService.Find(c.Request.Context(), req.PlanID, string(dur))
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.ValidationError(c, "unknown plan", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to resolve plan", err)
		return
	}

	game := req.Game
	if game == "" {
		game = p.Game
	}

	sub, err := h.subscriptionService.Create(
		c.Request.Context(),
		userID, p.PlanID, game, p.Price, req.PaymentLastFour, string(dur),
	)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "invalid subscription request", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create subscription", err)
		return
	}

	response.Success(c, http.StatusCreated, "subscription created successfully", sub)
}

// CancelSubscription cancels by id. Access continues until the renewal date.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	subscriptionID := c.Param("id")

	sub, err := h.subscriptionService.CancelForUser(c.Request.Context(), userID, subscriptionID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "subscription not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to cancel subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription cancelled, access continues until expiry", sub)
}

// GetActiveSubscription returns the caller's active subscription or null.
func (h *SubscriptionHandler) GetActiveSubscription(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	sub, err := h.subscriptionService.Active(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load active subscription", err)
		return
	}
	if sub == nil {
		response.Success(c, http.StatusOK, "no active subscription", nil)
		return
	}

	response.Success(c, http.StatusOK, "active subscription retrieved", sub)
}

// GetVisibleSubscription returns the caller's visible subscription or null;
// a cancelled-but-unexpired row still shows up here.
func (h *SubscriptionHandler) GetVisibleSubscription(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	sub, err := h.subscriptionService.Visible(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load visible subscription", err)
		return
	}
	if sub == nil {
		response.Success(c, http.StatusOK, "no visible subscription", nil)
		return
	}

	response.Success(c, http.StatusOK, "visible subscription retrieved", sub)
}

// ListSubscriptions returns the caller's full history, newest first.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	subs, err := h.subscriptionService.History(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list subscriptions", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription history retrieved", subs)
}

// GetSummary returns the dashboard payload for the caller's visible
// subscription, or null data when there is none.
func (h *SubscriptionHandler) GetSummary(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	summary, err := h.subscriptionService.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load subscription summary", err)
		return
	}
	if summary == nil {
		response.Success(c, http.StatusOK, "no visible subscription", nil)
		return
	}

	response.Success(c, http.StatusOK, "subscription summary retrieved", summary)
}

// GetExpiringSoon reports whether the caller's active subscription is inside
// its warning window.
func (h *SubscriptionHandler) GetExpiringSoon(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	expiring, err := h.subscriptionService.ExpiringSoon(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to check expiry window", err)
		return
	}

	response.Success(c, http.StatusOK, "expiry window checked", gin.H{"expiring_soon": expiring})
}
