// internal/service/subscription/subscription_service.go
package subscription

import (
	"context"
	"fmt"
	"time"

	"authbase-service/internal/domain/subscription"
	"authbase-service/internal/metrics"
	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/repository/cache"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Store is the narrow persistence contract the lifecycle engine needs.
// Selection queries take the engine's captured clock reading so time-based
// filtering is evaluated against the same instant as the derived fields.
type Store interface {
	Create(ctx context.Context, sub *subscription.Subscription) error
	FindByID(ctx context.Context, id string) (*subscription.Subscription, error)
	Cancel(ctx context.Context, id string, endedAt time.Time) (*subscription.Subscription, error)
	FindActiveByUser(ctx context.Context, userID string, now time.Time) (*subscription.Subscription, error)
	FindVisibleByUser(ctx context.Context, userID string, now time.Time) (*subscription.Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]subscription.Subscription, error)
}

type SubscriptionService struct {
	store   Store
	cache   *cache.SubscriptionCache
	metrics metrics.SubscriptionMetrics
	logger  *zap.Logger

	// now is read once per operation so every timestamp and filter within a
	// call sees the same instant.
	now func() time.Time
}

func NewSubscriptionService(
	store Store,
	subCache *cache.SubscriptionCache,
	subMetrics metrics.SubscriptionMetrics,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		store:   store,
		cache:   subCache,
		metrics: subMetrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Create opens a new subscription period. Each purchase or plan switch
// appends a fresh row; earlier rows for the user are never touched, which
// keeps the full history queryable.
func (s *SubscriptionService) Create(
	ctx context.Context,
	userID, planID, game string,
	price float64,
	paymentLastFour string,
	duration string,
) (*subscription.Subscription, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", xerrors.ErrInvalidInput)
	}
	if planID == "" {
		return nil, fmt.Errorf("%w: missing plan id", xerrors.ErrInvalidInput)
	}

	dur, err := subscription.ParseDuration(duration)
	if err != nil {
		return nil, err
	}

	if paymentLastFour == "" {
		paymentLastFour = "1234" // demo fallback, no payment processing here
	}

	now := s.now()
	sub := &subscription.Subscription{
		ID:                ulid.Make().String(),
		UserID:            userID,
		PlanID:            planID,
		Game:              game,
		Status:            subscription.StatusActive,
		Price:             price,
		SubscriptionStart: now,
		RenewalDate:       subscription.RenewalDate(now, dur),
		PaymentMethod:     "credit_card",
		PaymentLastFour:   paymentLastFour,
		Duration:          dur,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID, "")
		s.cache.Set(ctx, sub)
	}
	if s.metrics != nil {
		s.metrics.IncCreated(sub.PlanID, string(sub.Duration))
	}

	s.logger.Info("subscription created",
		zap.String("subscription_id", sub.ID),
		zap.String("user_id", userID),
		zap.String("plan_id", planID),
		zap.String("game", game),
		zap.String("duration", string(dur)),
	)

	return sub, nil
}

// Cancel marks the row cancelled and stamps subscription_end with the call
// time. renewal_date is never changed, so access continues until the paid
// boundary. Cancelling an already-cancelled row moves subscription_end
// forward to the new call time.
func (s *SubscriptionService) Cancel(ctx context.Context, subscriptionID string) (*subscription.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("%w: missing subscription id", xerrors.ErrInvalidInput)
	}

	sub, err := s.store.Cancel(ctx, subscriptionID, s.now())
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, sub.UserID, sub.ID)
	}
	if s.metrics != nil {
		s.metrics.IncCancelled(sub.PlanID, string(sub.Duration))
	}

	s.logger.Info("subscription cancelled",
		zap.String("subscription_id", sub.ID),
		zap.String("user_id", sub.UserID),
		zap.Time("access_until", sub.RenewalDate),
	)

	return sub, nil
}

// CancelForUser verifies ownership before cancelling. A row that exists but
// belongs to someone else is reported as not found rather than leaked.
func (s *SubscriptionService) CancelForUser(ctx context.Context, userID, subscriptionID string) (*subscription.Subscription, error) {
	sub, err := s.store.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, xerrors.ErrNotFound
	}

	return s.Cancel(ctx, subscriptionID)
}

// Active returns the newest row still counting as active, or nil when the
// user has none. Absence is a normal state, not an error.
func (s *SubscriptionService) Active(ctx context.Context, userID string) (*subscription.Subscription, error) {
	return s.store.FindActiveByUser(ctx, userID, s.now())
}

// Visible returns the row the user should see on their dashboard. A
// cancelled row stays visible until its renewal boundary passes, so
// cancelling never makes the user appear plan-less early.
func (s *SubscriptionService) Visible(ctx context.Context, userID string) (*subscription.Subscription, error) {
	return s.store.FindVisibleByUser(ctx, userID, s.now())
}

// History lists every subscription row for the user, newest first, reading
// through the cache.
func (s *SubscriptionService) History(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	if s.cache != nil {
		subs, err := s.cache.GetHistory(ctx, userID)
		if err != nil {
			s.logger.Warn("subscription cache read failed", zap.Error(err))
		} else if subs != nil {
			return subs, nil
		}
	}

	subs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && subs != nil {
		s.cache.SetHistory(ctx, userID, subs)
	}

	return subs, nil
}

// Remaining reports the time left on the row as of now: whole hours for day
// subscriptions, whole days otherwise, clamped at zero.
func (s *SubscriptionService) Remaining(sub *subscription.Subscription) subscription.Remaining {
	return sub.RemainingAt(s.now())
}

// ExpiringSoon reports whether the user's active subscription is inside its
// duration's warning window. With no active subscription it is false.
func (s *SubscriptionService) ExpiringSoon(ctx context.Context, userID string) (bool, error) {
	now := s.now()

	sub, err := s.store.FindActiveByUser(ctx, userID, now)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	return sub.ExpiringSoonAt(now), nil
}

// Summary assembles the dashboard view: the visible row plus remaining time,
// percentage left and the expiring flag, all derived from one clock reading.
// Returns nil when the user has no visible subscription.
func (s *SubscriptionService) Summary(ctx context.Context, userID string) (*subscription.Summary, error) {
	now := s.now()

	sub, err := s.store.FindVisibleByUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	return &subscription.Summary{
		Subscription:     sub,
		Remaining:        sub.RemainingAt(now),
		PercentRemaining: subscription.ElapsedPercentage(sub.SubscriptionStart, sub.RenewalDate, now),
		ExpiringSoon:     sub.ExpiringSoonAt(now),
	}, nil
}
