// internal/domain/subscription/dto.go
package subscription

type CreateSubscriptionRequest struct {
	PlanID          string `json:"plan_id" binding:"required"`
	Game            string `json:"game"`
	Duration        string `json:"duration"`
	PaymentLastFour string `json:"payment_last_four"`
}

// Summary is the dashboard payload: the visible row plus every time-derived
// field, all computed from one captured clock reading.
type Summary struct {
	Subscription     *Subscription `json:"subscription"`
	Remaining        Remaining     `json:"remaining"`
	PercentRemaining float64       `json:"percent_remaining"`
	ExpiringSoon     bool          `json:"expiring_soon"`
}
