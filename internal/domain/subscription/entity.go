// internal/domain/subscription/entity.go
package subscription

import (
	"database/sql"
	"time"
)

type Duration string

const (
	DurationDay   Duration = "day"
	DurationWeek  Duration = "week"
	DurationMonth Duration = "month"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
	StatusExpired   Status = "expired"
)

// Subscription is one row of append-only subscription history. A purchase or
// plan switch always inserts a new row; existing rows are never updated in
// place for plan changes.
type Subscription struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	PlanID string `json:"plan_id" db:"plan_id"`
	Game   string `json:"game" db:"game"`

	Status Status  `json:"status" db:"status"`
	Price  float64 `json:"price" db:"price"`

	// SubscriptionEnd is set only when the row is cancelled and records the
	// cancellation moment, not the access-expiry moment. Access runs until
	// RenewalDate regardless.
	SubscriptionStart time.Time    `json:"subscription_start" db:"subscription_start"`
	SubscriptionEnd   sql.NullTime `json:"subscription_end,omitempty" db:"subscription_end"`
	RenewalDate       time.Time    `json:"renewal_date" db:"renewal_date"`

	PaymentMethod   string `json:"payment_method,omitempty" db:"payment_method"`
	PaymentLastFour string `json:"payment_last_four,omitempty" db:"payment_last_four"`

	Duration Duration `json:"duration" db:"duration"`

	Metadata map[string]interface{} `json:"metadata,omitempty" db:"metadata"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
