// internal/domain/plan/entity.go
package plan

import (
	"time"

	"github.com/lib/pq"
)

// Plan is one purchasable catalog entry. Each plan tier is offered per game
// at three billing durations, so the catalog key is (plan_id, duration).
type Plan struct {
	ID       int64  `json:"id" db:"id"`
	PlanID   string `json:"plan_id" db:"plan_id"`
	Name     string `json:"name" db:"name"`
	Game     string `json:"game" db:"game"`
	Duration string `json:"duration" db:"duration"`

	Price float64 `json:"price" db:"price"`

	Features pq.StringArray `json:"features" db:"features"`
	Popular  bool           `json:"popular" db:"popular"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
