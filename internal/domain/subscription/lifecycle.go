// internal/domain/subscription/lifecycle.go
package subscription

import (
	"fmt"
	"time"

	xerrors "authbase-service/internal/pkg/errors"
)

// ParseDuration maps a request value onto a recognized billing duration.
// An absent value defaults to month; anything else unrecognized is rejected.
func ParseDuration(s string) (Duration, error) {
	switch Duration(s) {
	case DurationDay, DurationWeek, DurationMonth:
		return Duration(s), nil
	case "":
		return DurationMonth, nil
	default:
		return "", fmt.Errorf("%w: unsupported duration %q", xerrors.ErrInvalidInput, s)
	}
}

// Interval returns the paid period length: 1 day, 7 days or 30 days.
// Months are a fixed 30 days, not calendar months.
func (d Duration) Interval() time.Duration {
	switch d {
	case DurationDay:
		return 24 * time.Hour
	case DurationWeek:
		return 7 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// ExpiryWindow is the duration-relative warning window before the renewal
// boundary: 6 hours for day, 2 days for week, 7 days for month.
func (d Duration) ExpiryWindow() time.Duration {
	switch d {
	case DurationDay:
		return 6 * time.Hour
	case DurationWeek:
		return 2 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

type RemainingUnit string

const (
	RemainingHours RemainingUnit = "hours"
	RemainingDays  RemainingUnit = "days"
)

// RemainingUnit is the granularity remaining time is reported in: hours for
// day subscriptions, whole days otherwise.
func (d Duration) RemainingUnit() RemainingUnit {
	if d == DurationDay {
		return RemainingHours
	}
	return RemainingDays
}

// Remaining is time left until the renewal boundary, floored and clamped at
// zero. It is always derived at read time, never persisted.
type Remaining struct {
	Unit  RemainingUnit `json:"unit"`
	Value int64         `json:"value"`
}

// RenewalDate computes the access-expiry boundary for a period starting at
// start.
func RenewalDate(start time.Time, d Duration) time.Time {
	return start.Add(d.Interval())
}

// RemainingAt reports how much paid time the row has left as of now.
func (s *Subscription) RemainingAt(now time.Time) Remaining {
	left := s.RenewalDate.Sub(now)
	if left < 0 {
		left = 0
	}

	unit := s.Duration.RemainingUnit()
	var value int64
	if unit == RemainingHours {
		value = int64(left / time.Hour)
	} else {
		value = int64(left / (24 * time.Hour))
	}
	return Remaining{Unit: unit, Value: value}
}

// ExpiringSoonAt reports whether an active, uncancelled-or-still-pending row
// is inside its duration's warning window. Cancelled and lapsed rows never
// report as expiring.
func (s *Subscription) ExpiringSoonAt(now time.Time) bool {
	if s.Status != StatusActive {
		return false
	}
	if s.SubscriptionEnd.Valid && !s.SubscriptionEnd.Time.After(now) {
		return false
	}
	return !s.RenewalDate.After(now.Add(s.Duration.ExpiryWindow()))
}

// CancelledWithAccessAt reports whether the row was cancelled but its paid
// period has not yet lapsed. Such rows stay visible to the user.
func (s *Subscription) CancelledWithAccessAt(now time.Time) bool {
	return s.Status == StatusCancelled && s.RenewalDate.After(now)
}

// ElapsedPercentage returns the percentage of the paid period still
// remaining at now, clamped to [0,100]. Degenerate inputs (zero timestamps,
// renewal at or before start) yield 0 rather than dividing by zero.
func ElapsedPercentage(start, renewal, now time.Time) float64 {
	if start.IsZero() || renewal.IsZero() {
		return 0
	}
	total := renewal.Sub(start)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(start)

	pct := float64(total-elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
