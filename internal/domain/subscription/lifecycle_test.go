package subscription

import (
	"database/sql"
	"testing"
	"time"

	xerrors "authbase-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr bool
	}{
		{name: "day", input: "day", want: DurationDay},
		{name: "week", input: "week", want: DurationWeek},
		{name: "month", input: "month", want: DurationMonth},
		{name: "absent defaults to month", input: "", want: DurationMonth},
		{name: "unrecognized rejected", input: "year", wantErr: true},
		{name: "case sensitive", input: "Week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationInterval(t *testing.T) {
	assert.Equal(t, 24*time.Hour, DurationDay.Interval())
	assert.Equal(t, 7*24*time.Hour, DurationWeek.Interval())
	assert.Equal(t, 30*24*time.Hour, DurationMonth.Interval())
}

func TestRenewalDate(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		duration Duration
		want     time.Time
	}{
		{DurationDay, start.Add(24 * time.Hour)},
		{DurationWeek, start.Add(7 * 24 * time.Hour)},
		{DurationMonth, start.Add(30 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(string(tt.duration), func(t *testing.T) {
			assert.Equal(t, tt.want, RenewalDate(start, tt.duration))
		})
	}
}

func TestRemainingAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("day subscriptions report hours", func(t *testing.T) {
		sub := &Subscription{Duration: DurationDay, RenewalDate: now.Add(5*time.Hour + 30*time.Minute)}
		rem := sub.RemainingAt(now)
		assert.Equal(t, RemainingHours, rem.Unit)
		assert.Equal(t, int64(5), rem.Value)
	})

	t.Run("week subscriptions report days", func(t *testing.T) {
		sub := &Subscription{Duration: DurationWeek, RenewalDate: now.Add(6*24*time.Hour + 23*time.Hour)}
		rem := sub.RemainingAt(now)
		assert.Equal(t, RemainingDays, rem.Unit)
		assert.Equal(t, int64(6), rem.Value)
	})

	t.Run("unset duration reports days", func(t *testing.T) {
		sub := &Subscription{RenewalDate: now.Add(48 * time.Hour)}
		rem := sub.RemainingAt(now)
		assert.Equal(t, RemainingDays, rem.Unit)
		assert.Equal(t, int64(2), rem.Value)
	})

	t.Run("past renewal clamps to zero", func(t *testing.T) {
		sub := &Subscription{Duration: DurationDay, RenewalDate: now.Add(-3 * time.Hour)}
		rem := sub.RemainingAt(now)
		assert.Equal(t, int64(0), rem.Value)
	})

	t.Run("monotonically non-increasing", func(t *testing.T) {
		sub := &Subscription{Duration: DurationMonth, RenewalDate: now.Add(30 * 24 * time.Hour)}
		prev := sub.RemainingAt(now).Value
		for i := 1; i <= 40; i++ {
			cur := sub.RemainingAt(now.Add(time.Duration(i) * 24 * time.Hour)).Value
			assert.LessOrEqual(t, cur, prev)
			assert.GreaterOrEqual(t, cur, int64(0))
			prev = cur
		}
	})
}

func TestExpiringSoonAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{
			name: "day inside six hour window",
			sub:  Subscription{Status: StatusActive, Duration: DurationDay, RenewalDate: now.Add(5 * time.Hour)},
			want: true,
		},
		{
			name: "day outside six hour window",
			sub:  Subscription{Status: StatusActive, Duration: DurationDay, RenewalDate: now.Add(7 * time.Hour)},
			want: false,
		},
		{
			name: "week inside two day window",
			sub:  Subscription{Status: StatusActive, Duration: DurationWeek, RenewalDate: now.Add(36 * time.Hour)},
			want: true,
		},
		{
			name: "month inside seven day window",
			sub:  Subscription{Status: StatusActive, Duration: DurationMonth, RenewalDate: now.Add(6 * 24 * time.Hour)},
			want: true,
		},
		{
			name: "month outside seven day window",
			sub:  Subscription{Status: StatusActive, Duration: DurationMonth, RenewalDate: now.Add(8 * 24 * time.Hour)},
			want: false,
		},
		{
			name: "cancelled row never expiring",
			sub:  Subscription{Status: StatusCancelled, Duration: DurationDay, RenewalDate: now.Add(time.Hour)},
			want: false,
		},
		{
			name: "ended row never expiring",
			sub: Subscription{
				Status:          StatusActive,
				Duration:        DurationDay,
				RenewalDate:     now.Add(time.Hour),
				SubscriptionEnd: sql.NullTime{Time: now.Add(-time.Minute), Valid: true},
			},
			want: false,
		},
		{
			name: "boundary counts as expiring",
			sub:  Subscription{Status: StatusActive, Duration: DurationDay, RenewalDate: now.Add(6 * time.Hour)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.ExpiringSoonAt(now))
		})
	}
}

func TestCancelledWithAccessAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	sub := Subscription{Status: StatusCancelled, RenewalDate: now.Add(time.Hour)}
	assert.True(t, sub.CancelledWithAccessAt(now))
	assert.False(t, sub.CancelledWithAccessAt(now.Add(2*time.Hour)))

	active := Subscription{Status: StatusActive, RenewalDate: now.Add(time.Hour)}
	assert.False(t, active.CancelledWithAccessAt(now))
}

func TestElapsedPercentage(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	renewal := start.Add(10 * 24 * time.Hour)

	t.Run("full at start", func(t *testing.T) {
		assert.InDelta(t, 100, ElapsedPercentage(start, renewal, start), 1e-9)
	})

	t.Run("zero at renewal", func(t *testing.T) {
		assert.InDelta(t, 0, ElapsedPercentage(start, renewal, renewal), 1e-9)
	})

	t.Run("linear in between", func(t *testing.T) {
		assert.InDelta(t, 50, ElapsedPercentage(start, renewal, start.Add(5*24*time.Hour)), 1e-9)
		assert.InDelta(t, 75, ElapsedPercentage(start, renewal, start.Add(60*time.Hour)), 1e-9)
	})

	t.Run("clamped outside the period", func(t *testing.T) {
		assert.Equal(t, float64(100), ElapsedPercentage(start, renewal, start.Add(-time.Hour)))
		assert.Equal(t, float64(0), ElapsedPercentage(start, renewal, renewal.Add(time.Hour)))
	})

	t.Run("degenerate inputs return zero", func(t *testing.T) {
		assert.Equal(t, float64(0), ElapsedPercentage(time.Time{}, renewal, start))
		assert.Equal(t, float64(0), ElapsedPercentage(start, time.Time{}, start))
		assert.Equal(t, float64(0), ElapsedPercentage(start, start, start))
		assert.Equal(t, float64(0), ElapsedPercentage(start, start.Add(-time.Hour), start))
	})
}
