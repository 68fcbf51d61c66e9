// internal/domain/user/entity.go
package user

import (
	"database/sql"
	"time"
)

type Settings struct {
	UserID       string    `json:"user_id" db:"user_id"`
	DarkMode     bool      `json:"dark_mode" db:"dark_mode"`
	EmailUpdates bool      `json:"email_updates" db:"email_updates"`
	Timezone     string    `json:"timezone" db:"timezone"`
	Language     string    `json:"language" db:"language"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
}

type Stats struct {
	UserID         string    `json:"user_id" db:"user_id"`
	TotalLogins    int       `json:"total_logins" db:"total_logins"`
	LastLogin      time.Time `json:"last_login" db:"last_login"`
	ProfileVisits  int       `json:"profile_visits" db:"profile_visits"`
	AccountCreated time.Time `json:"account_created" db:"account_created"`
}

// Visit records one profile view. VisitorID is null for anonymous visitors.
type Visit struct {
	ID          string         `json:"id" db:"id"`
	UserID      string         `json:"user_id" db:"user_id"`
	VisitorID   sql.NullString `json:"visitor_id,omitempty" db:"visitor_id"`
	VisitorName sql.NullString `json:"visitor_name,omitempty" db:"visitor_name"`
	VisitedAt   time.Time      `json:"visited_at" db:"visited_at"`
}

type SiteStats struct {
	TotalUsers          int       `json:"total_users" db:"total_users"`
	ActiveUsersLastWeek int       `json:"active_users_last_week" db:"active_users_last_week"`
	NewUsersLastWeek    int       `json:"new_users_last_week" db:"new_users_last_week"`
	LastUpdated         time.Time `json:"last_updated" db:"last_updated"`
}
