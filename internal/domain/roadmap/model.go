package roadmap

import (
	"time"

	"github.com/seywell/daypack/internal/domain/schedule"
)

// Roadmap is the full ordered collection of days plus its packing
// budget and metadata. Days are ordered by day number, contiguous from 1.
type Roadmap struct {
	ID                string         `json:"id"`
	UserID            string         `json:"user_id"`
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	DailyLimitMinutes int            `json:"daily_limit_minutes"`
	StartDate         *time.Time     `json:"start_date,omitempty"`
	SourceURL         string         `json:"source_url,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	Days              []schedule.Day `json:"days"`
}

// Summary is a lightweight listing view of a roadmap.
type Summary struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	DailyLimitMinutes int       `json:"daily_limit_minutes"`
	TotalDays         int       `json:"total_days"`
	TotalSessions     int       `json:"total_sessions"`
	CompletedSessions int       `json:"completed_sessions"`
	CreatedAt         time.Time `json:"created_at"`
}
