package database

import (
	"time"
)

// Selection is a muhurat candidate a user saved for the booking flow. It
// records the chosen date along with the tier the engine assigned when the
// user picked it; the engine itself never reads selections back.
type Selection struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ActivityID string    `json:"activity_id"`
	Date       string    `json:"date"` // ISO 8601: YYYY-MM-DD
	Tier       string    `json:"tier"`
	Notes      *string   `json:"notes"` // nullable
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityCount is one row of the per-activity selection stats.
type ActivityCount struct {
	ActivityID string `json:"activity_id"`
	Count      int    `json:"count"`
}

// SelectionStats summarizes a user's saved selections.
type SelectionStats struct {
	Total      int             `json:"total"`
	ByActivity []ActivityCount `json:"by_activity"`
}
