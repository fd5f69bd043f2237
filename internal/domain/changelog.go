package domain

import "time"

// StatusSnapshot captures the actionable state of a recommendation at one
// point in time. Stored on both sides of every change log entry.
type StatusSnapshot struct {
	Status       RecommendationStatus `json:"status"`
	SnoozedUntil *time.Time           `json:"snoozed_until,omitempty"`
}

// ChangeLogEntry is one row of the audit trail. Append-only: entries are
// never updated or deleted.
type ChangeLogEntry struct {
	ID               string
	RecommendationID string
	Action           RecommendationAction
	Reason           string
	Notes            string
	Before           StatusSnapshot
	After            StatusSnapshot
	UserID           string
	CreatedAt        time.Time
}
