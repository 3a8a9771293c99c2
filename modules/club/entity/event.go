package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled club occurrence. It is created active with no subject;
// once achieved it is immutable history.
type Event struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ChatID       int64      `db:"chat_id" json:"chat_id"`
	EventDate    time.Time  `db:"event_date" json:"event_date"`
	Active       bool       `db:"active" json:"active"`
	Subject      *string    `db:"subject" json:"subject,omitempty"`
	WithInsights bool       `db:"with_insights" json:"with_insights"`
	InsightsLink *string    `db:"insights_link" json:"insights_link,omitempty"`
	AchievedOn   *time.Time `db:"achieved_on" json:"achieved_on,omitempty"`
}

// HasSubject reports whether a suggestion has been picked for this event.
func (e *Event) HasSubject() bool {
	return e.Subject != nil && *e.Subject != ""
}
