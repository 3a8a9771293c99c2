package entity

import (
	"github.com/google/uuid"
)

// Suggestion is a member-submitted candidate subject for an event. Written
// once, never mutated.
type Suggestion struct {
	ID         int64     `db:"id" json:"id"`
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	ChatID     int64     `db:"chat_id" json:"chat_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Suggestion string    `db:"suggestion" json:"suggestion"`
}
