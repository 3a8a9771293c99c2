package entity

import (
	"time"

	"github.com/google/uuid"
)

// Club is a registered group identified by its chat ID. It points at the one
// active event, if any; next_event and last_event are denormalized for quick
// lookup and maintained inside the event transactions.
type Club struct {
	ChatID      int64      `db:"chat_id" json:"chat_id"`
	ActiveEvent *uuid.UUID `db:"active_event" json:"active_event,omitempty"`
	NextEvent   *time.Time `db:"next_event" json:"next_event,omitempty"`
	LastEvent   *time.Time `db:"last_event" json:"last_event,omitempty"`
}
