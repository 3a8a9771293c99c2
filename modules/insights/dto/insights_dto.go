package dto

import (
	"github.com/google/uuid"
)

// RegisterEventRequest registers a picked subject with the insights service.
type RegisterEventRequest struct {
	EventID      uuid.UUID `json:"event_id"`
	EventSubject string    `json:"event_subject"`
	ClubID       int64     `json:"club_id"`
}

type RegisterEventResponse struct {
	InsightsLink string `json:"insights_link"`
}

// ManageEventRequest is the payload for the start and finish endpoints.
type ManageEventRequest struct {
	EventID uuid.UUID `json:"event_id"`
}

type StartEventResponse struct {
	SummaryLink string  `json:"summary_link"`
	Error       *string `json:"error,omitempty"`
}
