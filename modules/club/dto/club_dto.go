package dto

// ===================== Request DTOs =====================

// RegisterClubRequest registers a chat as a club.
type RegisterClubRequest struct {
	ChatID int64 `json:"chat_id" validate:"required"`
}

// ScheduleEventRequest schedules the club's next event.
// Date format: "2023.07.16 15:00" (UTC).
type ScheduleEventRequest struct {
	Date string `json:"date" validate:"required"`
}

// SubmitSuggestionRequest records a member's subject suggestion.
type SubmitSuggestionRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// ===================== Response DTOs =====================

// MessageResponse carries the human-readable outcome of an operation.
type MessageResponse struct {
	Message string `json:"message"`
}
