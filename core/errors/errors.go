package errors

import "fmt"

// ErrorCode identifies a failure class that callers can branch on.
type ErrorCode string

const (
	// Generic codes
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"

	// Club lifecycle codes
	ErrDuplicateClub        ErrorCode = "DUPLICATE_CLUB"
	ErrInvalidDateFormat    ErrorCode = "INVALID_DATE_FORMAT"
	ErrEventInPast          ErrorCode = "EVENT_IN_PAST"
	ErrActiveEventExists    ErrorCode = "ACTIVE_EVENT_EXISTS"
	ErrNoActiveEvent        ErrorCode = "NO_ACTIVE_EVENT"
	ErrSubjectAlreadyPicked ErrorCode = "SUBJECT_ALREADY_PICKED"
	ErrNoSuggestions        ErrorCode = "NO_SUGGESTIONS"
	ErrEventWithoutInsights ErrorCode = "EVENT_WITHOUT_INSIGHTS"
	ErrExternalFailure      ErrorCode = "EXTERNAL_FAILURE"
)

// AppError is the error value services return. Code carries the failure
// class, Message is safe to show to the user, Err is the underlying cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
