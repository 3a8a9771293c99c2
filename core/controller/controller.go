package controller

import (
	"net/http"
	"time"

	"bookpicker/core/errors"
	"bookpicker/core/logger"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Timestamp time.Time        `json:"timestamp"`
	}
)

// BaseController renders the shared response envelopes.
type BaseController interface {
	BadRequest(code errors.ErrorCode, message string) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err error) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(httpStatusCode int, code errors.ErrorCode, message string) *echo.HTTPError {
	return echo.NewHTTPError(httpStatusCode, &ErrorResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func (h *responseHandler) BadRequest(code errors.ErrorCode, message string) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, code, message)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

// ErrorResponse maps AppError codes onto HTTP statuses. Unexpected errors
// collapse to a generic internal failure so internals never leak out.
func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	code := errors.ErrInternalServer
	msg := "something went wrong, please try again"

	if ae, ok := err.(*errors.AppError); ok && ae != nil {
		code = ae.Code
		if ae.Message != "" {
			msg = ae.Message
		}
		switch code {
		case errors.ErrInvalidInput, errors.ErrInvalidDateFormat, errors.ErrEventInPast:
			httpStatus = http.StatusBadRequest
		case errors.ErrNoActiveEvent, errors.ErrNoSuggestions, errors.ErrNotFound:
			httpStatus = http.StatusNotFound
		case errors.ErrDuplicateClub, errors.ErrActiveEventExists,
			errors.ErrSubjectAlreadyPicked, errors.ErrAlreadyExists:
			httpStatus = http.StatusConflict
		case errors.ErrEventWithoutInsights:
			httpStatus = http.StatusUnprocessableEntity
		case errors.ErrExternalFailure:
			httpStatus = http.StatusBadGateway
		default:
			httpStatus = http.StatusInternalServerError
			msg = "something went wrong, please try again"
		}
	}

	logger.Error("request failed",
		"status", httpStatus,
		"code", code,
		"message", msg,
	)
	return c.JSON(httpStatus, &ErrorResponse{
		Status:    "error",
		Code:      code,
		Message:   msg,
		Timestamp: time.Now(),
	})
}
