package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookpicker/core/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	registerErr *errors.AppError
	describeMsg string
	describeErr *errors.AppError
}

func (f *fakeService) RegisterClub(ctx context.Context, chatID int64) *errors.AppError {
	return f.registerErr
}

func (f *fakeService) ScheduleEvent(ctx context.Context, chatID int64, dateText string) (string, *errors.AppError) {
	return "Sunday, 16th of July at 15:00", nil
}

func (f *fakeService) SubmitSuggestion(ctx context.Context, chatID, userID int64, text string) *errors.AppError {
	return nil
}

func (f *fakeService) ToggleInsights(ctx context.Context, chatID int64) (string, *errors.AppError) {
	return "", nil
}

func (f *fakeService) PickSubject(ctx context.Context, chatID int64) (string, *errors.AppError) {
	return "", nil
}

func (f *fakeService) StartEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	return "", nil
}

func (f *fakeService) CompleteEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	return "", nil
}

func (f *fakeService) DescribeCurrentEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	return f.describeMsg, f.describeErr
}

func TestRegisterClubHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewClubController(&fakeService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(`{"chat_id":42}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, ctrl.RegisterClub(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate club maps to conflict", func(t *testing.T) {
		ctrl := NewClubController(&fakeService{
			registerErr: errors.NewAppError(errors.ErrDuplicateClub, "You've already started a club", nil),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs", strings.NewReader(`{"chat_id":42}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, ctrl.RegisterClub(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), string(errors.ErrDuplicateClub))
	})
}

func TestDescribeCurrentEventHandler(t *testing.T) {
	t.Run("bad chat id", func(t *testing.T) {
		ctrl := NewClubController(&fakeService{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("chatID")
		c.SetParamValues("not-a-number")

		err := ctrl.DescribeCurrentEvent(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("no active event maps to not found", func(t *testing.T) {
		ctrl := NewClubController(&fakeService{
			describeErr: errors.NewAppError(errors.ErrNoActiveEvent, "No active event found", nil),
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("chatID")
		c.SetParamValues("42")

		require.NoError(t, ctrl.DescribeCurrentEvent(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
