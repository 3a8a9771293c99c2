package controller

import (
	"strconv"

	"bookpicker/core/controller"
	"bookpicker/core/errors"
	"bookpicker/modules/club/dto"
	"bookpicker/modules/club/service"

	"github.com/labstack/echo/v4"
)

// ClubController translates inbound commands into service calls and formats
// replies. No business rules live here.
type ClubController struct {
	controller.BaseController
	ClubService service.ClubServiceInterface
}

func NewClubController(svc service.ClubServiceInterface) *ClubController {
	return &ClubController{
		BaseController: controller.NewBaseController(),
		ClubService:    svc,
	}
}

func (c *ClubController) chatID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("chatID"), 10, 64)
	if err != nil {
		return 0, c.BadRequest(errors.ErrInvalidInput, "chat ID must be an integer")
	}
	return id, nil
}

// RegisterClub handles POST /clubs
func (c *ClubController) RegisterClub(ctx echo.Context) error {
	var req dto.RegisterClubRequest
	if err := ctx.Bind(&req); err != nil || req.ChatID == 0 {
		return c.BadRequest(errors.ErrInvalidInput, "chat_id is required")
	}

	if appErr := c.ClubService.RegisterClub(ctx.Request().Context(), req.ChatID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "You're all set up! Now you can create an event for your club")
}

// ScheduleEvent handles POST /clubs/:chatID/events
func (c *ClubController) ScheduleEvent(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	var req dto.ScheduleEventRequest
	if err := ctx.Bind(&req); err != nil || req.Date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Please write a date in format - 2023.07.16 15:00")
	}

	formattedDate, appErr := c.ClubService.ScheduleEvent(ctx.Request().Context(), chatID, req.Date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: "New club event created on " + formattedDate}, "Event scheduled")
}

// SubmitSuggestion handles POST /clubs/:chatID/events/current/suggestions
func (c *ClubController) SubmitSuggestion(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitSuggestionRequest
	if err := ctx.Bind(&req); err != nil || req.Text == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Your suggestion is empty ;(")
	}

	if appErr := c.ClubService.SubmitSuggestion(ctx.Request().Context(), chatID, req.UserID, req.Text); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: "Got it. Your suggestion:\n" + req.Text}, "Suggestion saved")
}

// ToggleInsights handles POST /clubs/:chatID/events/current/insights/toggle
func (c *ClubController) ToggleInsights(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	message, appErr := c.ClubService.ToggleInsights(ctx.Request().Context(), chatID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: message}, "Insights toggled")
}

// PickSubject handles POST /clubs/:chatID/events/current/pick
func (c *ClubController) PickSubject(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	message, appErr := c.ClubService.PickSubject(ctx.Request().Context(), chatID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: message}, "Subject picked")
}

// StartEvent handles POST /clubs/:chatID/events/current/start
func (c *ClubController) StartEvent(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	message, appErr := c.ClubService.StartEvent(ctx.Request().Context(), chatID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: message}, "Event started")
}

// CompleteEvent handles POST /clubs/:chatID/events/current/complete
func (c *ClubController) CompleteEvent(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	formattedDate, appErr := c.ClubService.CompleteEvent(ctx.Request().Context(), chatID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: "Completed the event on " + formattedDate}, "Event completed")
}

// DescribeCurrentEvent handles GET /clubs/:chatID/events/current
func (c *ClubController) DescribeCurrentEvent(ctx echo.Context) error {
	chatID, err := c.chatID(ctx)
	if err != nil {
		return err
	}

	message, appErr := c.ClubService.DescribeCurrentEvent(ctx.Request().Context(), chatID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.MessageResponse{Message: message}, "Current event")
}
