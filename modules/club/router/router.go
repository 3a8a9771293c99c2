package router

import (
	"bookpicker/modules/club/controller"

	"github.com/labstack/echo/v4"
)

// ClubRouter handles club routes
type ClubRouter struct {
	ClubController *controller.ClubController
}

func NewClubRouter(clubController *controller.ClubController) *ClubRouter {
	return &ClubRouter{
		ClubController: clubController,
	}
}

// Setup registers club routes
func (r *ClubRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	clubs := v1.Group("/clubs")
	clubs.POST("", r.ClubController.RegisterClub)

	events := clubs.Group("/:chatID/events")
	events.POST("", r.ClubController.ScheduleEvent)
	events.GET("/current", r.ClubController.DescribeCurrentEvent)
	events.POST("/current/suggestions", r.ClubController.SubmitSuggestion)
	events.POST("/current/insights/toggle", r.ClubController.ToggleInsights)
	events.POST("/current/pick", r.ClubController.PickSubject)
	events.POST("/current/start", r.ClubController.StartEvent)
	events.POST("/current/complete", r.ClubController.CompleteEvent)
}
