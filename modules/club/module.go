package club

import (
	"bookpicker/core/database"
	"bookpicker/modules/club/controller"
	"bookpicker/modules/club/repository"
	"bookpicker/modules/club/router"
	"bookpicker/modules/club/service"
	"bookpicker/modules/insights"

	"github.com/labstack/echo/v4"
)

// Init initializes the club module and registers routes
func Init(e *echo.Echo, db database.IDatabase, insightsClient insights.Client, tasks service.TaskEnqueuer) {
	repo := repository.NewClubRepository(db)
	svc := service.NewClubService(repo, insightsClient, tasks)
	ctrl := controller.NewClubController(svc)
	rtr := router.NewClubRouter(ctrl)

	rtr.Setup(e)
}
