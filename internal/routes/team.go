package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(api *echo.Group, ctrl *controllers.TeamController) {
	api.GET("/teams", ctrl.GetTeams)
	api.POST("/teams", ctrl.CreateTeam)
	api.GET("/teams/:id/technicians", ctrl.GetTeamTechnicians)
}
