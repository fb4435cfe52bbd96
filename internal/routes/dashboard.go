package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/stats/dashboard", ctrl.GetStats)
}
