package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTechnicianRouter(api *echo.Group, ctrl *controllers.TechnicianController) {
	api.GET("/technicians", ctrl.GetTechnicians)
	api.POST("/technicians", ctrl.CreateTechnician)
}
