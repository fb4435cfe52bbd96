package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController) {
	api.GET("/equipment", ctrl.GetEquipments)
	api.POST("/equipment", ctrl.CreateEquipment)
	api.GET("/equipment/:id", ctrl.FindEquipment)
	api.PUT("/equipment/:id", ctrl.UpdateEquipment)
	api.GET("/equipment/:id/maintenance_count", ctrl.GetMaintenanceCount)
}
