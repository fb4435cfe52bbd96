package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController) {
	api.GET("/requests", ctrl.GetRequests)
	api.POST("/requests", ctrl.CreateRequest)

	// Статические сегменты регистрируем раньше :id.
	api.GET("/requests/kanban", ctrl.GetKanbanBoard)
	api.GET("/requests/calendar", ctrl.GetCalendarRequests)

	api.GET("/requests/:id", ctrl.FindRequest)
	api.PUT("/requests/:id", ctrl.UpdateRequest)
}
