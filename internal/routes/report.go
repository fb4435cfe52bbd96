package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController) {
	api.GET("/reports/requests/export", ctrl.ExportRequestsRegister)
}
