package controllers

import (
	"net/http"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	service services.DashboardServiceInterface
	logger  *zap.Logger
}

func NewDashboardController(service services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{service: service, logger: logger}
}

func (ctrl *DashboardController) GetStats(c echo.Context) error {
	stats, err := ctrl.service.GetStats(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, stats)
}
