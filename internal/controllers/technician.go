package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TechnicianController struct {
	service services.TechnicianServiceInterface
	logger  *zap.Logger
}

func NewTechnicianController(service services.TechnicianServiceInterface, logger *zap.Logger) *TechnicianController {
	return &TechnicianController{service: service, logger: logger}
}

func (ctrl *TechnicianController) GetTechnicians(c echo.Context) error {
	technicians, err := ctrl.service.GetTechnicians(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, technicians)
}

func (ctrl *TechnicianController) CreateTechnician(c echo.Context) error {
	var payload dto.CreateTechnicianDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	technician, err := ctrl.service.CreateTechnician(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, technician)
}
