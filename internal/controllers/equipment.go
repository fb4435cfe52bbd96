package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	service services.EquipmentServiceInterface
	logger  *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{service: service, logger: logger}
}

func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	equipments, err := ctrl.service.GetEquipments(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipments)
}

func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.service.FindEquipment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipment)
}

func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.service.CreateEquipment(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, equipment)
}

func (ctrl *EquipmentController) UpdateEquipment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.service.UpdateEquipment(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipment)
}

// GetMaintenanceCount отдает {"count": N} для карточки оборудования.
func (ctrl *EquipmentController) GetMaintenanceCount(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	count, err := ctrl.service.GetMaintenanceCount(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, count)
}
