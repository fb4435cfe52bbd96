package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	service services.RequestServiceInterface
	logger  *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{service: service, logger: logger}
}

func (ctrl *RequestController) GetRequests(c echo.Context) error {
	requests, err := ctrl.service.GetRequests(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, requests)
}

func (ctrl *RequestController) FindRequest(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.service.FindRequest(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, request)
}

func (ctrl *RequestController) CreateRequest(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.service.CreateRequest(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, request)
}

func (ctrl *RequestController) UpdateRequest(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.service.UpdateRequest(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, request)
}

func (ctrl *RequestController) GetKanbanBoard(c echo.Context) error {
	board, err := ctrl.service.GetKanbanBoard(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, board)
}

func (ctrl *RequestController) GetCalendarRequests(c echo.Context) error {
	requests, err := ctrl.service.GetCalendarRequests(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, requests)
}
