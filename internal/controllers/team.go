package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TeamController struct {
	service services.TeamServiceInterface
	logger  *zap.Logger
}

func NewTeamController(service services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{service: service, logger: logger}
}

func (ctrl *TeamController) GetTeams(c echo.Context) error {
	teams, err := ctrl.service.GetTeams(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, teams)
}

func (ctrl *TeamController) CreateTeam(c echo.Context) error {
	var payload dto.CreateTeamDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("не удалось разобрать тело запроса", zap.Error(err))
		return utils.ErrorResponse(c, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	team, err := ctrl.service.CreateTeam(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusCreated, team)
}

func (ctrl *TeamController) GetTeamTechnicians(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	technicians, err := ctrl.service.GetTeamTechnicians(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, http.StatusOK, technicians)
}
