package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	service services.ReportServiceInterface
	logger  *zap.Logger
}

func NewReportController(service services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{service: service, logger: logger}
}

// ExportRequestsRegister отдаёт реестр заявок файлом .xlsx.
func (ctrl *ReportController) ExportRequestsRegister(c echo.Context) error {
	file, err := ctrl.service.BuildRequestsRegister(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	defer file.Close()

	filename := fmt.Sprintf("requests_register_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := file.Write(c.Response().Writer); err != nil {
		ctrl.logger.Error("ошибка записи файла отчёта в ответ", zap.Error(err))
		return err
	}
	return nil
}
