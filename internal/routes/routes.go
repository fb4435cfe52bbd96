package routes

import (
	"net/http"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает весь граф зависимостей (репозитории → сервисы →
// контроллеры) и вешает маршруты на группу /api.
func InitRouter(e *echo.Echo, pool *pgxpool.Pool, logger *zap.Logger) {
	api := e.Group("/api")

	health := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "GearGuard API is running",
			"status":  "healthy",
		})
	}
	api.GET("", health)
	api.GET("/", health)
	api.GET("/health", health)

	txManager := repositories.NewTxManager(pool)

	teamRepository := repositories.NewTeamRepository(pool)
	technicianRepository := repositories.NewTechnicianRepository(pool)
	equipmentRepository := repositories.NewEquipmentRepository(pool)
	requestRepository := repositories.NewRequestRepository(pool)
	dashboardRepository := repositories.NewDashboardRepository(pool, logger)

	teamService := services.NewTeamService(teamRepository)
	technicianService := services.NewTechnicianService(technicianRepository)
	equipmentService := services.NewEquipmentService(equipmentRepository)
	requestService := services.NewRequestService(requestRepository, equipmentRepository, txManager, logger)
	dashboardService := services.NewDashboardService(dashboardRepository)
	reportService := services.NewReportService(requestRepository, logger)

	runTeamRouter(api, controllers.NewTeamController(teamService, logger))
	runTechnicianRouter(api, controllers.NewTechnicianController(technicianService, logger))
	runEquipmentRouter(api, controllers.NewEquipmentController(equipmentService, logger))
	runRequestRouter(api, controllers.NewRequestController(requestService, logger))
	runDashboardRouter(api, controllers.NewDashboardController(dashboardService, logger))
	runReportRouter(api, controllers.NewReportController(reportService, logger))
}
