package main

import (
	"fmt"
	"net/http"

	"gearguard/internal/routes"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/pkg/logger"
	"gearguard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()

	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator(validator.New())

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error("паника в обработчике",
				zap.Error(err),
				zap.String("uri", c.Request().RequestURI),
				zap.ByteString("stack", stack),
			)
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
	}))

	routes.InitRouter(e, pool, log)

	log.Info("🚀 GearGuard API запускается", zap.String("port", cfg.Server.Port))
	if err := e.Start(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil && err != http.ErrServerClosed {
		log.Fatal("сервер остановился с ошибкой", zap.Error(err))
	}
}
