// Команда seed накатывает миграции и наполняет базу демо-данными.
package main

import (
	"context"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/pkg/logger"
	"gearguard/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()
	ctx := context.Background()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("не удалось открыть соединение для миграций", zap.Error(err))
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("не удалось выбрать диалект миграций", zap.Error(err))
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("ошибка применения миграций", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Fatal("не удалось закрыть соединение миграций", zap.Error(err))
	}
	log.Info("✅ миграции применены")

	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	if err := seeders.Seed(ctx, pool, log); err != nil {
		log.Fatal("ошибка сидирования", zap.Error(err))
	}
}
