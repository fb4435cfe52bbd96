package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seed наполняет пустую базу демонстрационными данными. Если команды уже
// есть, сидер молча выходит: повторный запуск безопасен.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM maintenance_teams`).Scan(&count); err != nil {
		return fmt.Errorf("не удалось проверить таблицу команд: %w", err)
	}
	if count > 0 {
		logger.Info("база уже наполнена, сидер пропущен", zap.Int64("teams", count))
		return nil
	}

	teamIDs := make(map[string]uint64, len(teamSeeds))
	for _, team := range teamSeeds {
		var id uint64
		err := pool.QueryRow(ctx,
			`INSERT INTO maintenance_teams (team_name, description) VALUES ($1, $2) RETURNING id`,
			team.Name, team.Description,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("ошибка вставки команды %q: %w", team.Name, err)
		}
		teamIDs[team.Name] = id
	}

	for _, technician := range technicianSeeds {
		_, err := pool.Exec(ctx,
			`INSERT INTO technicians (name, email, team_id) VALUES ($1, $2, $3)`,
			technician.Name, technician.Email, teamIDs[technician.Team],
		)
		if err != nil {
			return fmt.Errorf("ошибка вставки техника %q: %w", technician.Name, err)
		}
	}

	for _, equipment := range equipmentSeeds {
		_, err := pool.Exec(ctx,
			`INSERT INTO equipment
				(name, serial_number, department, assigned_employee, location,
				 purchase_date, warranty_end, maintenance_team_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			equipment.Name, equipment.SerialNumber, equipment.Department,
			equipment.AssignedEmployee, equipment.Location,
			equipment.PurchaseDate, equipment.WarrantyEnd,
			teamIDs[equipment.Team],
		)
		if err != nil {
			return fmt.Errorf("ошибка вставки оборудования %q: %w", equipment.Name, err)
		}
	}

	logger.Info("✅ сид-данные загружены",
		zap.Int("teams", len(teamSeeds)),
		zap.Int("technicians", len(technicianSeeds)),
		zap.Int("equipment", len(equipmentSeeds)),
	)
	return nil
}
