package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentSelectQuery = `
	SELECT e.id, e.name, e.serial_number, e.department, e.assigned_employee,
	       e.location, e.purchase_date, e.warranty_end, e.maintenance_team_id,
	       e.is_scrapped, mt.team_name
	FROM equipment e
	LEFT JOIN maintenance_teams mt ON e.maintenance_team_id = mt.id`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error
	GetMaintenanceCount(ctx context.Context, id uint64) (int64, error)

	// FindTeamIDInTx читает команду обслуживания оборудования внутри уже
	// открытой транзакции создания заявки.
	FindTeamIDInTx(ctx context.Context, tx pgx.Tx, id uint64) (null.Int, error)
	MarkScrappedInTx(ctx context.Context, tx pgx.Tx, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*dto.EquipmentDTO, error) {
	var equipment dto.EquipmentDTO
	var department, assignedEmployee, location, teamName null.String
	var purchaseDate, warrantyEnd null.Time
	var maintenanceTeamID null.Int

	err := row.Scan(
		&equipment.ID, &equipment.Name, &equipment.SerialNumber,
		&department, &assignedEmployee, &location,
		&purchaseDate, &warrantyEnd, &maintenanceTeamID,
		&equipment.IsScrapped, &teamName,
	)
	if err != nil {
		return nil, err
	}

	equipment.Department = utils.NullStringToPtr(department)
	equipment.AssignedEmployee = utils.NullStringToPtr(assignedEmployee)
	equipment.Location = utils.NullStringToPtr(location)
	equipment.PurchaseDate = utils.NullTimeToDateString(purchaseDate)
	equipment.WarrantyEnd = utils.NullTimeToDateString(warrantyEnd)
	equipment.MaintenanceTeamID = utils.NullIntToUint64Ptr(maintenanceTeamID)
	equipment.TeamName = utils.NullStringToPtr(teamName)
	return &equipment, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	rows, err := r.storage.Query(ctx, equipmentSelectQuery+` ORDER BY e.name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	equipments := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования оборудования: %w", err)
		}
		equipments = append(equipments, *equipment)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := scanEquipment(r.storage.QueryRow(ctx, equipmentSelectQuery+` WHERE e.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO equipment
			(name, serial_number, department, assigned_employee, location,
			 purchase_date, warranty_end, maintenance_team_id, is_scrapped)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		equipment.Name, equipment.SerialNumber, equipment.Department,
		equipment.AssignedEmployee, equipment.Location,
		equipment.PurchaseDate, equipment.WarrantyEnd,
		equipment.MaintenanceTeamID, equipment.IsScrapped,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE equipment SET
			name = $1, serial_number = $2, department = $3,
			assigned_employee = $4, location = $5, purchase_date = $6,
			warranty_end = $7, maintenance_team_id = $8, is_scrapped = $9
		 WHERE id = $10`,
		equipment.Name, equipment.SerialNumber, equipment.Department,
		equipment.AssignedEmployee, equipment.Location,
		equipment.PurchaseDate, equipment.WarrantyEnd,
		equipment.MaintenanceTeamID, equipment.IsScrapped,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) GetMaintenanceCount(ctx context.Context, id uint64) (int64, error) {
	// Существование оборудования проверяется отдельно, чтобы отличить
	// «ноль заявок» от «нет такого оборудования».
	var exists bool
	if err := r.storage.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM equipment WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.ErrNotFound
	}

	// Считаются только активные заявки: закрытые (Repaired, Scrap) не
	// мешают выводу оборудования из эксплуатации.
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenance_requests
		 WHERE equipment_id = $1 AND status IN ('New', 'In Progress')`, id,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EquipmentRepository) FindTeamIDInTx(ctx context.Context, tx pgx.Tx, id uint64) (null.Int, error) {
	var teamID null.Int
	err := tx.QueryRow(ctx, `SELECT maintenance_team_id FROM equipment WHERE id = $1`, id).Scan(&teamID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return null.Int{}, apperrors.ErrNotFound
		}
		return null.Int{}, err
	}
	return teamID, nil
}

func (r *EquipmentRepository) MarkScrappedInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	tag, err := tx.Exec(ctx, `UPDATE equipment SET is_scrapped = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
