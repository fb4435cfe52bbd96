package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const technicianSelectQuery = `
	SELECT t.id, t.name, t.email, t.team_id, mt.team_name
	FROM technicians t
	LEFT JOIN maintenance_teams mt ON t.team_id = mt.id`

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]dto.TechnicianDTO, error)
	FindTechnician(ctx context.Context, id uint64) (*dto.TechnicianDTO, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (uint64, error)
}

type TechnicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &TechnicianRepository{storage: storage}
}

func scanTechnician(row pgx.Row) (*dto.TechnicianDTO, error) {
	var technician dto.TechnicianDTO
	var teamName null.String

	if err := row.Scan(&technician.ID, &technician.Name, &technician.Email, &technician.TeamID, &teamName); err != nil {
		return nil, err
	}

	technician.TeamName = utils.NullStringToPtr(teamName)
	return &technician, nil
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context) ([]dto.TechnicianDTO, error) {
	rows, err := r.storage.Query(ctx, technicianSelectQuery+` ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка техников: %w", err)
	}
	defer rows.Close()

	technicians := make([]dto.TechnicianDTO, 0)
	for rows.Next() {
		technician, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования техника: %w", err)
		}
		technicians = append(technicians, *technician)
	}
	return technicians, rows.Err()
}

func (r *TechnicianRepository) FindTechnician(ctx context.Context, id uint64) (*dto.TechnicianDTO, error) {
	technician, err := scanTechnician(r.storage.QueryRow(ctx, technicianSelectQuery+` WHERE t.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return technician, nil
}

func (r *TechnicianRepository) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO technicians (name, email, team_id) VALUES ($1, $2, $3) RETURNING id`,
		payload.Name, payload.Email, payload.TeamID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
