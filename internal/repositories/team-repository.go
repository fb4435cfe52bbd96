package repositories

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const teamFields = "mt.id, mt.team_name, mt.description, mt.created_at"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error)
	GetTeamTechnicians(ctx context.Context, teamID uint64) ([]dto.TeamTechnicianDTO, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func scanTeam(row pgx.Row) (*dto.TeamDTO, error) {
	var team dto.TeamDTO
	var description null.String
	var createdAt time.Time

	if err := row.Scan(&team.ID, &team.TeamName, &description, &createdAt); err != nil {
		return nil, err
	}

	team.Description = utils.NullStringToPtr(description)
	team.CreatedAt = utils.TimeToISOString(createdAt)
	return &team, nil
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_teams mt ORDER BY mt.team_name`, teamFields)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка команд: %w", err)
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования команды: %w", err)
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_teams mt WHERE mt.id = $1`, teamFields)

	team, err := scanTeam(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	description := ""
	if payload.Description != nil {
		description = *payload.Description
	}

	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO maintenance_teams (team_name, description) VALUES ($1, $2) RETURNING id`,
		payload.TeamName, description,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TeamRepository) GetTeamTechnicians(ctx context.Context, teamID uint64) ([]dto.TeamTechnicianDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, email, team_id FROM technicians WHERE team_id = $1 ORDER BY name`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения техников команды: %w", err)
	}
	defer rows.Close()

	technicians := make([]dto.TeamTechnicianDTO, 0)
	for rows.Next() {
		var t dto.TeamTechnicianDTO
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.TeamID); err != nil {
			return nil, fmt.Errorf("ошибка сканирования техника: %w", err)
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}
