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

// duration_hours хранится как NUMERIC, каст к float8 нужен для сканирования
// в null.Float64.
const requestSelectQuery = `
	SELECT mr.id, mr.subject, mr.equipment_id, mr.team_id, mr.technician_id,
	       mr.request_type, mr.scheduled_date, mr.duration_hours::float8,
	       mr.status, mr.created_at, mr.updated_at,
	       e.name AS equipment_name, e.serial_number,
	       mt.team_name,
	       t.name AS technician_name, t.email AS technician_email
	FROM maintenance_requests mr
	LEFT JOIN equipment e ON mr.equipment_id = e.id
	LEFT JOIN maintenance_teams mt ON mr.team_id = mt.id
	LEFT JOIN technicians t ON mr.technician_id = t.id`

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error)

	// Методы ...InTx участвуют в транзакциях workflow-движка: создание
	// заявки с подстановкой команды и смена статуса со списанием
	// оборудования должны быть атомарными.
	FindRequestInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.MaintenanceRequest) (uint64, error)
	UpdateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.MaintenanceRequest) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequest(row pgx.Row) (*dto.RequestDTO, error) {
	var request dto.RequestDTO
	var technicianID null.Int
	var scheduledDate null.Time
	var durationHours null.Float64
	var createdAt, updatedAt null.Time
	var equipmentName, serialNumber, teamName, technicianName, technicianEmail null.String

	err := row.Scan(
		&request.ID, &request.Subject, &request.EquipmentID, &request.TeamID,
		&technicianID, &request.RequestType, &scheduledDate, &durationHours,
		&request.Status, &createdAt, &updatedAt,
		&equipmentName, &serialNumber, &teamName, &technicianName, &technicianEmail,
	)
	if err != nil {
		return nil, err
	}

	request.TechnicianID = utils.NullIntToUint64Ptr(technicianID)
	request.ScheduledDate = utils.NullTimeToDateString(scheduledDate)
	request.DurationHours = utils.NullFloatToPtr(durationHours)
	request.CreatedAt = utils.TimeToISOString(createdAt.Time)
	request.UpdatedAt = utils.TimeToISOString(updatedAt.Time)
	request.EquipmentName = utils.NullStringToPtr(equipmentName)
	request.SerialNumber = utils.NullStringToPtr(serialNumber)
	request.TeamName = utils.NullStringToPtr(teamName)
	request.TechnicianName = utils.NullStringToPtr(technicianName)
	request.TechnicianEmail = utils.NullStringToPtr(technicianEmail)
	return &request, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	rows, err := r.storage.Query(ctx, requestSelectQuery+` ORDER BY mr.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки: %w", err)
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	return findRequest(ctx, r.storage, id)
}

func findRequest(ctx context.Context, q querier, id uint64) (*dto.RequestDTO, error) {
	request, err := scanRequest(q.QueryRow(ctx, requestSelectQuery+` WHERE mr.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

func (r *RequestRepository) GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT mr.id, mr.subject, mr.equipment_id, mr.team_id, mr.technician_id,
		       mr.request_type, mr.scheduled_date, mr.duration_hours::float8,
		       mr.status, mr.created_at,
		       e.name AS equipment_name,
		       t.name AS technician_name
		FROM maintenance_requests mr
		LEFT JOIN equipment e ON mr.equipment_id = e.id
		LEFT JOIN technicians t ON mr.technician_id = t.id
		WHERE mr.request_type = 'Preventive' AND mr.scheduled_date IS NOT NULL
		ORDER BY mr.scheduled_date`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения календаря заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.CalendarRequestDTO, 0)
	for rows.Next() {
		var request dto.CalendarRequestDTO
		var technicianID null.Int
		var scheduledDate, createdAt null.Time
		var durationHours null.Float64
		var equipmentName, technicianName null.String

		err := rows.Scan(
			&request.ID, &request.Subject, &request.EquipmentID, &request.TeamID,
			&technicianID, &request.RequestType, &scheduledDate, &durationHours,
			&request.Status, &createdAt, &equipmentName, &technicianName,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки календаря: %w", err)
		}

		request.TechnicianID = utils.NullIntToUint64Ptr(technicianID)
		request.ScheduledDate = utils.NullTimeToDateString(scheduledDate)
		request.DurationHours = utils.NullFloatToPtr(durationHours)
		request.CreatedAt = utils.TimeToISOString(createdAt.Time)
		request.EquipmentName = utils.NullStringToPtr(equipmentName)
		request.TechnicianName = utils.NullStringToPtr(technicianName)
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// FindRequestInTx блокирует строку заявки (FOR UPDATE) до конца транзакции,
// чтобы конкурирующие смены статуса выстраивались последовательно.
func (r *RequestRepository) FindRequestInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	var request entities.MaintenanceRequest
	err := tx.QueryRow(ctx, `
		SELECT id, subject, equipment_id, team_id, technician_id, request_type,
		       scheduled_date, duration_hours::float8, status, created_at, updated_at
		FROM maintenance_requests
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(
		&request.ID, &request.Subject, &request.EquipmentID, &request.TeamID,
		&request.TechnicianID, &request.RequestType, &request.ScheduledDate,
		&request.DurationHours, &request.Status, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.MaintenanceRequest) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		`INSERT INTO maintenance_requests
			(subject, equipment_id, team_id, technician_id, request_type,
			 scheduled_date, duration_hours, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		request.Subject, request.EquipmentID, request.TeamID, request.TechnicianID,
		request.RequestType, request.ScheduledDate, request.DurationHours, request.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RequestRepository) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.MaintenanceRequest) error {
	tag, err := tx.Exec(ctx,
		`UPDATE maintenance_requests SET
			subject = $1, technician_id = $2, scheduled_date = $3,
			duration_hours = $4, status = $5, updated_at = NOW()
		 WHERE id = $6`,
		request.Subject, request.TechnicianID, request.ScheduledDate,
		request.DurationHours, request.Status, request.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
