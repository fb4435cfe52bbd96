package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	GetKanbanBoard(ctx context.Context) (dto.KanbanBoardDTO, error)
	GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error)
}

// RequestService — workflow-движок заявок: подстановка команды при создании,
// контроль длительности при переводе в Repaired и списание оборудования при
// переводе в Scrap. Все мутации идут через транзакцию txManager.
type RequestService struct {
	requestRepository   repositories.RequestRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	logger              *zap.Logger
}

func NewRequestService(
	requestRepository repositories.RequestRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepository:   requestRepository,
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		logger:              logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	return s.requestRepository.GetRequests(ctx)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	return s.requestRepository.FindRequest(ctx, id)
}

// CreateRequest создаёт заявку. Команда оборудования приоритетна: если у
// оборудования назначена команда обслуживания, team_id из запроса
// игнорируется.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	scheduledDate, err := utils.ParseDatePtr(payload.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("некорректная плановая дата: %v", err)
	}

	status := constants.StatusNew
	if payload.Status != nil {
		status = *payload.Status
	}

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipmentTeamID, err := s.equipmentRepository.FindTeamIDInTx(ctx, tx, payload.EquipmentID)
		if err != nil {
			return err
		}

		var teamID uint64
		switch {
		case equipmentTeamID.Valid:
			teamID = uint64(equipmentTeamID.Int)
		case payload.TeamID != nil:
			teamID = *payload.TeamID
		default:
			return apperrors.NewInvalidInputError("team_id обязателен: у оборудования нет команды обслуживания")
		}

		request := entities.MaintenanceRequest{
			Subject:       payload.Subject,
			EquipmentID:   payload.EquipmentID,
			TeamID:        teamID,
			TechnicianID:  utils.Uint64PtrToNullInt(payload.TechnicianID),
			RequestType:   payload.RequestType,
			ScheduledDate: scheduledDate,
			DurationHours: utils.Float64PtrToNullFloat(payload.DurationHours),
			Status:        status,
		}

		id, err = s.requestRepository.CreateRequestInTx(ctx, tx, request)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("заявка создана", zap.Uint64("request_id", id))
	return s.requestRepository.FindRequest(ctx, id)
}

// UpdateRequest — частичное обновление заявки. Перевод в Repaired без
// положительной длительности отклоняется целиком, перевод в Scrap списывает
// оборудование в той же транзакции.
func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	scheduledDate, err := utils.ParseDatePtr(payload.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("некорректная плановая дата: %v", err)
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepository.FindRequestInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if payload.Subject != nil {
			request.Subject = *payload.Subject
		}
		if payload.TechnicianID != nil {
			request.TechnicianID = utils.Uint64PtrToNullInt(payload.TechnicianID)
		}
		if payload.ScheduledDate != nil {
			request.ScheduledDate = scheduledDate
		}
		if payload.DurationHours != nil {
			request.DurationHours = utils.Float64PtrToNullFloat(payload.DurationHours)
		}
		if payload.Status != nil {
			request.Status = *payload.Status
		}

		if request.Status == constants.StatusRepaired {
			if !request.DurationHours.Valid || request.DurationHours.Float64 <= 0 {
				return apperrors.NewInvalidInputError("для перевода в Repaired нужна положительная длительность работ")
			}
		}

		if request.Status == constants.StatusScrap {
			if err := s.equipmentRepository.MarkScrappedInTx(ctx, tx, request.EquipmentID); err != nil {
				return err
			}
			s.logger.Info("оборудование списано по заявке",
				zap.Uint64("request_id", request.ID),
				zap.Uint64("equipment_id", request.EquipmentID))
		}

		return s.requestRepository.UpdateRequestInTx(ctx, tx, *request)
	})
	if err != nil {
		return nil, err
	}

	return s.requestRepository.FindRequest(ctx, id)
}

// GetKanbanBoard раскладывает заявки по четырём фиксированным колонкам.
// Пустая колонка отдаётся пустым массивом, а не пропадает из ответа.
func (s *RequestService) GetKanbanBoard(ctx context.Context) (dto.KanbanBoardDTO, error) {
	requests, err := s.requestRepository.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	board := make(dto.KanbanBoardDTO, len(constants.KanbanStatuses))
	for _, status := range constants.KanbanStatuses {
		board[status] = make([]dto.RequestDTO, 0)
	}
	for _, request := range requests {
		if _, ok := board[request.Status]; ok {
			board[request.Status] = append(board[request.Status], request)
		}
	}
	return board, nil
}

func (s *RequestService) GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error) {
	return s.requestRepository.GetCalendarRequests(ctx)
}
