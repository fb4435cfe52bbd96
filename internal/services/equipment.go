package services

import (
	"context"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	GetMaintenanceCount(ctx context.Context, id uint64) (*dto.MaintenanceCountDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepository: equipmentRepository}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	return s.equipmentRepository.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func buildEquipmentEntity(payload dto.CreateEquipmentDTO) (entities.Equipment, error) {
	purchaseDate, err := utils.ParseDatePtr(payload.PurchaseDate)
	if err != nil {
		return entities.Equipment{}, apperrors.NewInvalidInputError("некорректная дата покупки: %v", err)
	}
	warrantyEnd, err := utils.ParseDatePtr(payload.WarrantyEnd)
	if err != nil {
		return entities.Equipment{}, apperrors.NewInvalidInputError("некорректная дата окончания гарантии: %v", err)
	}

	return entities.Equipment{
		Name:              payload.Name,
		SerialNumber:      payload.SerialNumber,
		Department:        utils.StringPtrToNullString(payload.Department),
		AssignedEmployee:  utils.StringPtrToNullString(payload.AssignedEmployee),
		Location:          utils.StringPtrToNullString(payload.Location),
		PurchaseDate:      purchaseDate,
		WarrantyEnd:       warrantyEnd,
		MaintenanceTeamID: utils.Uint64PtrToNullInt(payload.MaintenanceTeamID),
		IsScrapped:        payload.IsScrapped,
	}, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := buildEquipmentEntity(payload)
	if err != nil {
		return nil, err
	}

	id, err := s.equipmentRepository.CreateEquipment(ctx, equipment)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания оборудования: %w", err)
	}
	return s.equipmentRepository.FindEquipment(ctx, id)
}

// UpdateEquipment заменяет карточку целиком (PUT-семантика).
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := buildEquipmentEntity(dto.CreateEquipmentDTO(payload))
	if err != nil {
		return nil, err
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, equipment); err != nil {
		return nil, err
	}
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) GetMaintenanceCount(ctx context.Context, id uint64) (*dto.MaintenanceCountDTO, error) {
	count, err := s.equipmentRepository.GetMaintenanceCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MaintenanceCountDTO{Count: count}, nil
}
