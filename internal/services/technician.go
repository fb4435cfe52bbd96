package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context) ([]dto.TechnicianDTO, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*dto.TechnicianDTO, error)
}

type TechnicianService struct {
	technicianRepository repositories.TechnicianRepositoryInterface
}

func NewTechnicianService(technicianRepository repositories.TechnicianRepositoryInterface) TechnicianServiceInterface {
	return &TechnicianService{technicianRepository: technicianRepository}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]dto.TechnicianDTO, error) {
	return s.technicianRepository.GetTechnicians(ctx)
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*dto.TechnicianDTO, error) {
	id, err := s.technicianRepository.CreateTechnician(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.technicianRepository.FindTechnician(ctx, id)
}
