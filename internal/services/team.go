package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	GetTeamTechnicians(ctx context.Context, teamID uint64) ([]dto.TeamTechnicianDTO, error)
}

type TeamService struct {
	teamRepository repositories.TeamRepositoryInterface
}

func NewTeamService(teamRepository repositories.TeamRepositoryInterface) TeamServiceInterface {
	return &TeamService{teamRepository: teamRepository}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return s.teamRepository.GetTeams(ctx)
}

// CreateTeam создаёт команду и перечитывает её, чтобы отдать клиенту
// серверные значения (id, created_at).
func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	id, err := s.teamRepository.CreateTeam(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.teamRepository.FindTeam(ctx, id)
}

func (s *TeamService) GetTeamTechnicians(ctx context.Context, teamID uint64) ([]dto.TeamTechnicianDTO, error) {
	return s.teamRepository.GetTeamTechnicians(ctx, teamID)
}
