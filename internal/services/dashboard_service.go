package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
}

func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{dashboardRepository: dashboardRepository}
}

// GetStats собирает сводку дашборда из трёх независимых запросов. Агрегаты
// всегда считаются заново, без кеша.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	totals, err := s.dashboardRepository.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	byTeam, err := s.dashboardRepository.GetRequestsByTeam(ctx)
	if err != nil {
		return nil, err
	}
	if byTeam == nil {
		byTeam = make([]types.DashboardCountByTeam, 0)
	}

	byEquipment, err := s.dashboardRepository.GetTopEquipment(ctx)
	if err != nil {
		return nil, err
	}
	if byEquipment == nil {
		byEquipment = make([]types.DashboardCountByEquipment, 0)
	}

	return &dto.DashboardStatsDTO{
		TotalEquipment:      totals.TotalEquipment,
		TotalTeams:          totals.TotalTeams,
		OpenRequests:        totals.OpenRequests,
		CompletedRequests:   totals.CompletedRequests,
		RequestsByTeam:      byTeam,
		RequestsByEquipment: byEquipment,
	}, nil
}
