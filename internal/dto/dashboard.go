package dto

import "gearguard/pkg/types"

type DashboardStatsDTO struct {
	TotalEquipment    int64 `json:"total_equipment"`
	TotalTeams        int64 `json:"total_teams"`
	OpenRequests      int64 `json:"open_requests"`
	CompletedRequests int64 `json:"completed_requests"`

	RequestsByTeam      []types.DashboardCountByTeam      `json:"requests_by_team"`
	RequestsByEquipment []types.DashboardCountByEquipment `json:"requests_by_equipment"`
}
