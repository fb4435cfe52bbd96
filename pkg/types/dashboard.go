package types

// Структуры для группировок дашборда. db-теги нужны для
// pgx.RowToStructByName.

type DashboardCountByTeam struct {
	Team  string `json:"team" db:"team"`
	Count int64  `json:"count" db:"count"`
}

type DashboardCountByEquipment struct {
	Equipment string `json:"equipment" db:"equipment"`
	Count     int64  `json:"count" db:"count"`
}

type DashboardTotals struct {
	TotalEquipment    int64 `json:"total_equipment"`
	TotalTeams        int64 `json:"total_teams"`
	OpenRequests      int64 `json:"open_requests"`
	CompletedRequests int64 `json:"completed_requests"`
}
