package dto

type CreateTechnicianDTO struct {
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,email"`
	TeamID uint64 `json:"team_id" validate:"required,gt=0"`
}

// TechnicianDTO — проекция с именем команды (LEFT JOIN maintenance_teams).
type TechnicianDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	TeamID   uint64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

// TeamTechnicianDTO — выдача /api/teams/:id/technicians, без team_name.
type TeamTechnicianDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	TeamID uint64 `json:"team_id"`
}
