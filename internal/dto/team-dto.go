package dto

type CreateTeamDTO struct {
	TeamName    string  `json:"team_name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

type TeamDTO struct {
	ID          uint64  `json:"id"`
	TeamName    string  `json:"team_name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}
