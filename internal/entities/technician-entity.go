package entities

import "time"

type Technician struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TeamID    uint64    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}
