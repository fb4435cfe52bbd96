package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Team struct {
	ID          uint64      `json:"id"`
	TeamName    string      `json:"team_name"`
	Description null.String `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}
