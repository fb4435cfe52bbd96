package entities

import (
	"gearguard/pkg/types"

	"github.com/aarondl/null/v8"
)

// MaintenanceRequest — строка таблицы maintenance_requests без джойнов.
type MaintenanceRequest struct {
	ID            uint64       `json:"id"`
	Subject       string       `json:"subject"`
	EquipmentID   uint64       `json:"equipment_id"`
	TeamID        uint64       `json:"team_id"`
	TechnicianID  null.Int     `json:"technician_id"`
	RequestType   string       `json:"request_type"`
	ScheduledDate null.Time    `json:"scheduled_date"`
	DurationHours null.Float64 `json:"duration_hours"`
	Status        string       `json:"status"`

	types.BaseEntity
}
