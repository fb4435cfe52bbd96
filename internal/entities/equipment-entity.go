package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID               uint64      `json:"id"`
	Name             string      `json:"name"`
	SerialNumber     string      `json:"serial_number"`
	Department       null.String `json:"department"`
	AssignedEmployee null.String `json:"assigned_employee"`
	Location         null.String `json:"location"`
	PurchaseDate     null.Time   `json:"purchase_date"`
	WarrantyEnd      null.Time   `json:"warranty_end"`

	// Ссылка на команду обслуживания может отсутствовать.
	MaintenanceTeamID null.Int `json:"maintenance_team_id"`

	// Флаг is_scrapped односторонний: обратного перевода нет.
	IsScrapped bool      `json:"is_scrapped"`
	CreatedAt  time.Time `json:"created_at"`
}
