package dto

type CreateEquipmentDTO struct {
	Name              string  `json:"name" validate:"required,max=255"`
	SerialNumber      string  `json:"serial_number" validate:"required,max=255"`
	Department        *string `json:"department,omitempty"`
	AssignedEmployee  *string `json:"assigned_employee,omitempty"`
	Location          *string `json:"location,omitempty"`
	PurchaseDate      *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyEnd       *string `json:"warranty_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id,omitempty" validate:"omitempty,gt=0"`
	IsScrapped        bool    `json:"is_scrapped"`
}

// UpdateEquipmentDTO — PUT заменяет все поля целиком, поэтому набор полей
// совпадает с CreateEquipmentDTO.
type UpdateEquipmentDTO struct {
	Name              string  `json:"name" validate:"required,max=255"`
	SerialNumber      string  `json:"serial_number" validate:"required,max=255"`
	Department        *string `json:"department,omitempty"`
	AssignedEmployee  *string `json:"assigned_employee,omitempty"`
	Location          *string `json:"location,omitempty"`
	PurchaseDate      *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyEnd       *string `json:"warranty_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id,omitempty" validate:"omitempty,gt=0"`
	IsScrapped        bool    `json:"is_scrapped"`
}

type EquipmentDTO struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	SerialNumber      string  `json:"serial_number"`
	Department        *string `json:"department"`
	AssignedEmployee  *string `json:"assigned_employee"`
	Location          *string `json:"location"`
	PurchaseDate      *string `json:"purchase_date"`
	WarrantyEnd       *string `json:"warranty_end"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id"`
	IsScrapped        bool    `json:"is_scrapped"`
	TeamName          *string `json:"team_name"`
}

type MaintenanceCountDTO struct {
	Count int64 `json:"count"`
}
