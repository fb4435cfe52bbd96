package dto

type CreateRequestDTO struct {
	Subject     string `json:"subject" validate:"required,max=255"`
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`

	// team_id может быть опущен: команда подставляется из оборудования.
	TeamID        *uint64  `json:"team_id,omitempty" validate:"omitempty,gt=0"`
	TechnicianID  *uint64  `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	RequestType   string   `json:"request_type" validate:"required,oneof=Corrective Preventive"`
	ScheduledDate *string  `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationHours *float64 `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=New 'In Progress' Repaired Scrap"`
}

// UpdateRequestDTO — частичное обновление: nil-поля не трогаются.
type UpdateRequestDTO struct {
	Subject       *string  `json:"subject,omitempty" validate:"omitempty,max=255"`
	TechnicianID  *uint64  `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	ScheduledDate *string  `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationHours *float64 `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=New 'In Progress' Repaired Scrap"`
}

// RequestDTO — денормализованная проекция заявки, собирается джойнами на
// чтении и никогда не кешируется.
type RequestDTO struct {
	ID            uint64   `json:"id"`
	Subject       string   `json:"subject"`
	EquipmentID   uint64   `json:"equipment_id"`
	TeamID        uint64   `json:"team_id"`
	TechnicianID  *uint64  `json:"technician_id"`
	RequestType   string   `json:"request_type"`
	ScheduledDate *string  `json:"scheduled_date"`
	DurationHours *float64 `json:"duration_hours"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`

	EquipmentName   *string `json:"equipment_name"`
	SerialNumber    *string `json:"serial_number"`
	TeamName        *string `json:"team_name"`
	TechnicianName  *string `json:"technician_name"`
	TechnicianEmail *string `json:"technician_email"`
}

// CalendarRequestDTO — урезанная проекция для календаря планового
// обслуживания.
type CalendarRequestDTO struct {
	ID            uint64   `json:"id"`
	Subject       string   `json:"subject"`
	EquipmentID   uint64   `json:"equipment_id"`
	TeamID        uint64   `json:"team_id"`
	TechnicianID  *uint64  `json:"technician_id"`
	RequestType   string   `json:"request_type"`
	ScheduledDate *string  `json:"scheduled_date"`
	DurationHours *float64 `json:"duration_hours"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`

	EquipmentName  *string `json:"equipment_name"`
	TechnicianName *string `json:"technician_name"`
}

// KanbanBoardDTO — объект с четырьмя фиксированными колонками-статусами.
type KanbanBoardDTO map[string][]RequestDTO
