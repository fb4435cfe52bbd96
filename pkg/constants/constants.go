// pkg/constants/constants.go
package constants

//============== СТАТУСЫ ЗАЯВОК ==============

// Статусы хранятся в БД как есть и являются частью контракта API.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusRepaired   = "Repaired"
	StatusScrap      = "Scrap"
)

// KanbanStatuses — фиксированный порядок колонок канбан-доски.
// Статусы вне этого набора в выдачу не попадают.
var KanbanStatuses = []string{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

//============== ТИПЫ ЗАЯВОК ==============

const (
	RequestTypeCorrective = "Corrective"
	RequestTypePreventive = "Preventive"
)
