package services

import (
	"context"
	"fmt"

	"gearguard/internal/repositories"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	BuildRequestsRegister(ctx context.Context) (*excelize.File, error)
}

// ReportService выгружает реестр заявок в Excel для офлайновых отчётов.
type ReportService struct {
	requestRepository repositories.RequestRepositoryInterface
	logger            *zap.Logger
}

func NewReportService(requestRepository repositories.RequestRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{requestRepository: requestRepository, logger: logger}
}

var registerHeaders = []string{
	"ID", "Тема", "Оборудование", "Серийный номер", "Команда",
	"Техник", "Тип", "Плановая дата", "Длительность, ч", "Статус", "Создана",
}

func (s *ReportService) BuildRequestsRegister(ctx context.Context) (*excelize.File, error) {
	requests, err := s.requestRepository.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	const sheet = "Requests"
	file.SetSheetName("Sheet1", sheet)

	for i, header := range registerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("ошибка адресации ячейки заголовка: %w", err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("ошибка записи заголовка: %w", err)
		}
	}

	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	for i, request := range requests {
		row := i + 2
		values := []interface{}{
			request.ID,
			request.Subject,
			deref(request.EquipmentName),
			deref(request.SerialNumber),
			deref(request.TeamName),
			deref(request.TechnicianName),
			request.RequestType,
			deref(request.ScheduledDate),
			nil,
			request.Status,
			request.CreatedAt,
		}
		if request.DurationHours != nil {
			values[8] = *request.DurationHours
		}

		for j, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, fmt.Errorf("ошибка адресации ячейки: %w", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("ошибка записи строки реестра: %w", err)
			}
		}
	}

	s.logger.Info("сформирован реестр заявок", zap.Int("rows", len(requests)))
	return file, nil
}
