package repositories

import (
	"context"
	"fmt"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetTotals(ctx context.Context) (*types.DashboardTotals, error)
	GetRequestsByTeam(ctx context.Context) ([]types.DashboardCountByTeam, error)
	GetTopEquipment(ctx context.Context) ([]types.DashboardCountByEquipment, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
	builder sq.StatementBuilderType
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{
		storage: storage,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetTotals собирает четыре счётчика шапки дашборда. Списанное оборудование
// в total_equipment не входит.
func (r *DashboardRepository) GetTotals(ctx context.Context) (*types.DashboardTotals, error) {
	var totals types.DashboardTotals

	equipmentSQL, args, err := r.builder.
		Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"is_scrapped": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса по оборудованию: %w", err)
	}
	if err := r.storage.QueryRow(ctx, equipmentSQL, args...).Scan(&totals.TotalEquipment); err != nil {
		return nil, fmt.Errorf("ошибка подсчёта оборудования: %w", err)
	}

	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM maintenance_teams`).Scan(&totals.TotalTeams); err != nil {
		return nil, fmt.Errorf("ошибка подсчёта команд: %w", err)
	}

	requestsSQL, args, err := r.builder.
		Select(
			fmt.Sprintf("COUNT(*) FILTER (WHERE status IN ('%s', '%s'))", constants.StatusNew, constants.StatusInProgress),
			fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", constants.StatusRepaired),
		).
		From("maintenance_requests").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса по заявкам: %w", err)
	}
	if err := r.storage.QueryRow(ctx, requestsSQL, args...).Scan(&totals.OpenRequests, &totals.CompletedRequests); err != nil {
		return nil, fmt.Errorf("ошибка подсчёта заявок: %w", err)
	}

	return &totals, nil
}

// GetRequestsByTeam отдаёт все команды, включая команды без единой заявки.
func (r *DashboardRepository) GetRequestsByTeam(ctx context.Context) ([]types.DashboardCountByTeam, error) {
	query, args, err := r.builder.
		Select("mt.team_name AS team", "COUNT(mr.id) AS count").
		From("maintenance_teams mt").
		LeftJoin("maintenance_requests mr ON mr.team_id = mt.id").
		GroupBy("mt.id", "mt.team_name").
		OrderBy("count DESC", "mt.team_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса распределения по командам: %w", err)
	}

	r.logger.Debug("дашборд: распределение заявок по командам", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса распределения по командам: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardCountByTeam])
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования распределения по командам: %w", err)
	}
	return counts, nil
}

// GetTopEquipment — пятёрка самого проблемного оборудования; при равенстве
// числа заявок порядок стабилен за счёт id.
func (r *DashboardRepository) GetTopEquipment(ctx context.Context) ([]types.DashboardCountByEquipment, error) {
	query, args, err := r.builder.
		Select("e.name AS equipment", "COUNT(mr.id) AS count").
		From("equipment e").
		LeftJoin("maintenance_requests mr ON mr.equipment_id = e.id").
		GroupBy("e.id", "e.name").
		OrderBy("count DESC", "e.id ASC").
		Limit(5).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса топа оборудования: %w", err)
	}

	r.logger.Debug("дашборд: топ оборудования по заявкам", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса топа оборудования: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardCountByEquipment])
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования топа оборудования: %w", err)
	}
	return counts, nil
}
