package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testPool *pgxpool.Pool

// Интеграционные тесты ходят в настоящий PostgreSQL и включаются только
// при заданном TEST_DATABASE_URL.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL не задан, интеграционные тесты репозиториев пропущены")
		os.Exit(0)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		panic(err)
	}

	schema, err := os.ReadFile(filepath.Join("..", "..", "testdata", "schema.sql"))
	if err != nil {
		panic(err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		panic(err)
	}

	testPool = pool
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE maintenance_requests, equipment, technicians, maintenance_teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func createTestTeam(t *testing.T, name string) uint64 {
	t.Helper()
	id, err := NewTeamRepository(testPool).CreateTeam(context.Background(), dto.CreateTeamDTO{TeamName: name})
	require.NoError(t, err)
	return id
}

func createTestEquipment(t *testing.T, name, serial string, teamID null.Int) uint64 {
	t.Helper()
	id, err := NewEquipmentRepository(testPool).CreateEquipment(context.Background(), entities.Equipment{
		Name:              name,
		SerialNumber:      serial,
		MaintenanceTeamID: teamID,
	})
	require.NoError(t, err)
	return id
}

func createTestRequest(t *testing.T, request entities.MaintenanceRequest) uint64 {
	t.Helper()
	repo := NewRequestRepository(testPool)
	var id uint64
	err := NewTxManager(testPool).RunInTransaction(context.Background(), func(tx pgx.Tx) error {
		var err error
		id, err = repo.CreateRequestInTx(context.Background(), tx, request)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestTeamRepositoryCreateAndFind(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewTeamRepository(testPool)

	description := "Electrical systems"
	id, err := repo.CreateTeam(ctx, dto.CreateTeamDTO{TeamName: "Electricians", Description: &description})
	require.NoError(t, err)

	team, err := repo.FindTeam(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Electricians", team.TeamName)
	require.NotNil(t, team.Description)
	assert.Equal(t, description, *team.Description)
	assert.NotEmpty(t, team.CreatedAt)
}

func TestTeamRepositoryDuplicateName(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewTeamRepository(testPool)

	_, err := repo.CreateTeam(ctx, dto.CreateTeamDTO{TeamName: "Mechanics"})
	require.NoError(t, err)

	_, err = repo.CreateTeam(ctx, dto.CreateTeamDTO{TeamName: "Mechanics"})
	require.Error(t, err)
}

func TestEquipmentRepositoryProjection(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(teamID)))

	equipment, err := NewEquipmentRepository(testPool).FindEquipment(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, "Lathe", equipment.Name)
	require.NotNil(t, equipment.TeamName)
	assert.Equal(t, "Mechanics", *equipment.TeamName)
	assert.False(t, equipment.IsScrapped)
}

func TestEquipmentRepositoryMarkScrapped(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Press", "PR-001", null.IntFrom(int(teamID)))

	repo := NewEquipmentRepository(testPool)
	err := NewTxManager(testPool).RunInTransaction(ctx, func(tx pgx.Tx) error {
		return repo.MarkScrappedInTx(ctx, tx, equipmentID)
	})
	require.NoError(t, err)

	equipment, err := repo.FindEquipment(ctx, equipmentID)
	require.NoError(t, err)
	assert.True(t, equipment.IsScrapped)
}

func TestEquipmentRepositoryMaintenanceCountActiveOnly(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(teamID)))

	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Active", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "New",
	})
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "In work", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "In Progress",
	})
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Closed", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "Repaired", DurationHours: null.Float64From(2),
	})
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Scrapped", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "Scrap",
	})

	count, err := NewEquipmentRepository(testPool).GetMaintenanceCount(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestEquipmentRepositoryNotFound(t *testing.T) {
	resetTables(t)
	_, err := NewEquipmentRepository(testPool).FindEquipment(context.Background(), 424242)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestRepositoryDenormalizedRead(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(teamID)))

	requestID := createTestRequest(t, entities.MaintenanceRequest{
		Subject:       "Spindle noise",
		EquipmentID:   equipmentID,
		TeamID:        teamID,
		RequestType:   "Corrective",
		Status:        "New",
		DurationHours: null.Float64From(1.5),
	})

	request, err := NewRequestRepository(testPool).FindRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "Spindle noise", request.Subject)
	require.NotNil(t, request.EquipmentName)
	assert.Equal(t, "Lathe", *request.EquipmentName)
	require.NotNil(t, request.TeamName)
	assert.Equal(t, "Mechanics", *request.TeamName)
	require.NotNil(t, request.DurationHours)
	assert.Equal(t, 1.5, *request.DurationHours)
	assert.Nil(t, request.TechnicianName)
}

func TestRequestRepositoryUpdateInTx(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(teamID)))
	requestID := createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Spindle noise", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "New",
	})

	repo := NewRequestRepository(testPool)
	err := NewTxManager(testPool).RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := repo.FindRequestInTx(ctx, tx, requestID)
		if err != nil {
			return err
		}
		request.Status = "In Progress"
		return repo.UpdateRequestInTx(ctx, tx, *request)
	})
	require.NoError(t, err)

	request, err := repo.FindRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "In Progress", request.Status)
}

func TestRequestRepositoryCalendarOnlyScheduledPreventive(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	teamID := createTestTeam(t, "Mechanics")
	equipmentID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(teamID)))

	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Unscheduled", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "New",
	})
	// Внеплановый ремонт не попадает в календарь даже с датой.
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Urgent repair", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Corrective", Status: "New",
		ScheduledDate: null.TimeFrom(mustParseDate(t, "2026-09-10")),
	})
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Scheduled", EquipmentID: equipmentID, TeamID: teamID,
		RequestType: "Preventive", Status: "New",
		ScheduledDate: null.TimeFrom(mustParseDate(t, "2026-09-15")),
	})

	requests, err := NewRequestRepository(testPool).GetCalendarRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Scheduled", requests[0].Subject)
	require.NotNil(t, requests[0].ScheduledDate)
	assert.Equal(t, "2026-09-15", *requests[0].ScheduledDate)
}

func TestDashboardRepositoryAggregates(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	mechanicsID := createTestTeam(t, "Mechanics")
	createTestTeam(t, "Idle Team")
	latheID := createTestEquipment(t, "Lathe", "LT-001", null.IntFrom(int(mechanicsID)))
	createTestEquipment(t, "Press", "PR-001", null.Int{})

	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Open one", EquipmentID: latheID, TeamID: mechanicsID,
		RequestType: "Corrective", Status: "New",
	})
	createTestRequest(t, entities.MaintenanceRequest{
		Subject: "Done one", EquipmentID: latheID, TeamID: mechanicsID,
		RequestType: "Corrective", Status: "Repaired", DurationHours: null.Float64From(2),
	})

	repo := NewDashboardRepository(testPool, zap.NewNop())

	totals, err := repo.GetTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.TotalEquipment)
	assert.Equal(t, int64(2), totals.TotalTeams)
	assert.Equal(t, int64(1), totals.OpenRequests)
	assert.Equal(t, int64(1), totals.CompletedRequests)

	byTeam, err := repo.GetRequestsByTeam(ctx)
	require.NoError(t, err)
	// Команда без заявок тоже присутствует, с нулём.
	require.Len(t, byTeam, 2)
	assert.Equal(t, "Mechanics", byTeam[0].Team)
	assert.Equal(t, int64(2), byTeam[0].Count)
	assert.Equal(t, "Idle Team", byTeam[1].Team)
	assert.Equal(t, int64(0), byTeam[1].Count)

	byEquipment, err := repo.GetTopEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, byEquipment, 2)
	assert.Equal(t, "Lathe", byEquipment[0].Equipment)
	assert.Equal(t, int64(2), byEquipment[0].Count)
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}
