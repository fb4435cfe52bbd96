package services

import (
	"context"
	"sort"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTxManager выполняет функцию без настоящей транзакции: фейковым
// репозиториям tx не нужен.
type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeRequestRepository struct {
	repositories.RequestRepositoryInterface
	requests map[uint64]entities.MaintenanceRequest
	nextID   uint64
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{
		requests: make(map[uint64]entities.MaintenanceRequest),
		nextID:   1,
	}
}

func (f *fakeRequestRepository) CreateRequestInTx(_ context.Context, _ pgx.Tx, request entities.MaintenanceRequest) (uint64, error) {
	id := f.nextID
	f.nextID++
	request.ID = id
	f.requests[id] = request
	return id, nil
}

func (f *fakeRequestRepository) FindRequestInTx(_ context.Context, _ pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &request, nil
}

func (f *fakeRequestRepository) UpdateRequestInTx(_ context.Context, _ pgx.Tx, request entities.MaintenanceRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepository) toDTO(request entities.MaintenanceRequest) dto.RequestDTO {
	return dto.RequestDTO{
		ID:            request.ID,
		Subject:       request.Subject,
		EquipmentID:   request.EquipmentID,
		TeamID:        request.TeamID,
		TechnicianID:  utils.NullIntToUint64Ptr(request.TechnicianID),
		RequestType:   request.RequestType,
		ScheduledDate: utils.NullTimeToDateString(request.ScheduledDate),
		DurationHours: utils.NullFloatToPtr(request.DurationHours),
		Status:        request.Status,
	}
}

func (f *fakeRequestRepository) FindRequest(_ context.Context, id uint64) (*dto.RequestDTO, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	result := f.toDTO(request)
	return &result, nil
}

func (f *fakeRequestRepository) GetRequests(_ context.Context) ([]dto.RequestDTO, error) {
	ids := make([]uint64, 0, len(f.requests))
	for id := range f.requests {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]dto.RequestDTO, 0, len(ids))
	for _, id := range ids {
		result = append(result, f.toDTO(f.requests[id]))
	}
	return result, nil
}

type fakeEquipmentRepository struct {
	repositories.EquipmentRepositoryInterface
	teamIDs  map[uint64]null.Int
	scrapped map[uint64]bool
}

func newFakeEquipmentRepository() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{
		teamIDs:  make(map[uint64]null.Int),
		scrapped: make(map[uint64]bool),
	}
}

func (f *fakeEquipmentRepository) FindTeamIDInTx(_ context.Context, _ pgx.Tx, id uint64) (null.Int, error) {
	teamID, ok := f.teamIDs[id]
	if !ok {
		return null.Int{}, apperrors.ErrNotFound
	}
	return teamID, nil
}

func (f *fakeEquipmentRepository) MarkScrappedInTx(_ context.Context, _ pgx.Tx, id uint64) error {
	if _, ok := f.teamIDs[id]; !ok {
		return apperrors.ErrNotFound
	}
	f.scrapped[id] = true
	return nil
}

func newTestRequestService(requestRepo *fakeRequestRepository, equipmentRepo *fakeEquipmentRepository) RequestServiceInterface {
	return NewRequestService(requestRepo, equipmentRepo, &fakeTxManager{}, zap.NewNop())
}

func uint64Ptr(v uint64) *uint64    { return &v }
func float64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func TestCreateRequestUsesEquipmentTeam(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(7)
	service := newTestRequestService(requestRepo, equipmentRepo)

	created, err := service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Vibration in spindle",
		EquipmentID: 10,
		TeamID:      uint64Ptr(3),
		RequestType: constants.RequestTypeCorrective,
	})
	require.NoError(t, err)

	// Команда оборудования приоритетнее переданной клиентом.
	assert.Equal(t, uint64(7), created.TeamID)
	assert.Equal(t, constants.StatusNew, created.Status)
}

func TestCreateRequestFallsBackToCallerTeam(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.Int{}
	service := newTestRequestService(requestRepo, equipmentRepo)

	created, err := service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Broken fan",
		EquipmentID: 10,
		TeamID:      uint64Ptr(3),
		RequestType: constants.RequestTypeCorrective,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), created.TeamID)
}

func TestCreateRequestWithoutAnyTeam(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.Int{}
	service := newTestRequestService(requestRepo, equipmentRepo)

	_, err := service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "No team anywhere",
		EquipmentID: 10,
		RequestType: constants.RequestTypeCorrective,
	})
	require.Error(t, err)

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
	assert.Empty(t, requestRepo.requests)
}

func TestCreateRequestUnknownEquipment(t *testing.T) {
	service := newTestRequestService(newFakeRequestRepository(), newFakeEquipmentRepository())

	_, err := service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Ghost equipment",
		EquipmentID: 99,
		RequestType: constants.RequestTypePreventive,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRequestRepairedRequiresDuration(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(1)
	requestRepo.requests[1] = entities.MaintenanceRequest{
		ID: 1, Subject: "Oil leak", EquipmentID: 10, TeamID: 1,
		RequestType: constants.RequestTypeCorrective, Status: constants.StatusInProgress,
	}
	service := newTestRequestService(requestRepo, equipmentRepo)

	_, err := service.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Status: strPtr(constants.StatusRepaired),
	})
	require.Error(t, err)

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)

	// Отклонение атомарно: статус заявки не изменился.
	assert.Equal(t, constants.StatusInProgress, requestRepo.requests[1].Status)
}

func TestUpdateRequestRepairedWithDuration(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(1)
	requestRepo.requests[1] = entities.MaintenanceRequest{
		ID: 1, Subject: "Oil leak", EquipmentID: 10, TeamID: 1,
		RequestType: constants.RequestTypeCorrective, Status: constants.StatusInProgress,
	}
	service := newTestRequestService(requestRepo, equipmentRepo)

	updated, err := service.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Status:        strPtr(constants.StatusRepaired),
		DurationHours: float64Ptr(2.5),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRepaired, updated.Status)
	require.NotNil(t, updated.DurationHours)
	assert.Equal(t, 2.5, *updated.DurationHours)
}

func TestUpdateRequestScrapMarksEquipment(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(1)
	requestRepo.requests[1] = entities.MaintenanceRequest{
		ID: 1, Subject: "Beyond repair", EquipmentID: 10, TeamID: 1,
		RequestType: constants.RequestTypeCorrective, Status: constants.StatusNew,
	}
	service := newTestRequestService(requestRepo, equipmentRepo)

	updated, err := service.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Status: strPtr(constants.StatusScrap),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusScrap, updated.Status)
	assert.True(t, equipmentRepo.scrapped[10])
}

func TestUpdateRequestPartialMerge(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(1)
	requestRepo.requests[1] = entities.MaintenanceRequest{
		ID: 1, Subject: "Old subject", EquipmentID: 10, TeamID: 1,
		TechnicianID: null.IntFrom(4),
		RequestType:  constants.RequestTypePreventive, Status: constants.StatusInProgress,
	}
	service := newTestRequestService(requestRepo, equipmentRepo)

	updated, err := service.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Subject: strPtr("New subject"),
	})
	require.NoError(t, err)

	// nil-поля не трогаются.
	assert.Equal(t, "New subject", updated.Subject)
	assert.Equal(t, constants.StatusInProgress, updated.Status)
	require.NotNil(t, updated.TechnicianID)
	assert.Equal(t, uint64(4), *updated.TechnicianID)
}

func TestUpdateRequestAllowsBackwardTransition(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	equipmentRepo.teamIDs[10] = null.IntFrom(1)
	requestRepo.requests[1] = entities.MaintenanceRequest{
		ID: 1, Subject: "Came back broken", EquipmentID: 10, TeamID: 1,
		DurationHours: null.Float64From(3),
		RequestType:   constants.RequestTypeCorrective, Status: constants.StatusRepaired,
	}
	service := newTestRequestService(requestRepo, equipmentRepo)

	updated, err := service.UpdateRequest(context.Background(), 1, dto.UpdateRequestDTO{
		Status: strPtr(constants.StatusNew),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNew, updated.Status)
}

func TestGetKanbanBoardColumns(t *testing.T) {
	requestRepo := newFakeRequestRepository()
	equipmentRepo := newFakeEquipmentRepository()
	requestRepo.requests[1] = entities.MaintenanceRequest{ID: 1, Status: constants.StatusNew}
	requestRepo.requests[2] = entities.MaintenanceRequest{ID: 2, Status: constants.StatusNew}
	requestRepo.requests[3] = entities.MaintenanceRequest{ID: 3, Status: constants.StatusScrap}
	service := newTestRequestService(requestRepo, equipmentRepo)

	board, err := service.GetKanbanBoard(context.Background())
	require.NoError(t, err)

	require.Len(t, board, len(constants.KanbanStatuses))
	for _, status := range constants.KanbanStatuses {
		require.NotNil(t, board[status])
	}
	assert.Len(t, board[constants.StatusNew], 2)
	assert.Len(t, board[constants.StatusInProgress], 0)
	assert.Len(t, board[constants.StatusRepaired], 0)
	assert.Len(t, board[constants.StatusScrap], 1)
}
