package batch_update_schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
)

// Фейки зависимостей

type fakeScheduleRepo struct {
	replaced map[int64][]domain.AvailabilityWindow
	err      error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{replaced: make(map[int64][]domain.AvailabilityWindow)}
}

func (f *fakeScheduleRepo) ReplaceWindows(_ context.Context, serviceID int64, windows []domain.AvailabilityWindow) error {
	if f.err != nil {
		return f.err
	}
	f.replaced[serviceID] = windows
	return nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return service, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

func ownedServices(businessID int64, ids ...int64) *fakeCatalogRepo {
	services := make(map[int64]*domain.Service, len(ids))
	for _, id := range ids {
		services[id] = &domain.Service{ID: id, BusinessID: businessID, DurationMinutes: 60, Active: true}
	}
	return &fakeCatalogRepo{services: services}
}

func weekdayTemplate() []ScheduleEntry {
	return []ScheduleEntry{
		{Day: 0, Start: "09:00", End: "13:00", MaxBookings: 1},
		{Day: 0, Start: "14:00", End: "18:00", MaxBookings: 2},
		{Day: 4, Start: "10:00", End: "16:00", MaxBookings: 1},
	}
}

// Тесты

func TestExecute_ReplacesSchedulesForAllServices(t *testing.T) {
	schedule := newFakeScheduleRepo()
	tx := &fakeTxManager{}
	uc := NewUseCase(schedule, ownedServices(1, 10, 11, 12), tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10, 11, 12},
		Schedules:       weekdayTemplate(),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ServicesUpdated)
	assert.Equal(t, 3, resp.WindowsPerService)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, schedule.replaced, 3)
	for _, serviceID := range []int64{10, 11, 12} {
		windows := schedule.replaced[serviceID]
		require.Len(t, windows, 3)
		assert.Equal(t, serviceID, windows[0].ServiceID)
		assert.Equal(t, domain.Monday, windows[0].DayOfWeek)
		assert.Equal(t, "09:00", windows[0].StartTime.String())
	}
}

func TestExecute_EmptyTemplateClosesServices(t *testing.T) {
	schedule := newFakeScheduleRepo()
	uc := NewUseCase(schedule, ownedServices(1, 10), &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10},
		Schedules:       []ScheduleEntry{},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ServicesUpdated)
	assert.Equal(t, 0, resp.WindowsPerService)
	assert.Empty(t, schedule.replaced[10])
}

func TestExecute_ConflictAbortsWholeBatch(t *testing.T) {
	schedule := newFakeScheduleRepo()
	uc := NewUseCase(schedule, ownedServices(1, 10, 11), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10, 11},
		Schedules: []ScheduleEntry{
			{Day: 0, Start: "09:00", End: "12:00", MaxBookings: 1},
			{Day: 0, Start: "11:00", End: "14:00", MaxBookings: 1},
		},
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// Шаблон один, конфликт строится для каждой услуги пакета
	require.Len(t, conflictErr.Conflicts, 2)
	require.Len(t, conflictErr.Conflicts[10], 1)
	assert.Equal(t, "09:00", conflictErr.Conflicts[10][0].First.StartTime)
	assert.Equal(t, "11:00", conflictErr.Conflicts[10][0].Second.StartTime)

	// Ни одной записи
	assert.Empty(t, schedule.replaced)
}

func TestExecute_UnknownServiceRejectsBatch(t *testing.T) {
	schedule := newFakeScheduleRepo()
	uc := NewUseCase(schedule, ownedServices(1, 10), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10, 99},
		Schedules:       weekdayTemplate(),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, schedule.replaced)
}

func TestExecute_ForeignServiceRejectsBatch(t *testing.T) {
	catalog := ownedServices(1, 10)
	catalog.services[11] = &domain.Service{ID: 11, BusinessID: 2, DurationMinutes: 60, Active: true}

	schedule := newFakeScheduleRepo()
	uc := NewUseCase(schedule, catalog, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10, 11},
		Schedules:       weekdayTemplate(),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, schedule.replaced)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(newFakeScheduleRepo(), ownedServices(1, 10), &fakeTxManager{}, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"no services", &Request{ActorBusinessID: 1, ServiceIDs: nil, Schedules: weekdayTemplate()}},
		{"duplicate service ids", &Request{ActorBusinessID: 1, ServiceIDs: []int64{10, 10}, Schedules: weekdayTemplate()}},
		{"invalid day", &Request{ActorBusinessID: 1, ServiceIDs: []int64{10}, Schedules: []ScheduleEntry{
			{Day: 7, Start: "09:00", End: "12:00", MaxBookings: 1},
		}}},
		{"start after end", &Request{ActorBusinessID: 1, ServiceIDs: []int64{10}, Schedules: []ScheduleEntry{
			{Day: 0, Start: "14:00", End: "12:00", MaxBookings: 1},
		}}},
		{"start equals end", &Request{ActorBusinessID: 1, ServiceIDs: []int64{10}, Schedules: []ScheduleEntry{
			{Day: 0, Start: "12:00", End: "12:00", MaxBookings: 1},
		}}},
		{"zero capacity", &Request{ActorBusinessID: 1, ServiceIDs: []int64{10}, Schedules: []ScheduleEntry{
			{Day: 0, Start: "09:00", End: "12:00", MaxBookings: 0},
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryFailureRollsBack(t *testing.T) {
	schedule := newFakeScheduleRepo()
	schedule.err = errors.New("connection reset")

	uc := NewUseCase(schedule, ownedServices(1, 10), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ActorBusinessID: 1,
		ServiceIDs:      []int64{10},
		Schedules:       weekdayTemplate(),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
