package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
	"github.com/dtroshin/CWM-BookingService/internal/service/availability/models"
)

// Фейки зависимостей

type fakeScheduleRepo struct {
	stored     []domain.AvailabilityWindow
	replaceErr error
}

func (f *fakeScheduleRepo) ReplaceWindows(_ context.Context, serviceID int64, windows []domain.AvailabilityWindow) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.stored = make([]domain.AvailabilityWindow, 0, len(windows))
	for i, w := range windows {
		w.ID = int64(i + 1)
		w.ServiceID = serviceID
		f.stored = append(f.stored, w)
	}
	return nil
}

func (f *fakeScheduleRepo) ListWindows(_ context.Context, _ int64) ([]domain.AvailabilityWindow, error) {
	return f.stored, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Помощники

func newTestService(schedule *fakeScheduleRepo, catalog *fakeCatalogRepo) *Service {
	return NewService(schedule, catalog, &fakeTxManager{}, nopLogger{})
}

func ownedService() *domain.Service {
	return &domain.Service{ID: 5, BusinessID: 100, Name: "Экспресс-мойка", DurationMinutes: 30, Active: true}
}

// Тесты

func TestSet_ReplacesSchedule(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	svc := newTestService(schedule, &fakeCatalogRepo{service: ownedService()})

	resp, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
		Windows: []models.WindowEntry{
			{Day: 0, StartTime: "09:00", EndTime: "13:00", MaxBookings: 2},
			{Day: 0, StartTime: "14:00", EndTime: "18:00", MaxBookings: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ServiceID)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	assert.Equal(t, "Monday", resp.Windows[0].DayName)
	assert.Len(t, schedule.stored, 2)
}

func TestSet_EmptyScheduleClosesService(t *testing.T) {
	schedule := &fakeScheduleRepo{stored: []domain.AvailabilityWindow{
		{ID: 1, ServiceID: 5, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", MaxBookings: 1},
	}}
	svc := newTestService(schedule, &fakeCatalogRepo{service: ownedService()})

	resp, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
		Windows:         []models.WindowEntry{},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
	assert.Empty(t, schedule.stored)
}

func TestSet_OverlappingWindowsRejected(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	svc := newTestService(schedule, &fakeCatalogRepo{service: ownedService()})

	_, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
		Windows: []models.WindowEntry{
			{Day: 2, StartTime: "09:00", EndTime: "12:00", MaxBookings: 1},
			{Day: 2, StartTime: "11:00", EndTime: "14:00", MaxBookings: 1},
		},
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, domain.Weekday(2), conflictErr.Conflicts[0].DayOfWeek)
	// ничего не должно быть записано
	assert.Empty(t, schedule.stored)
}

func TestSet_TouchingWindowsAllowed(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogRepo{service: ownedService()})

	_, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
		Windows: []models.WindowEntry{
			{Day: 2, StartTime: "09:00", EndTime: "12:00", MaxBookings: 1},
			{Day: 2, StartTime: "12:00", EndTime: "15:00", MaxBookings: 1},
		},
	})

	require.NoError(t, err)
}

func TestSet_ForeignServiceDenied(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogRepo{service: ownedService()})

	_, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 999,
		ServiceID:       5,
		Windows:         []models.WindowEntry{},
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestSet_UnknownServiceRejected(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogRepo{})

	_, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
		Windows:         []models.WindowEntry{},
	})

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSet_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		window models.WindowEntry
	}{
		{"invalid day", models.WindowEntry{Day: 7, StartTime: "09:00", EndTime: "12:00", MaxBookings: 1}},
		{"bad start time", models.WindowEntry{Day: 0, StartTime: "9:00", EndTime: "12:00", MaxBookings: 1}},
		{"start after end", models.WindowEntry{Day: 0, StartTime: "14:00", EndTime: "12:00", MaxBookings: 1}},
		{"start equals end", models.WindowEntry{Day: 0, StartTime: "12:00", EndTime: "12:00", MaxBookings: 1}},
		{"zero capacity", models.WindowEntry{Day: 0, StartTime: "09:00", EndTime: "12:00", MaxBookings: 0}},
		{"capacity above limit", models.WindowEntry{Day: 0, StartTime: "09:00", EndTime: "12:00", MaxBookings: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogRepo{service: ownedService()})

			_, err := svc.Set(context.Background(), &models.SetAvailabilityRequest{
				ActorBusinessID: 100,
				ServiceID:       5,
				Windows:         []models.WindowEntry{tt.window},
			})

			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGet_ReturnsStoredSchedule(t *testing.T) {
	schedule := &fakeScheduleRepo{stored: []domain.AvailabilityWindow{
		{ID: 1, ServiceID: 5, DayOfWeek: 4, StartTime: "10:00", EndTime: "16:00", MaxBookings: 3},
	}}
	svc := newTestService(schedule, &fakeCatalogRepo{service: ownedService()})

	resp, err := svc.Get(context.Background(), &models.GetAvailabilityRequest{
		ActorBusinessID: 100,
		ServiceID:       5,
	})

	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, 4, resp.Windows[0].Day)
	assert.Equal(t, "Friday", resp.Windows[0].DayName)
	assert.Equal(t, 3, resp.Windows[0].MaxBookings)
}

func TestGet_ForeignServiceDenied(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogRepo{service: ownedService()})

	_, err := svc.Get(context.Background(), &models.GetAvailabilityRequest{
		ActorBusinessID: 999,
		ServiceID:       5,
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}
