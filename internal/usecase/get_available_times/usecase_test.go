package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	lastFilter domain.BusinessBookingsFilter
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	windowCount int
	windows     []domain.AvailabilityWindow
}

func (f *fakeScheduleRepo) CountWindows(_ context.Context, _ int64) (int, error) {
	return f.windowCount, nil
}

func (f *fakeScheduleRepo) ListWindowsForDay(_ context.Context, _ int64, day domain.Weekday) ([]domain.AvailabilityWindow, error) {
	result := make([]domain.AvailabilityWindow, 0)
	for _, w := range f.windows {
		if w.DayOfWeek == day {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeCatalogRepo struct {
	business *domain.Business
	service  *domain.Service
}

func (f *fakeCatalogRepo) GetBusiness(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

// testDate понедельник
var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func openBusiness(open, close string) *domain.Business {
	hours := make(map[domain.Weekday]domain.DayHours)
	for day := domain.Monday; day <= domain.Sunday; day++ {
		hours[day] = domain.DayHours{
			IsOpen:    true,
			OpenTime:  types.TimeString(open),
			CloseTime: types.TimeString(close),
		}
	}
	return &domain.Business{ID: 1, Name: "Wash&Go", Active: true, Hours: hours}
}

func testService(duration int) *domain.Service {
	return &domain.Service{ID: 10, BusinessID: 1, Name: "Комплексная мойка", DurationMinutes: duration, Active: true}
}

func activeBooking(start string) *domain.Booking {
	return &domain.Booking{
		BusinessID:  1,
		ServiceID:   10,
		BookingDate: testDate,
		BookingTime: types.TimeString(start),
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, schedule *fakeScheduleRepo, catalog *fakeCatalogRepo) *UseCase {
	uc := NewUseCase(bookings, schedule, catalog, nopLogger{})
	uc.timeProvider = fixedTime{now: testDate.AddDate(0, 0, -1)}
	return uc
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.StartTime.String())
	}
	return starts
}

// Тесты

func TestExecute_HourlySlotsFromBusinessHours(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 9)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "17:00", resp.Slots[8].StartTime.String())
	assert.Equal(t, "18:00", resp.Slots[8].EndTime.String())
	assert.Equal(t, domain.Monday, resp.Day)
}

func TestExecute_BookedSlotIsOmitted(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{activeBooking("13:00")}},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 8)
	assert.NotContains(t, slotStarts(resp.Slots), "13:00")
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	cancelled := activeBooking("13:00")
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{cancelled}},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 9)
	assert.Contains(t, slotStarts(resp.Slots), "13:00")
}

func TestExecute_DurationDrivesStepping(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(45)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// 45-минутная услуга шагает по 45 минут: 09:00, 09:45, ... 17:15
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:45", resp.Slots[1].StartTime.String())
	assert.Equal(t, "17:15", resp.Slots[11].StartTime.String())
	assert.Equal(t, "18:00", resp.Slots[11].EndTime.String())
}

func TestExecute_ShortServiceUsesMinimumStep(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "11:00"), service: testService(15)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Шаг не чаще 30 минут даже для коротких услуг
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(resp.Slots))
}

func TestExecute_WindowsTakePrecedenceOverBusinessHours(t *testing.T) {
	schedule := &fakeScheduleRepo{
		windowCount: 1,
		windows: []domain.AvailabilityWindow{
			{ServiceID: 10, DayOfWeek: domain.Monday, StartTime: "10:00", EndTime: "12:00", MaxBookings: 1},
		},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		schedule,
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Рабочие часы 09:00-18:00 игнорируются: слоты только из окна
	assert.Equal(t, []string{"10:00", "11:00"}, slotStarts(resp.Slots))
}

func TestExecute_LateWindowStopsAtMidnight(t *testing.T) {
	schedule := &fakeScheduleRepo{
		windowCount: 1,
		windows: []domain.AvailabilityWindow{
			{ServiceID: 10, DayOfWeek: domain.Monday, StartTime: "23:00", EndTime: "23:45", MaxBookings: 1},
		},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		schedule,
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(30)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Кандидат 23:30 не помещается в сутки и просто отбрасывается
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "23:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "23:30", resp.Slots[0].EndTime.String())
}

func TestExecute_WindowCapacityAllowsMultipleBookings(t *testing.T) {
	schedule := &fakeScheduleRepo{
		windowCount: 1,
		windows: []domain.AvailabilityWindow{
			{ServiceID: 10, DayOfWeek: domain.Monday, StartTime: "10:00", EndTime: "11:00", MaxBookings: 2},
		},
	}

	t.Run("one booking of two leaves the slot available", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeBookingRepo{bookings: []*domain.Booking{activeBooking("10:00")}},
			schedule,
			&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
		)

		resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, slotStarts(resp.Slots))
	})

	t.Run("full capacity hides the slot", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeBookingRepo{bookings: []*domain.Booking{activeBooking("10:00"), activeBooking("10:00")}},
			schedule,
			&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
		)

		resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_ServiceClosedOnDayWithWindows(t *testing.T) {
	// Окна есть, но только на вторник: в понедельник услуга закрыта
	schedule := &fakeScheduleRepo{
		windowCount: 1,
		windows: []domain.AvailabilityWindow{
			{ServiceID: 10, DayOfWeek: domain.Tuesday, StartTime: "10:00", EndTime: "12:00", MaxBookings: 1},
		},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		schedule,
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmptySlots(t *testing.T) {
	business := openBusiness("09:00", "18:00")
	business.Hours[domain.Monday] = domain.DayHours{IsOpen: false}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: business, service: testService(60)},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingWorkingHoursIsAnError(t *testing.T) {
	business := openBusiness("09:00", "18:00")
	delete(business.Hours, domain.Monday)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: business, service: testService(60)},
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrWorkingHoursNotSet)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: testService(60)},
	)
	uc.timeProvider = fixedTime{now: testDate.AddDate(0, 0, 5)}

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InactiveBusinessAndService(t *testing.T) {
	t.Run("inactive business", func(t *testing.T) {
		business := openBusiness("09:00", "18:00")
		business.Active = false

		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{},
			&fakeCatalogRepo{business: business, service: testService(60)})

		_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
		assert.ErrorIs(t, err, ErrBusinessInactive)
	})

	t.Run("inactive service", func(t *testing.T) {
		service := testService(60)
		service.Active = false

		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{},
			&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: service})

		_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
		assert.ErrorIs(t, err, ErrServiceInactive)
	})

	t.Run("service of another business", func(t *testing.T) {
		service := testService(60)
		service.BusinessID = 99

		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{},
			&fakeCatalogRepo{business: openBusiness("09:00", "18:00"), service: service})

		_, err := uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 10, Date: testDate})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
