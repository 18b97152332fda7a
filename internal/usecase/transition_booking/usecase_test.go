package transition_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	bookingRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/booking"
	"github.com/dtroshin/CWM-BookingService/internal/integrations/notifyservice"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updateErr    error
	updatedID    int64
	updatedTo    domain.BookingStatus
	updateCalled bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *f.booking
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalled = true
	f.updatedID = id
	f.updatedTo = status
	return nil
}

type fakeNotifyClient struct {
	sent chan *notifyservice.ReviewRequest
	err  error
}

func newFakeNotifyClient() *fakeNotifyClient {
	return &fakeNotifyClient{sent: make(chan *notifyservice.ReviewRequest, 1)}
}

func (f *fakeNotifyClient) SendReviewRequest(_ context.Context, req *notifyservice.ReviewRequest) error {
	f.sent <- req
	return f.err
}

type fakeTxManager struct {
	calls int
	err   error
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Помощники

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              42,
		UserID:          7,
		BusinessID:      100,
		ServiceID:       5,
		BookingDate:     time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		BookingTime:     "14:00",
		DurationMinutes: 60,
		Status:          status,
		ServiceName:     "Комплексная мойка",
	}
}

func newTestUseCase(repo *fakeBookingRepo, notify *fakeNotifyClient) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	return NewUseCase(repo, notify, tx, nopLogger{}), tx
}

// Тесты

func TestExecute_ConfirmsPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	uc, tx := newTestUseCase(repo, newFakeNotifyClient())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, domain.StatusPending, resp.PreviousStatus)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, 1, tx.calls)
	assert.True(t, repo.updateCalled)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedTo)
}

func TestExecute_TransitionTable(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.BookingStatus
		requested string
		allowed   bool
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed", true},
		{"pending to cancelled", domain.StatusPending, "cancelled", true},
		{"pending to completed", domain.StatusPending, "completed", false},
		{"confirmed to completed", domain.StatusConfirmed, "completed", true},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled", true},
		{"confirmed to pending", domain.StatusConfirmed, "pending", false},
		{"completed is terminal", domain.StatusCompleted, "cancelled", false},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed", false},
		{"no edge into rejected", domain.StatusPending, "rejected", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(tt.from)}
			uc, _ := newTestUseCase(repo, newFakeNotifyClient())

			_, err := uc.Execute(context.Background(), &Request{
				BookingID:       42,
				RequestedStatus: tt.requested,
				ActorBusinessID: 100,
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.True(t, repo.updateCalled)
			} else {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.False(t, repo.updateCalled)
			}
		})
	}
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	uc, tx := newTestUseCase(repo, newFakeNotifyClient())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "approved",
		ActorBusinessID: 100,
	})

	require.ErrorIs(t, err, ErrInvalidStatus)
	// статус проверяется до открытия транзакции
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_ForeignBusinessDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	uc, _ := newTestUseCase(repo, newFakeNotifyClient())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 999,
	})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updateCalled)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo, newFakeNotifyClient())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 100,
	})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{}, newFakeNotifyClient())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       0,
		RequestedStatus: "confirmed",
		ActorBusinessID: 100,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 0,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UpdateFailureReturnsInternal(t *testing.T) {
	repo := &fakeBookingRepo{
		booking:   testBooking(domain.StatusPending),
		updateErr: errors.New("connection reset"),
	}
	uc, _ := newTestUseCase(repo, newFakeNotifyClient())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 100,
	})

	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CompletedSendsReviewRequest(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	notify := newFakeNotifyClient()
	uc, _ := newTestUseCase(repo, notify)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "completed",
		ActorBusinessID: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, resp.Status)

	select {
	case req := <-notify.sent:
		assert.Equal(t, int64(42), req.BookingID)
		assert.Equal(t, int64(7), req.UserID)
		assert.Equal(t, int64(100), req.BusinessID)
	case <-time.After(2 * time.Second):
		t.Fatal("review request was not sent")
	}
}

func TestExecute_ConfirmedDoesNotNotify(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	notify := newFakeNotifyClient()
	uc, _ := newTestUseCase(repo, notify)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:       42,
		RequestedStatus: "confirmed",
		ActorBusinessID: 100,
	})

	require.NoError(t, err)

	select {
	case <-notify.sent:
		t.Fatal("review request must only be sent for completed bookings")
	case <-time.After(50 * time.Millisecond):
	}
}
