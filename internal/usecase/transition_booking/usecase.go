package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	bookingRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/booking"
	"github.com/dtroshin/CWM-BookingService/internal/integrations/notifyservice"
)

// notifyTimeout время на доставку уведомления после завершения бронирования
const notifyTimeout = 5 * time.Second

// UseCase use case смены статуса бронирования по таблице переходов
type UseCase struct {
	bookingRepo  BookingRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет смену статуса бронирования.
// Проверка владения, проверка перехода и запись выполняются в одной
// транзакции; недопустимый переход не меняет ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d, requested=%s, business=%d",
		req.BookingID, req.RequestedStatus, req.ActorBusinessID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.ActorBusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	// 2. Запрошенный статус должен быть известен
	requested := domain.BookingStatus(req.RequestedStatus)
	if !requested.IsValid() {
		uc.logger.Warn("TransitionBooking: unknown status %q for booking id=%d",
			req.RequestedStatus, req.BookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.RequestedStatus)
	}

	var result *Response
	var transitioned *domain.Booking

	// 3. Проверка и запись в одной транзакции: строка бронирования
	// блокируется до commit, конкурентные переходы сериализуются
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Проверка владения: статус меняет только бизнес-владелец
		if booking.BusinessID != req.ActorBusinessID {
			uc.logger.Warn("TransitionBooking: booking id=%d belongs to business id=%d, not %d",
				req.BookingID, booking.BusinessID, req.ActorBusinessID)
			return ErrAccessDenied
		}

		// Переход должен быть ребром таблицы переходов
		if !booking.CanTransitionTo(requested) {
			uc.logger.Warn("TransitionBooking: transition %s -> %s not allowed for booking id=%d",
				booking.Status, requested, req.BookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, requested)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, requested); err != nil {
			uc.logger.Error("TransitionBooking: failed to update status for booking id=%d: %v",
				req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:      booking.ID,
			PreviousStatus: booking.Status,
			Status:         requested,
		}
		transitioned = booking

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Уведомление отправляется только после commit
	if result.Status == domain.StatusCompleted {
		uc.notifyReviewRequest(transitioned)
	}

	uc.logger.Info("TransitionBooking: booking id=%d moved %s -> %s",
		result.BookingID, result.PreviousStatus, result.Status)

	return result, nil
}

// notifyReviewRequest запускает fire-and-forget отправку приглашения
// оставить отзыв. Ошибка доставки логируется и никогда не влияет на
// результат перехода.
func (uc *UseCase) notifyReviewRequest(booking *domain.Booking) {
	req := &notifyservice.ReviewRequest{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		BusinessID: booking.BusinessID,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifyClient.SendReviewRequest(ctx, req); err != nil {
			uc.logger.Warn("TransitionBooking: review request for booking id=%d failed: %v",
				booking.ID, err)
		}
	}()
}
