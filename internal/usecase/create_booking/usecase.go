package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	bookingRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
	payClient "github.com/dtroshin/CWM-BookingService/internal/integrations/payservice"
	"github.com/dtroshin/CWM-BookingService/pkg/ptr"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	payClient    PayServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	payClient PayServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		payClient:    payClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в сериализуемой транзакции;
// уникальный индекс занятости слота страхует от гонки двух конкурентных
// запросов на одно и то же время.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, business=%d, service=%d, date=%s, time=%s",
		req.UserID, req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем бизнес
	business, err := uc.catalogRepo.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		return nil, ErrBusinessInactive
	}

	// 4. Получаем услугу и проверяем принадлежность бизнесу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID {
		return nil, ErrServiceNotFound
	}
	if !service.Active {
		return nil, ErrServiceInactive
	}

	// 5. Запрошенное время должно совпадать с одним из генерируемых слотов
	capacity, err := uc.resolveSlotCapacity(ctx, business, service, req)
	if err != nil {
		return nil, err
	}

	// 6. Списываем оплату до вставки: отклонённый платёж не должен
	// оставлять бронирований
	charge, err := uc.payClient.Charge(ctx, &payClient.ChargeRequest{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Reference: fmt.Sprintf("%d-%s-%s",
			req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime),
	})
	if err != nil {
		if errors.Is(err, payClient.ErrPaymentDeclined) {
			uc.logger.Warn("CreateBooking: payment declined for user id=%d", req.UserID)
			return nil, ErrPaymentDeclined
		}
		uc.logger.Error("CreateBooking: payment failed for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: payment failed: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := uc.bookingRepo.CountActiveAt(txCtx, req.BusinessID, req.Date, req.StartTime.String())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		if count >= capacity {
			uc.logger.Warn("CreateBooking: slot %s not available, %d/%d spots taken",
				req.StartTime, count, capacity)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			UserID:          req.UserID,
			BusinessID:      req.BusinessID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			BookingTime:     req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			PaymentRef:      ptr.Ptr(charge.TransactionID),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken by concurrent booking", req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		BusinessID:      result.BusinessID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		BookingTime:     result.BookingTime,
		DurationMinutes: result.DurationMinutes,
		Status:          result.Status,
		ServiceName:     result.ServiceName,
		PaymentRef:      result.PaymentRef,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveSlotCapacity проверяет, что запрошенное время входит в сетку
// слотов услуги на эту дату, и возвращает вместимость слота.
// Источник границ дня тот же, что у генератора слотов: окна доступности
// услуги имеют приоритет, рабочие часы бизнеса — fallback.
func (uc *UseCase) resolveSlotCapacity(
	ctx context.Context,
	business *domain.Business,
	service *domain.Service,
	req *Request,
) (int, error) {
	day := domain.WeekdayFromTime(req.Date)
	step := service.SlotStep()

	windowCount, err := uc.scheduleRepo.CountWindows(ctx, service.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to count windows for service id=%d: %v", service.ID, err)
		return 0, fmt.Errorf("%w: failed to count windows: %v", ErrInternal, err)
	}

	if windowCount > 0 {
		windows, err := uc.scheduleRepo.ListWindowsForDay(ctx, service.ID, day)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list windows for service id=%d: %v", service.ID, err)
			return 0, fmt.Errorf("%w: failed to list windows: %v", ErrInternal, err)
		}

		for _, window := range windows {
			starts, err := slotStarts(window.StartTime, window.EndTime, service.DurationMinutes, step)
			if err != nil {
				return 0, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
			}
			if capacity, ok := matchSlotStart(req.StartTime, starts, activeCapacity(window)); ok {
				return capacity, nil
			}
		}

		uc.logger.Warn("CreateBooking: time %s does not match any slot of service id=%d on %s",
			req.StartTime, service.ID, day)
		return 0, ErrInvalidTimeSlot
	}

	hours, configured := business.HoursFor(day)
	if !configured {
		uc.logger.Warn("CreateBooking: working hours not set for business id=%d on %s", business.ID, day)
		return 0, ErrWorkingHoursNotSet
	}
	if !hours.IsOpen {
		return 0, ErrInvalidTimeSlot
	}

	starts, err := slotStarts(hours.OpenTime, hours.CloseTime, service.DurationMinutes, step)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}
	if capacity, ok := matchSlotStart(req.StartTime, starts, 1); ok {
		return capacity, nil
	}

	return 0, ErrInvalidTimeSlot
}
