package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
)

// UseCase use case получения доступных времён для услуги на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времён.
//
// Источник границ дня выбирается так: если у услуги настроены окна
// доступности, они и только они определяют, когда услуга бронируема
// (окон на запрошенный день нет — услуга в этот день закрыта). Рабочие
// часы бизнеса используются как fallback только для услуг вообще без
// окон; отсутствие записи рабочих часов на день в этом режиме — ошибка
// конфигурации, а явный выходной — валидный пустой результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableTimes: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бизнес
	business, err := uc.catalogRepo.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableTimes: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		uc.logger.Warn("GetAvailableTimes: business id=%d is inactive", req.BusinessID)
		return nil, ErrBusinessInactive
	}

	// 4. Получаем услугу и проверяем принадлежность бизнесу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != req.BusinessID {
		uc.logger.Warn("GetAvailableTimes: service id=%d does not belong to business id=%d",
			req.ServiceID, req.BusinessID)
		return nil, ErrServiceNotFound
	}
	if !service.Active {
		uc.logger.Warn("GetAvailableTimes: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	day := domain.WeekdayFromTime(req.Date)
	step := service.SlotStep()

	// 5. Генерируем кандидатов слотов
	candidates, err := uc.buildCandidates(ctx, business, service, day, step)
	if err != nil {
		return nil, err
	}

	// Услуга в этот день закрыта: валидный результат без слотов
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableTimes: no slots for business=%d, service=%d on %s (%s)",
			req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), day)
		return &Response{
			Date:       req.Date,
			Day:        day,
			BusinessID: req.BusinessID,
			ServiceID:  req.ServiceID,
			Slots:      []domain.Slot{},
		}, nil
	}

	// 6. Получаем активные бронирования бизнеса на эту дату
	filter := domain.BusinessBookingsFilter{
		BusinessID:      req.BusinessID,
		Date:            &req.Date,
		IncludeInactive: false, // Отменённые и отклонённые слот не занимают
	}

	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Отбрасываем занятые слоты по точному совпадению времени начала
	slots := filterAvailable(candidates, bookings)

	uc.logger.Info("GetAvailableTimes: %d of %d slots available for business=%d, service=%d, date=%s",
		len(slots), len(candidates), req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		Day:        day,
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Slots:      slots,
	}, nil
}

// buildCandidates строит кандидатов слотов на день вместе с вместимостью
// каждого. Пустой список кандидатов означает, что услуга в этот день закрыта.
func (uc *UseCase) buildCandidates(
	ctx context.Context,
	business *domain.Business,
	service *domain.Service,
	day domain.Weekday,
	step int,
) ([]slotCandidate, error) {
	windowCount, err := uc.scheduleRepo.CountWindows(ctx, service.ID)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to count windows for service id=%d: %v", service.ID, err)
		return nil, fmt.Errorf("%w: failed to count windows: %v", ErrInternal, err)
	}

	// Окна доступности услуги имеют приоритет над рабочими часами бизнеса
	if windowCount > 0 {
		windows, err := uc.scheduleRepo.ListWindowsForDay(ctx, service.ID, day)
		if err != nil {
			uc.logger.Error("GetAvailableTimes: failed to list windows for service id=%d: %v", service.ID, err)
			return nil, fmt.Errorf("%w: failed to list windows: %v", ErrInternal, err)
		}

		candidates := make([]slotCandidate, 0)
		for _, window := range windows {
			rangeSlots, err := buildRangeSlots(window.StartTime, window.EndTime, service.DurationMinutes, step)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
			}
			candidates = append(candidates, toCandidates(rangeSlots, window.MaxBookings)...)
		}
		return candidates, nil
	}

	// Fallback: рабочие часы бизнеса, вместимость один слот
	hours, configured := business.HoursFor(day)
	if !configured {
		uc.logger.Warn("GetAvailableTimes: working hours not set for business id=%d on %s", business.ID, day)
		return nil, ErrWorkingHoursNotSet
	}
	if !hours.IsOpen {
		return []slotCandidate{}, nil
	}

	slots, err := buildRangeSlots(hours.OpenTime, hours.CloseTime, service.DurationMinutes, step)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}
	return toCandidates(slots, 1), nil
}
