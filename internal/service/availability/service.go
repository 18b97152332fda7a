package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
	"github.com/dtroshin/CWM-BookingService/internal/service/availability/models"
)

// Service сервис для управления расписанием одной услуги
type Service struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Set заменяет расписание услуги на предложенный набор окон.
// Доступно только бизнесу-владельцу услуги. Пустой набор валиден и
// означает, что услуга закрыта всю неделю.
func (s *Service) Set(ctx context.Context, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Set: replacing schedule for service=%d by business=%d, %d window(s)",
		req.ServiceID, req.ActorBusinessID, len(req.Windows))

	// 1. Валидируем входные данные
	if err := s.validateSetRequest(req); err != nil {
		s.logger.Warn("Set: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги и права доступа
	if err := s.checkOwnership(ctx, req.ServiceID, req.ActorBusinessID); err != nil {
		return nil, err
	}

	// 3. Ищем пересечения внутри предложенного набора
	windows := req.ToDomainWindows()
	if conflicts := domain.FindWindowConflicts(windows); len(conflicts) > 0 {
		s.logger.Warn("Set: schedule for service=%d has %d conflict(s)", req.ServiceID, len(conflicts))
		return nil, &ConflictError{Conflicts: conflicts}
	}

	// 4. Заменяем расписание атомарно
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.ReplaceWindows(txCtx, req.ServiceID, windows); err != nil {
			return fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Set: failed to replace windows for service=%d: %v", req.ServiceID, err)
		return nil, err
	}

	// 5. Возвращаем сохранённое расписание
	saved, err := s.scheduleRepo.ListWindows(ctx, req.ServiceID)
	if err != nil {
		s.logger.Error("Set: failed to list windows for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: successfully replaced schedule for service=%d, %d window(s) saved",
		req.ServiceID, len(saved))
	return models.FromDomainWindows(req.ServiceID, saved), nil
}

// Get возвращает сохранённое расписание услуги.
// Доступно только бизнесу-владельцу услуги.
func (s *Service) Get(ctx context.Context, req *models.GetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching schedule for service=%d by business=%d", req.ServiceID, req.ActorBusinessID)

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.ActorBusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if err := s.checkOwnership(ctx, req.ServiceID, req.ActorBusinessID); err != nil {
		return nil, err
	}

	windows, err := s.scheduleRepo.ListWindows(ctx, req.ServiceID)
	if err != nil {
		s.logger.Error("Get: failed to list windows for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched %d window(s) for service=%d", len(windows), req.ServiceID)
	return models.FromDomainWindows(req.ServiceID, windows), nil
}

// Вспомогательные методы

// checkOwnership проверяет, что услуга существует и принадлежит бизнесу
func (s *Service) checkOwnership(ctx context.Context, serviceID, businessID int64) error {
	service, err := s.catalogRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("checkOwnership: service id=%d not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("checkOwnership: failed to get service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.BusinessID != businessID {
		s.logger.Warn("checkOwnership: service id=%d does not belong to business=%d", serviceID, businessID)
		return ErrAccessDenied
	}

	return nil
}

// validateSetRequest валидирует запрос на замену расписания
func (s *Service) validateSetRequest(req *models.SetAvailabilityRequest) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.ActorBusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	for i, entry := range req.Windows {
		if !entry.Day.IsValid() {
			return fmt.Errorf("%w: windows[%d]: day must be between 0 and 6", ErrInvalidInput, i)
		}
		if err := entry.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: windows[%d]: invalid start_time: %v", ErrInvalidInput, i, err)
		}
		if err := entry.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: windows[%d]: invalid end_time: %v", ErrInvalidInput, i, err)
		}
		if !entry.StartTime.IsBefore(entry.EndTime) {
			return fmt.Errorf("%w: windows[%d]: start_time must be before end_time", ErrInvalidInput, i)
		}
		if entry.MaxBookings < domain.MinWindowMaxBookings || entry.MaxBookings > domain.MaxWindowMaxBookings {
			return fmt.Errorf("%w: windows[%d]: max_bookings must be between %d and %d",
				ErrInvalidInput, i, domain.MinWindowMaxBookings, domain.MaxWindowMaxBookings)
		}
	}

	return nil
}
