package batch_update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	catalogRepo "github.com/dtroshin/CWM-BookingService/internal/infra/storage/catalog"
)

// UseCase use case пакетного обновления расписаний: один недельный шаблон
// атомарно заменяет окна доступности каждой услуги из списка
type UseCase struct {
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет пакетное обновление расписаний.
// Контракт "всё или ничего" действует на каждом шаге: неизвестная услуга,
// чужая услуга или конфликт окон отклоняют весь пакет без единой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BatchUpdateSchedule: business=%d, services=%v, windows=%d",
		req.ActorBusinessID, req.ServiceIDs, len(req.Schedules))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BatchUpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка владения: каждая услуга пакета должна принадлежать
	// бизнесу инициатора
	for _, serviceID := range req.ServiceIDs {
		service, err := uc.catalogRepo.GetService(ctx, serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("BatchUpdateSchedule: service id=%d not found", serviceID)
				return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, serviceID)
			}
			uc.logger.Error("BatchUpdateSchedule: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.BusinessID != req.ActorBusinessID {
			uc.logger.Warn("BatchUpdateSchedule: service id=%d belongs to business id=%d, not %d",
				serviceID, service.BusinessID, req.ActorBusinessID)
			return nil, fmt.Errorf("%w: service %d", ErrAccessDenied, serviceID)
		}
	}

	// 3. Поиск конфликтов в предложенном шаблоне для каждой услуги.
	// Шаблон один на все услуги, но карта конфликтов строится по услугам:
	// клиент получает её в том же виде, в котором подавал пакет.
	conflictMap := make(map[int64][]domain.WindowConflict)
	for _, serviceID := range req.ServiceIDs {
		conflicts := domain.FindWindowConflicts(toWindows(serviceID, req.Schedules))
		if len(conflicts) > 0 {
			conflictMap[serviceID] = conflicts
		}
	}

	if len(conflictMap) > 0 {
		uc.logger.Warn("BatchUpdateSchedule: %d services have conflicting windows, aborting batch",
			len(conflictMap))
		return nil, &ConflictError{Conflicts: conflictMap}
	}

	// 4. Атомарная замена: одна транзакция на весь пакет,
	// commit только если замена удалась для каждой услуги
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, serviceID := range req.ServiceIDs {
			if err := uc.scheduleRepo.ReplaceWindows(txCtx, serviceID, toWindows(serviceID, req.Schedules)); err != nil {
				uc.logger.Error("BatchUpdateSchedule: failed to replace windows for service id=%d: %v",
					serviceID, err)
				return fmt.Errorf("%w: failed to replace windows for service %d: %v", ErrInternal, serviceID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BatchUpdateSchedule: replaced schedules for %d services (%d windows each)",
		len(req.ServiceIDs), len(req.Schedules))

	return &Response{
		ServicesUpdated:   len(req.ServiceIDs),
		WindowsPerService: len(req.Schedules),
	}, nil
}
