package availability

import (
	"context"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория окон доступности
type ScheduleRepository interface {
	ReplaceWindows(ctx context.Context, serviceID int64, windows []domain.AvailabilityWindow) error
	ListWindows(ctx context.Context, serviceID int64) ([]domain.AvailabilityWindow, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
