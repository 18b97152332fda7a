package get_available_times

import (
	"context"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByBusinessWithFilter получает бронирования бизнеса на конкретную дату
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория окон доступности
type ScheduleRepository interface {
	CountWindows(ctx context.Context, serviceID int64) (int, error)
	ListWindowsForDay(ctx context.Context, serviceID int64, day domain.Weekday) ([]domain.AvailabilityWindow, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
