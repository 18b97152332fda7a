package create_booking

import (
	"context"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/internal/integrations/payservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountActiveAt(ctx context.Context, businessID int64, date time.Time, startTime string) (int, error)
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

// PayServiceClient интерфейс клиента платёжного сервиса
type PayServiceClient interface {
	Charge(ctx context.Context, req *payservice.ChargeRequest) (*payservice.ChargeResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
