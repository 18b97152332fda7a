package create_booking

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // Пользователь, создающий бронирование
	BusinessID int64            // ID бизнеса
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота ("10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	BusinessID      int64
	ServiceID       int64
	BookingDate     time.Time
	BookingTime     types.TimeString
	DurationMinutes int
	Status          domain.BookingStatus
	ServiceName     string
	PaymentRef      *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
