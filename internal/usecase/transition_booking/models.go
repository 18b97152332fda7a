package transition_booking

import "github.com/dtroshin/CWM-BookingService/internal/domain"

// Request модель запроса смены статуса бронирования
type Request struct {
	BookingID       int64  // ID бронирования
	RequestedStatus string // Запрошенный статус ("confirmed", "cancelled", ...)
	ActorBusinessID int64  // Бизнес, от имени которого выполняется операция
}

// Response модель ответа со сменённым статусом
type Response struct {
	BookingID      int64
	PreviousStatus domain.BookingStatus
	Status         domain.BookingStatus
}
