package domain

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"

	// StatusRejected хранится в исторических данных и не занимает слот,
	// но в таблице переходов рёбер в него нет
	StatusRejected BookingStatus = "rejected"
)

// allowedTransitions таблица допустимых переходов статусов.
// completed и cancelled терминальные: исходящих рёбер нет.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if the status has no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo returns true if the transition s -> target is a permitted edge
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Booking represents a service booking in the system
type Booking struct {
	ID              int64
	UserID          int64
	BusinessID      int64
	ServiceID       int64
	BookingDate     time.Time
	BookingTime     types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ServiceName string
	PaymentRef  *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRejected
}

// CanTransitionTo returns true if the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	return b.Status.CanTransitionTo(target)
}

// BusinessBookingsFilter фильтр для получения бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID      int64             // Обязательный параметр
	ServiceID       *int64            // Фильтр по услуге (опционально)
	Date            *time.Time        // Фильтр по дате (опционально)
	Time            *types.TimeString // Фильтр по точному времени начала (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отменённые и отклонённые
}
