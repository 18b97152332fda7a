package domain

// Default values and validation bounds
const (
	// MinSlotStepMinutes минимальный шаг между началами слотов:
	// для коротких услуг слоты всё равно идут не чаще, чем раз в 30 минут
	MinSlotStepMinutes = 30

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов

	MinWindowMaxBookings = 1
	MaxWindowMaxBookings = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие слот.
// Используются при подсчёте занятости: отменённые и отклонённые
// бронирования слот не блокируют.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}

// ActiveStatuses статусы бронирований, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
