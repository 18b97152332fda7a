package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому бизнесу
	ErrAccessDenied = errors.New("transition_booking: access denied")

	// ErrInvalidStatus возвращается, когда запрошенный статус не входит
	// в множество известных статусов
	ErrInvalidStatus = errors.New("transition_booking: invalid status")

	// ErrInvalidTransition возвращается, когда переход из текущего статуса
	// в запрошенный не является ребром таблицы переходов
	ErrInvalidTransition = errors.New("transition_booking: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
