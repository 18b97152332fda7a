package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrBusinessInactive возвращается, когда бизнес деактивирован
	ErrBusinessInactive = errors.New("create_booking: business is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена у этого бизнеса
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = errors.New("create_booking: service is inactive")

	// ErrInvalidDate возвращается для дат в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не совпадает
	// ни с одним генерируемым слотом на эту дату
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrWorkingHoursNotSet возвращается, когда у бизнеса нет записи
	// рабочих часов на запрошенный день
	ErrWorkingHoursNotSet = errors.New("create_booking: working hours not set for this day")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPaymentDeclined возвращается, когда платёжный сервис отклонил оплату
	ErrPaymentDeclined = errors.New("create_booking: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
