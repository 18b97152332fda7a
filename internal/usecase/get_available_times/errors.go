package get_available_times

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_available_times: business not found")

	// ErrBusinessInactive возвращается, когда бизнес деактивирован
	ErrBusinessInactive = errors.New("get_available_times: business is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена у этого бизнеса
	ErrServiceNotFound = errors.New("get_available_times: service not found")

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = errors.New("get_available_times: service is inactive")

	// ErrInvalidDate возвращается для дат в прошлом
	ErrInvalidDate = errors.New("get_available_times: invalid booking date")

	// ErrWorkingHoursNotSet возвращается, когда у бизнеса нет записи рабочих
	// часов на запрошенный день. Отличается от выходного дня: выходной — это
	// валидный результат с пустым списком слотов, отсутствие настройки — ошибка.
	ErrWorkingHoursNotSet = errors.New("get_available_times: working hours not set for this day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
