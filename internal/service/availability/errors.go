package availability

import (
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("availability: service not found")

	// ErrAccessDenied возвращается, когда услуга не принадлежит бизнесу
	ErrAccessDenied = errors.New("availability: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

// ConflictError возвращается, когда окна расписания пересекаются между
// собой. Несёт список конфликтов для тела ответа.
type ConflictError struct {
	Conflicts []domain.WindowConflict
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("availability: schedule has %d conflicting window pair(s)", len(e.Conflicts))
}
