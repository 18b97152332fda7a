package batch_update_schedule

import (
	"errors"
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга из пакета не существует.
	// Один неизвестный ID отклоняет весь пакет.
	ErrServiceNotFound = errors.New("batch_update_schedule: service not found")

	// ErrAccessDenied возвращается, когда услуга из пакета принадлежит
	// другому бизнесу
	ErrAccessDenied = errors.New("batch_update_schedule: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("batch_update_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("batch_update_schedule: internal error")
)

// ConflictError несёт полную карту конфликтов по услугам.
// Возвращается вместо записи: при любом конфликте пакет целиком
// отклоняется, и клиент получает эту карту для отображения.
type ConflictError struct {
	Conflicts map[int64][]domain.WindowConflict
}

// Error реализует error
func (e *ConflictError) Error() string {
	total := 0
	for _, conflicts := range e.Conflicts {
		total += len(conflicts)
	}
	return fmt.Sprintf("batch_update_schedule: %d schedule conflicts in %d services", total, len(e.Conflicts))
}
