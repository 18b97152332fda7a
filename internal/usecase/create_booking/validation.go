package create_booking

import (
	"fmt"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// slotStarts перечисляет допустимые времена начала слотов в диапазоне
// [open, close]: от open с шагом step, пока конец слота не выходит за close
func slotStarts(open, close types.TimeString, durationMinutes, step int) ([]types.TimeString, error) {
	starts := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота вышел за пределы суток: кандидатов больше нет
			break
		}
		if end.IsAfter(close) {
			break
		}

		starts = append(starts, current)

		current, err = current.AddMinutes(step)
		if err != nil {
			break
		}
	}

	return starts, nil
}

// matchSlotStart проверяет, что requested совпадает с одним из допустимых
// времён начала, и возвращает вместимость этого слота
func matchSlotStart(requested types.TimeString, starts []types.TimeString, capacity int) (int, bool) {
	for _, start := range starts {
		if start == requested {
			return capacity, true
		}
	}
	return 0, false
}

// activeCapacity возвращает вместимость окна, не меньше единицы
func activeCapacity(window domain.AvailabilityWindow) int {
	if window.MaxBookings < 1 {
		return 1
	}
	return window.MaxBookings
}
