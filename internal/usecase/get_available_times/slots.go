package get_available_times

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// buildRangeSlots генерирует кандидатов слотов внутри диапазона [open, close].
// Кандидаты идут от open с шагом step; последний слот тот, чей конец
// (start + duration) ещё не выходит за close.
func buildRangeSlots(open, close types.TimeString, durationMinutes, step int) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)
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

		slots = append(slots, domain.Slot{
			StartTime:       current,
			EndTime:         end,
			DurationMinutes: durationMinutes,
		})

		current, err = current.AddMinutes(step)
		if err != nil {
			// Шаг вышел за пределы суток: кандидатов больше нет
			break
		}
	}

	return slots, nil
}

// countExactStartMatches подсчитывает активные бронирования, начинающиеся
// ровно в указанное время.
//
// Занятость определяется только точным совпадением времени начала:
// бронирование другой длительности, частично перекрывающее слот, его
// не блокирует. Это воспроизводимое поведение источника данных.
func countExactStartMatches(start types.TimeString, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.BookingTime == start {
			count++
		}
	}
	return count
}

// slotCandidate кандидат слота вместе с вместимостью породившего его окна
type slotCandidate struct {
	domain.Slot
	Capacity int
}

// toCandidates присваивает слотам вместимость
func toCandidates(slots []domain.Slot, capacity int) []slotCandidate {
	candidates := make([]slotCandidate, len(slots))
	for i, slot := range slots {
		candidates[i] = slotCandidate{Slot: slot, Capacity: capacity}
	}
	return candidates
}

// filterAvailable оставляет слоты, у которых число занятых мест меньше вместимости
func filterAvailable(candidates []slotCandidate, bookings []*domain.Booking) []domain.Slot {
	available := make([]domain.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if countExactStartMatches(candidate.StartTime, bookings) < candidate.Capacity {
			available = append(available, candidate.Slot)
		}
	}
	return available
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
