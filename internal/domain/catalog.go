package domain

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// Business represents a car-wash business in the marketplace
type Business struct {
	ID     int64
	Name   string
	Active bool

	// Hours рабочие часы по дням недели; отсутствие дня в карте означает,
	// что часы для него не настроены (это не то же самое, что выходной)
	Hours map[Weekday]DayHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayHours рабочие часы бизнеса на один день недели
type DayHours struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// HoursFor возвращает часы на день; второй результат false, если часы
// для этого дня не настроены
func (b *Business) HoursFor(day Weekday) (DayHours, bool) {
	hours, ok := b.Hours[day]
	return hours, ok
}

// Service represents a bookable car-wash service
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotStep возвращает шаг генерации слотов для услуги:
// длительность услуги, но не чаще MinSlotStepMinutes
func (s *Service) SlotStep() int {
	if s.DurationMinutes > MinSlotStepMinutes {
		return s.DurationMinutes
	}
	return MinSlotStepMinutes
}
