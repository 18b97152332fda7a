package domain

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// Weekday день недели в соглашении источника данных: 0 = понедельник, 6 = воскресенье
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayFromTime конвертирует time.Weekday (0 = воскресенье) в
// принятое здесь соглашение (0 = понедельник)
func WeekdayFromTime(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// IsValid returns true if the weekday is within 0..6
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the English weekday name
func (d Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if !d.IsValid() {
		return "unknown"
	}
	return names[d]
}

// AvailabilityWindow represents recurring weekly capacity for one service on one day
type AvailabilityWindow struct {
	ID          int64
	ServiceID   int64
	DayOfWeek   Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxBookings int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps returns true if the two windows are on the same day and their
// [start, end) ranges intersect. Touching boundaries do not overlap.
func (w AvailabilityWindow) Overlaps(other AvailabilityWindow) bool {
	if w.DayOfWeek != other.DayOfWeek {
		return false
	}
	return w.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(w.EndTime)
}

// Slot represents a concrete bookable time range derived for one calendar date
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}
