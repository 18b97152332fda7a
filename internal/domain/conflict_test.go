package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

func window(day Weekday, start, end string) AvailabilityWindow {
	return AvailabilityWindow{
		DayOfWeek:   day,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		MaxBookings: 1,
	}
}

func TestAvailabilityWindow_Overlaps(t *testing.T) {
	t.Run("intersecting ranges overlap", func(t *testing.T) {
		a := window(Monday, "09:00", "12:00")
		b := window(Monday, "11:00", "14:00")

		assert.True(t, a.Overlaps(b))
	})

	t.Run("overlap is symmetric", func(t *testing.T) {
		a := window(Monday, "09:00", "12:00")
		b := window(Monday, "11:00", "14:00")

		assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	})

	t.Run("touching boundaries do not overlap", func(t *testing.T) {
		a := window(Monday, "09:00", "12:00")
		b := window(Monday, "12:00", "15:00")

		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("same range on different days does not overlap", func(t *testing.T) {
		a := window(Monday, "09:00", "12:00")
		b := window(Tuesday, "09:00", "12:00")

		assert.False(t, a.Overlaps(b))
	})

	t.Run("identical windows overlap", func(t *testing.T) {
		a := window(Friday, "10:00", "11:00")
		b := window(Friday, "10:00", "11:00")

		assert.True(t, a.Overlaps(b))
	})

	t.Run("contained range overlaps", func(t *testing.T) {
		outer := window(Wednesday, "08:00", "18:00")
		inner := window(Wednesday, "10:00", "11:00")

		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})
}

func TestFindWindowConflicts(t *testing.T) {
	t.Run("empty set has no conflicts", func(t *testing.T) {
		assert.Empty(t, FindWindowConflicts(nil))
		assert.Empty(t, FindWindowConflicts([]AvailabilityWindow{}))
	})

	t.Run("disjoint windows have no conflicts", func(t *testing.T) {
		windows := []AvailabilityWindow{
			window(Monday, "09:00", "12:00"),
			window(Monday, "12:00", "15:00"),
			window(Tuesday, "09:00", "12:00"),
		}

		assert.Empty(t, FindWindowConflicts(windows))
	})

	t.Run("reports the conflicting pair with both ranges", func(t *testing.T) {
		windows := []AvailabilityWindow{
			window(Monday, "09:00", "12:00"),
			window(Monday, "11:00", "14:00"),
		}

		conflicts := FindWindowConflicts(windows)
		require.Len(t, conflicts, 1)

		assert.Equal(t, Monday, conflicts[0].DayOfWeek)
		assert.Equal(t, "09:00", conflicts[0].First.StartTime)
		assert.Equal(t, "12:00", conflicts[0].First.EndTime)
		assert.Equal(t, "11:00", conflicts[0].Second.StartTime)
		assert.Equal(t, "14:00", conflicts[0].Second.EndTime)
	})

	t.Run("duplicate windows conflict", func(t *testing.T) {
		windows := []AvailabilityWindow{
			window(Thursday, "10:00", "11:00"),
			window(Thursday, "10:00", "11:00"),
		}

		require.Len(t, FindWindowConflicts(windows), 1)
	})

	t.Run("every intersecting pair is reported", func(t *testing.T) {
		windows := []AvailabilityWindow{
			window(Monday, "09:00", "13:00"),
			window(Monday, "10:00", "14:00"),
			window(Monday, "11:00", "15:00"),
		}

		assert.Len(t, FindWindowConflicts(windows), 3)
	})
}

func TestWeekdayFromTime(t *testing.T) {
	// 2026-03-16 понедельник, 2026-03-22 воскресенье
	monday := mustDate(t, "2026-03-16")
	sunday := mustDate(t, "2026-03-22")

	assert.Equal(t, Monday, WeekdayFromTime(monday))
	assert.Equal(t, Sunday, WeekdayFromTime(sunday))
	assert.Equal(t, Wednesday, WeekdayFromTime(monday.AddDate(0, 0, 2)))
}
