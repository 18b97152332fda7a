package batch_update_schedule

import (
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorBusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, serviceID := range req.ServiceIDs {
		if serviceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[serviceID]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, serviceID)
		}
		seen[serviceID] = struct{}{}
	}

	// Пустой шаблон валиден: услуги закрываются на всю неделю
	for i, entry := range req.Schedules {
		if err := validateEntry(entry); err != nil {
			return fmt.Errorf("%w: schedule %d: %v", ErrInvalidInput, i, err)
		}
	}

	return nil
}

// validateEntry проверяет одно окно шаблона
func validateEntry(entry ScheduleEntry) error {
	if !domain.Weekday(entry.Day).IsValid() {
		return fmt.Errorf("day must be between 0 (Monday) and 6 (Sunday), got %d", entry.Day)
	}

	start, err := types.NewTimeStringFromString(entry.Start)
	if err != nil {
		return fmt.Errorf("invalid start time: %v", err)
	}

	end, err := types.NewTimeStringFromString(entry.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %v", err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("start time %s must be before end time %s", start, end)
	}

	if entry.MaxBookings < domain.MinWindowMaxBookings || entry.MaxBookings > domain.MaxWindowMaxBookings {
		return fmt.Errorf("maxBookings must be between %d and %d, got %d",
			domain.MinWindowMaxBookings, domain.MaxWindowMaxBookings, entry.MaxBookings)
	}

	return nil
}

// toWindows конвертирует шаблон в доменные окна для одной услуги
func toWindows(serviceID int64, entries []ScheduleEntry) []domain.AvailabilityWindow {
	windows := make([]domain.AvailabilityWindow, len(entries))
	for i, entry := range entries {
		windows[i] = domain.AvailabilityWindow{
			ServiceID:   serviceID,
			DayOfWeek:   domain.Weekday(entry.Day),
			StartTime:   types.TimeString(entry.Start),
			EndTime:     types.TimeString(entry.End),
			MaxBookings: entry.MaxBookings,
		}
	}
	return windows
}
