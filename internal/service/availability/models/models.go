package models

import (
	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// Request модели

// WindowEntry одно окно доступности в запросе на установку расписания
type WindowEntry struct {
	Day         domain.Weekday   `json:"day"`
	StartTime   types.TimeString `json:"start_time"`
	EndTime     types.TimeString `json:"end_time"`
	MaxBookings int              `json:"max_bookings"`
}

// SetAvailabilityRequest запрос на замену расписания одной услуги
type SetAvailabilityRequest struct {
	ActorBusinessID int64         `json:"-"`
	ServiceID       int64         `json:"service_id"`
	Windows         []WindowEntry `json:"windows"`
}

// GetAvailabilityRequest запрос на чтение расписания одной услуги
type GetAvailabilityRequest struct {
	ActorBusinessID int64 `json:"-"`
	ServiceID       int64 `json:"service_id"`
}

// Response модели

// WindowResponse одно сохранённое окно доступности
type WindowResponse struct {
	ID          int64  `json:"id"`
	Day         int    `json:"day"`
	DayName     string `json:"day_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxBookings int    `json:"max_bookings"`
}

// AvailabilityResponse расписание услуги целиком
type AvailabilityResponse struct {
	ServiceID int64            `json:"service_id"`
	Windows   []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindows конвертирует окна доступности в DTO
func FromDomainWindows(serviceID int64, windows []domain.AvailabilityWindow) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ServiceID: serviceID,
		Windows:   make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		resp.Windows = append(resp.Windows, WindowResponse{
			ID:          w.ID,
			Day:         int(w.DayOfWeek),
			DayName:     w.DayOfWeek.String(),
			StartTime:   w.StartTime.String(),
			EndTime:     w.EndTime.String(),
			MaxBookings: w.MaxBookings,
		})
	}

	return resp
}

// ToDomainWindows конвертирует запрос в domain модели окон
func (r *SetAvailabilityRequest) ToDomainWindows() []domain.AvailabilityWindow {
	windows := make([]domain.AvailabilityWindow, 0, len(r.Windows))
	for _, entry := range r.Windows {
		windows = append(windows, domain.AvailabilityWindow{
			ServiceID:   r.ServiceID,
			DayOfWeek:   entry.Day,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			MaxBookings: entry.MaxBookings,
		})
	}
	return windows
}
