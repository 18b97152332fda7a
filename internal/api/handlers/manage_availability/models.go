package manage_availability

import (
	"fmt"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/internal/service/availability/models"
	"github.com/dtroshin/CWM-BookingService/pkg/types"
)

// ScheduleEntryRequest одно окно расписания в HTTP запросе
type ScheduleEntryRequest struct {
	Day         int    `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxBookings int    `json:"max_bookings"`
}

// SetScheduleRequest HTTP request model для action=set
type SetScheduleRequest struct {
	ServiceID int64                  `json:"service_id"`
	Schedules []ScheduleEntryRequest `json:"schedules"`
}

// ScheduleResponse HTTP response model с расписанием услуги
type ScheduleResponse struct {
	Success   bool                    `json:"success"`
	ServiceID int64                   `json:"service_id"`
	Schedules []models.WindowResponse `json:"schedules"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetScheduleRequest) ToServiceRequest(actorBusinessID int64) (*models.SetAvailabilityRequest, error) {
	windows := make([]models.WindowEntry, 0, len(r.Schedules))
	for i, entry := range r.Schedules {
		start, err := types.NewTimeStringFromString(entry.StartTime)
		if err != nil {
			return nil, fmt.Errorf("schedules[%d]: invalid start_time: %w", i, err)
		}
		end, err := types.NewTimeStringFromString(entry.EndTime)
		if err != nil {
			return nil, fmt.Errorf("schedules[%d]: invalid end_time: %w", i, err)
		}

		windows = append(windows, models.WindowEntry{
			Day:         domain.Weekday(entry.Day),
			StartTime:   start,
			EndTime:     end,
			MaxBookings: entry.MaxBookings,
		})
	}

	return &models.SetAvailabilityRequest{
		ActorBusinessID: actorBusinessID,
		ServiceID:       r.ServiceID,
		Windows:         windows,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AvailabilityResponse) *ScheduleResponse {
	return &ScheduleResponse{
		Success:   true,
		ServiceID: resp.ServiceID,
		Schedules: resp.Windows,
	}
}
