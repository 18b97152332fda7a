package get_available_times

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	getAvailableTimes "github.com/dtroshin/CWM-BookingService/internal/usecase/get_available_times"
)

// AvailableTimesRequest HTTP request model
type AvailableTimesRequest struct {
	BusinessID int64  `json:"business_id"`
	ServiceID  int64  `json:"service_id"`
	Date       string `json:"date"` // "2026-03-15"
}

// TimeSlot один доступный слот в ответе
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration"`
}

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Success bool       `json:"success"`
	Times   []TimeSlot `json:"times"`
	Date    string     `json:"date"`
	Day     string     `json:"day"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailableTimesRequest) ToUseCaseRequest() (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]TimeSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		times = append(times, TimeSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Duration:  slot.DurationMinutes,
		})
	}

	return &AvailableTimesResponse{
		Success: true,
		Times:   times,
		Date:    resp.Date.Format(domain.DateFormat),
		Day:     resp.Day.String(),
	}
}
