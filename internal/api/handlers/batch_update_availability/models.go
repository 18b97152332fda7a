package batch_update_availability

import (
	"strconv"

	batchUpdate "github.com/dtroshin/CWM-BookingService/internal/usecase/batch_update_schedule"
)

// ScheduleEntryRequest одно окно недельного шаблона в HTTP запросе
type ScheduleEntryRequest struct {
	Day         int    `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxBookings int    `json:"max_bookings"`
}

// BatchUpdateRequest HTTP request model
type BatchUpdateRequest struct {
	ServiceIDs []int64                `json:"service_ids"`
	Schedules  []ScheduleEntryRequest `json:"schedules"`
}

// BatchUpdateResponse HTTP response model
type BatchUpdateResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	ServicesUpdated   int    `json:"services_updated"`
	WindowsPerService int    `json:"windows_per_service"`
}

// ConflictRange временной диапазон окна в теле конфликта
type ConflictRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ConflictEntry пара пересекающихся окон в теле конфликта
type ConflictEntry struct {
	Day     int           `json:"day"`
	DayName string        `json:"day_name"`
	First   ConflictRange `json:"first"`
	Second  ConflictRange `json:"second"`
}

// ConflictResponse тело ответа 409 с картой конфликтов по услугам.
// Type дискриминатор, по которому клиент отличает конфликт расписания
// от прочих ошибок.
type ConflictResponse struct {
	Success   bool                       `json:"success"`
	Type      string                     `json:"type"`
	Error     string                     `json:"error"`
	Conflicts map[string][]ConflictEntry `json:"conflicts"`
}

const conflictType = "schedule_conflict"

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BatchUpdateRequest) ToUseCaseRequest(actorBusinessID int64) *batchUpdate.Request {
	schedules := make([]batchUpdate.ScheduleEntry, 0, len(r.Schedules))
	for _, entry := range r.Schedules {
		schedules = append(schedules, batchUpdate.ScheduleEntry{
			Day:         entry.Day,
			Start:       entry.StartTime,
			End:         entry.EndTime,
			MaxBookings: entry.MaxBookings,
		})
	}

	return &batchUpdate.Request{
		ActorBusinessID: actorBusinessID,
		ServiceIDs:      r.ServiceIDs,
		Schedules:       schedules,
	}
}

// FromConflictError конвертирует карту конфликтов use case в HTTP ответ
func FromConflictError(err *batchUpdate.ConflictError) *ConflictResponse {
	resp := &ConflictResponse{
		Success:   false,
		Type:      conflictType,
		Error:     "schedule windows overlap",
		Conflicts: make(map[string][]ConflictEntry, len(err.Conflicts)),
	}

	for serviceID, conflicts := range err.Conflicts {
		entries := make([]ConflictEntry, 0, len(conflicts))
		for _, c := range conflicts {
			entries = append(entries, ConflictEntry{
				Day:     int(c.DayOfWeek),
				DayName: c.DayOfWeek.String(),
				First: ConflictRange{
					StartTime: c.First.StartTime,
					EndTime:   c.First.EndTime,
				},
				Second: ConflictRange{
					StartTime: c.Second.StartTime,
					EndTime:   c.Second.EndTime,
				},
			})
		}
		resp.Conflicts[strconv.FormatInt(serviceID, 10)] = entries
	}

	return resp
}
