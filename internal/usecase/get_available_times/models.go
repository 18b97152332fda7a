package get_available_times

import (
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

// Request модель запроса на получение доступных времён
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time      // Дата, на которую запрашивались слоты
	Day        domain.Weekday // День недели этой даты
	BusinessID int64          // ID бизнеса
	ServiceID  int64          // ID услуги
	Slots      []domain.Slot  // Доступные слоты в хронологическом порядке
}
