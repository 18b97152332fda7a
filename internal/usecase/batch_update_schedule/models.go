package batch_update_schedule

// ScheduleEntry одно окно недельного шаблона расписания
type ScheduleEntry struct {
	Day         int    // День недели: 0 = понедельник, 6 = воскресенье
	Start       string // Время начала "HH:MM"
	End         string // Время окончания "HH:MM"
	MaxBookings int    // Вместимость слота
}

// Request модель запроса пакетного обновления расписаний.
// Один недельный шаблон применяется к каждой услуге из списка.
type Request struct {
	ActorBusinessID int64           // Бизнес, от имени которого выполняется операция
	ServiceIDs      []int64         // Услуги, чьи расписания заменяются
	Schedules       []ScheduleEntry // Недельный шаблон
}

// Response модель ответа пакетного обновления
type Response struct {
	ServicesUpdated   int // Количество услуг с заменённым расписанием
	WindowsPerService int // Количество окон, вставленных для каждой услуги
}
