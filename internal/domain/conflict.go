package domain

// WindowConflict пара пересекающихся окон доступности одной услуги
// в один день недели. Возвращается клиенту целиком, чтобы UI мог
// показать, какие именно диапазоны конфликтуют.
type WindowConflict struct {
	DayOfWeek Weekday
	First     WindowRange
	Second    WindowRange
}

// WindowRange временной диапазон окна в составе конфликта
type WindowRange struct {
	StartTime string
	EndTime   string
}

// FindWindowConflicts ищет попарные пересечения в предложенном наборе
// окон одной услуги. Проверяется только сам набор: пакетное обновление
// безусловно заменяет сохранённые окна, поэтому сравнение с уже
// существующими не имеет смысла.
//
// Пустой набор окон валиден (услуга закрыта всю неделю). Два одинаковых
// окна на один день конфликтуют: равные диапазоны пересекаются.
func FindWindowConflicts(windows []AvailabilityWindow) []WindowConflict {
	conflicts := make([]WindowConflict, 0)

	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if !windows[i].Overlaps(windows[j]) {
				continue
			}
			conflicts = append(conflicts, WindowConflict{
				DayOfWeek: windows[i].DayOfWeek,
				First: WindowRange{
					StartTime: windows[i].StartTime.String(),
					EndTime:   windows[i].EndTime.String(),
				},
				Second: WindowRange{
					StartTime: windows[j].StartTime.String(),
					EndTime:   windows[j].EndTime.String(),
				},
			})
		}
	}

	return conflicts
}
