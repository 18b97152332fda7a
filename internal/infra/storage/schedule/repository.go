package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/dbmetrics"
	"github.com/dtroshin/CWM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами доступности услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceWindows заменяет ВСЕ окна доступности услуги на переданный набор.
// Удаление не ограничено затронутыми днями: замена для услуги всегда
// очищает окна всей недели и вставляет набор заново.
//
// Метод не открывает собственную транзакцию: границы commit/rollback
// контролирует вызывающий код (batch updater), передавая транзакцию
// через контекст.
func (r *Repository) ReplaceWindows(ctx context.Context, serviceID int64, windows []domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWindows - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWindows - execute delete: %v", ErrExecQuery, err)
	}

	// Пустой набор валиден: услуга закрыта всю неделю
	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns("service_id", "day_of_week", "start_time", "end_time", "max_bookings")

	for _, window := range windows {
		insertBuilder = insertBuilder.Values(
			serviceID,
			int(window.DayOfWeek),
			window.StartTime,
			window.EndTime,
			window.MaxBookings,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWindows - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWindows - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListWindows получает все окна доступности услуги,
// отсортированные по дню недели и времени начала
func (r *Repository) ListWindows(ctx context.Context, serviceID int64) ([]domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"day_of_week",
		"start_time",
		"end_time",
		"max_bookings",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.AvailabilityWindow, 0)
	for rows.Next() {
		var window domain.AvailabilityWindow
		var day int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.ServiceID,
			&day,
			&window.StartTime,
			&window.EndTime,
			&window.MaxBookings,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWindows - scan row: %v", ErrScanRow, err)
		}

		window.DayOfWeek = domain.Weekday(day)
		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ListWindowsForDay получает окна доступности услуги на конкретный день недели
func (r *Repository) ListWindowsForDay(ctx context.Context, serviceID int64, day domain.Weekday) ([]domain.AvailabilityWindow, error) {
	windows, err := r.ListWindows(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	dayWindows := make([]domain.AvailabilityWindow, 0)
	for _, window := range windows {
		if window.DayOfWeek == day {
			dayWindows = append(dayWindows, window)
		}
	}

	return dayWindows, nil
}

// CountWindows возвращает количество окон доступности услуги за всю неделю.
// Используется чтобы отличить "окна не настроены" от "настроен пустой набор".
func (r *Repository) CountWindows(ctx context.Context, serviceID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("availability_windows").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWindows - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountWindows - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
