package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
	"github.com/dtroshin/CWM-BookingService/pkg/dbmetrics"
	"github.com/dtroshin/CWM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога: бизнесы, их рабочие часы и услуги.
// Каталог для ядра расписаний read-only: управление профилями бизнесов
// и услугами живёт вне этого сервиса.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusiness получает бизнес вместе с рабочими часами по дням недели
func (r *Repository) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusiness - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusiness - scan business: %v", ErrScanRow, err)
	}

	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	hours, err := r.getBusinessHours(ctx, id)
	if err != nil {
		return nil, err
	}
	business.Hours = hours

	return &business, nil
}

// getBusinessHours получает рабочие часы бизнеса.
// Дни без строки в таблице в карту не попадают: для них часы не настроены.
func (r *Repository) getBusinessHours(ctx context.Context, businessID int64) (map[domain.Weekday]domain.DayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"is_open",
		"open_time",
		"close_time",
	).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make(map[domain.Weekday]domain.DayHours)
	for rows.Next() {
		var day int
		var dayHours domain.DayHours

		if err := rows.Scan(&day, &dayHours.IsOpen, &dayHours.OpenTime, &dayHours.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: getBusinessHours - scan row: %v", ErrScanRow, err)
		}

		hours[domain.Weekday(day)] = dayHours
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"duration_minutes",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BusinessID,
		&service.Name,
		&service.DurationMinutes,
		&service.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// ListServiceIDsByBusiness получает ID всех услуг бизнеса.
// Используется пакетным обновлением расписаний для проверки владения.
func (r *Repository) ListServiceIDsByBusiness(ctx context.Context, businessID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("services").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDsByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDsByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListServiceIDsByBusiness - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDsByBusiness - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}
