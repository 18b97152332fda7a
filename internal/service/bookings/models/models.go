package models

import (
	"fmt"
	"time"

	"github.com/dtroshin/CWM-BookingService/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // Опциональный фильтр по статусу
}

// GetBusinessBookingsRequest запрос бронирований бизнеса с фильтрацией
type GetBusinessBookingsRequest struct {
	BusinessID      int64
	ServiceID       *int64
	Date            *time.Time
	Status          *string
	IncludeInactive bool
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	BusinessID      int64   `json:"business_id"`
	ServiceID       int64   `json:"service_id"`
	BookingDate     string  `json:"booking_date"`
	BookingTime     string  `json:"booking_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"service_name"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		BusinessID:      b.BusinessID,
		ServiceID:       b.ServiceID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		BookingTime:     b.BookingTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строковый статус в domain модель
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown booking status: %s", status)
	}
	return s, nil
}

// ToDomainFilter конвертирует GetBusinessBookingsRequest в domain фильтр
func (r *GetBusinessBookingsRequest) ToDomainFilter() (domain.BusinessBookingsFilter, error) {
	filter := domain.BusinessBookingsFilter{
		BusinessID:      r.BusinessID,
		ServiceID:       r.ServiceID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BusinessBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
