package update_booking_status

import (
	transitionBooking "github.com/dtroshin/CWM-BookingService/internal/usecase/transition_booking"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	BookingID      int64  `json:"booking_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(actorBusinessID int64) *transitionBooking.Request {
	return &transitionBooking.Request{
		BookingID:       r.BookingID,
		RequestedStatus: r.Status,
		ActorBusinessID: actorBusinessID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response, message string) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Success:        true,
		Message:        message,
		BookingID:      resp.BookingID,
		PreviousStatus: string(resp.PreviousStatus),
		Status:         string(resp.Status),
	}
}
