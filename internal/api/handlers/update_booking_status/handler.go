package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/dtroshin/CWM-BookingService/internal/api/handlers"
	"github.com/dtroshin/CWM-BookingService/internal/api/middleware"
	transitionBooking "github.com/dtroshin/CWM-BookingService/internal/usecase/transition_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingBusinessID  = "отсутствует ID бизнеса"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidStatus      = "неизвестный статус бронирования"
	msgInvalidTransition  = "Invalid status transition"
	msgStatusUpdated      = "статус бронирования обновлён"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/update-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking/update-status - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/update-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("POST /booking/update-status - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, transitionBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking/update-status - Access denied: booking_id=%d, business_id=%d",
				req.BookingID, businessID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionBooking.ErrInvalidStatus):
			h.logger.Warn("POST /booking/update-status - Invalid status: booking_id=%d, status=%s",
				req.BookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, transitionBooking.ErrInvalidTransition):
			h.logger.Warn("POST /booking/update-status - Invalid transition: booking_id=%d, status=%s",
				req.BookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, transitionBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking/update-status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /booking/update-status - Failed to update status: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/update-status - Status updated: booking_id=%d, %s -> %s",
		result.BookingID, result.PreviousStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgStatusUpdated))
}
