package get_available_times

import (
	"errors"
	"net/http"

	"github.com/dtroshin/CWM-BookingService/internal/api/handlers"
	getAvailableTimes "github.com/dtroshin/CWM-BookingService/internal/usecase/get_available_times"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound   = "бизнес не найден"
	msgBusinessInactive   = "бизнес деактивирован"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга деактивирована"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgWorkingHoursNotSet = "рабочие часы на этот день не настроены"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/available-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailableTimesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/available-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking/available-times - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrBusinessNotFound):
			h.logger.Warn("POST /booking/available-times - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableTimes.ErrBusinessInactive):
			h.logger.Warn("POST /booking/available-times - Business inactive: business_id=%d", req.BusinessID)
			handlers.RespondBadRequest(w, msgBusinessInactive)

		case errors.Is(err, getAvailableTimes.ErrServiceNotFound):
			h.logger.Warn("POST /booking/available-times - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableTimes.ErrServiceInactive):
			h.logger.Warn("POST /booking/available-times - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, getAvailableTimes.ErrInvalidDate):
			h.logger.Warn("POST /booking/available-times - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, getAvailableTimes.ErrWorkingHoursNotSet):
			h.logger.Warn("POST /booking/available-times - Working hours not set: business_id=%d", req.BusinessID)
			handlers.RespondBadRequest(w, msgWorkingHoursNotSet)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("POST /booking/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /booking/available-times - Failed to get slots: business_id=%d, service_id=%d, error=%v",
				req.BusinessID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/available-times - Slots retrieved: business_id=%d, service_id=%d, date=%s, slots=%d",
		req.BusinessID, req.ServiceID, req.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
