package manage_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dtroshin/CWM-BookingService/internal/api/handlers"
	"github.com/dtroshin/CWM-BookingService/internal/api/middleware"
	"github.com/dtroshin/CWM-BookingService/internal/service/availability"
	"github.com/dtroshin/CWM-BookingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAction      = "некорректное значение параметра action, ожидается get или set"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingBusinessID  = "отсутствует ID бизнеса"
	msgServiceNotFound    = "услуга не найдена"
	msgForbidden          = "доступ запрещен"
	msgScheduleConflict   = "окна расписания пересекаются"
)

const (
	actionGet = "get"
	actionSet = "set"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET|POST /api/v1/availability/manage?action=get|set
// action=get читает расписание услуги (service_id в query),
// action=set заменяет его (тело запроса)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("/availability/manage - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	switch r.URL.Query().Get("action") {
	case actionGet:
		h.handleGet(w, r, businessID)
	case actionSet:
		h.handleSet(w, r, businessID)
	default:
		h.logger.Warn("/availability/manage - Invalid action: %q", r.URL.Query().Get("action"))
		handlers.RespondBadRequest(w, msgInvalidAction)
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, businessID int64) {
	serviceID, err := strconv.ParseInt(r.URL.Query().Get("service_id"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/manage - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.Get(r.Context(), &models.GetAvailabilityRequest{
		ActorBusinessID: businessID,
		ServiceID:       serviceID,
	})
	if err != nil {
		h.respondServiceError(w, "GET", businessID, serviceID, err)
		return
	}

	h.logger.Info("GET /availability/manage - Schedule retrieved: business_id=%d, service_id=%d, windows=%d",
		businessID, serviceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request, businessID int64) {
	var req SetScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/manage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /availability/manage - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), serviceReq)
	if err != nil {
		var conflictErr *availability.ConflictError
		if errors.As(err, &conflictErr) {
			h.logger.Warn("POST /availability/manage - Schedule conflicts: business_id=%d, service_id=%d, conflicts=%d",
				businessID, req.ServiceID, len(conflictErr.Conflicts))
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)
			return
		}
		h.respondServiceError(w, "POST", businessID, req.ServiceID, err)
		return
	}

	h.logger.Info("POST /availability/manage - Schedule replaced: business_id=%d, service_id=%d, windows=%d",
		businessID, req.ServiceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, method string, businessID, serviceID int64, err error) {
	switch {
	case errors.Is(err, availability.ErrServiceNotFound):
		h.logger.Warn("%s /availability/manage - Service not found: service_id=%d", method, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, availability.ErrAccessDenied):
		h.logger.Warn("%s /availability/manage - Access denied: business_id=%d, service_id=%d",
			method, businessID, serviceID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, availability.ErrInvalidInput):
		h.logger.Warn("%s /availability/manage - Invalid input: %v", method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s /availability/manage - Internal error: business_id=%d, service_id=%d, error=%v",
			method, businessID, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
