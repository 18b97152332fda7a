package batch_update_availability

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroshin/CWM-BookingService/internal/api/handlers"
	"github.com/dtroshin/CWM-BookingService/internal/api/middleware"
	batchUpdate "github.com/dtroshin/CWM-BookingService/internal/usecase/batch_update_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingBusinessID  = "отсутствует ID бизнеса"
	msgServiceNotFound    = "услуга не найдена"
	msgForbidden          = "доступ запрещен"
	msgUpdated            = "расписания услуг обновлены"
)

type Handler struct {
	useCase BatchUpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase BatchUpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/batch - Missing business ID")
		handlers.RespondUnauthorized(w, msgMissingBusinessID)
		return
	}

	var req BatchUpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(businessID))
	if err != nil {
		var conflictErr *batchUpdate.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /availability/batch - Schedule conflicts: business_id=%d, services=%d",
				businessID, len(conflictErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(conflictErr))

		case errors.Is(err, batchUpdate.ErrServiceNotFound):
			h.logger.Warn("POST /availability/batch - Service not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, batchUpdate.ErrAccessDenied):
			h.logger.Warn("POST /availability/batch - Access denied: business_id=%d", businessID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, batchUpdate.ErrInvalidInput):
			h.logger.Warn("POST /availability/batch - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%v", err))

		default:
			h.logger.Error("POST /availability/batch - Failed to update schedules: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/batch - Schedules updated: business_id=%d, services=%d, windows=%d",
		businessID, result.ServicesUpdated, result.WindowsPerService)
	handlers.RespondJSON(w, http.StatusOK, BatchUpdateResponse{
		Success:           true,
		Message:           msgUpdated,
		ServicesUpdated:   result.ServicesUpdated,
		WindowsPerService: result.WindowsPerService,
	})
}
