package manage_availability

import (
	"context"

	"github.com/dtroshin/CWM-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Set(ctx context.Context, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error)
	Get(ctx context.Context, req *models.GetAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
