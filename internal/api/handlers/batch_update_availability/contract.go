package batch_update_availability

import (
	"context"

	batchUpdate "github.com/dtroshin/CWM-BookingService/internal/usecase/batch_update_schedule"
)

type BatchUpdateScheduleUseCase interface {
	Execute(ctx context.Context, req *batchUpdate.Request) (*batchUpdate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
