package batch_update_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroshin/CWM-BookingService/internal/api/middleware"
	"github.com/dtroshin/CWM-BookingService/internal/domain"
	batchUpdate "github.com/dtroshin/CWM-BookingService/internal/usecase/batch_update_schedule"
)

// Фейки зависимостей

type fakeUseCase struct {
	resp *batchUpdate.Response
	err  error

	lastReq *batchUpdate.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *batchUpdate.Request) (*batchUpdate.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Помощники

func doRequest(t *testing.T, uc *fakeUseCase, body string, businessID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	if businessID != "" {
		req.Header.Set("X-Business-ID", businessID)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"service_ids":[10],"schedules":[{"day":0,"start_time":"09:00","end_time":"13:00","max_bookings":2}]}`

// Тесты

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &batchUpdate.Response{ServicesUpdated: 1, WindowsPerService: 1}}

	rec := doRequest(t, uc, validBody, "100")

	require.Equal(t, http.StatusOK, rec.Code)

	var payload BatchUpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, 1, payload.ServicesUpdated)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(100), uc.lastReq.ActorBusinessID)
	assert.Equal(t, []int64{10}, uc.lastReq.ServiceIDs)
}

func TestHandle_ConflictPayloadShape(t *testing.T) {
	uc := &fakeUseCase{err: &batchUpdate.ConflictError{
		Conflicts: map[int64][]domain.WindowConflict{
			10: {{
				DayOfWeek: domain.Weekday(2),
				First:     domain.WindowRange{StartTime: "09:00", EndTime: "12:00"},
				Second:    domain.WindowRange{StartTime: "11:00", EndTime: "14:00"},
			}},
		},
	}}

	rec := doRequest(t, uc, validBody, "100")

	require.Equal(t, http.StatusConflict, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "schedule_conflict", payload["type"])
	assert.NotEmpty(t, payload["error"])

	conflicts, ok := payload["conflicts"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, conflicts, "10")

	entries := conflicts["10"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, float64(2), entry["day"])
	assert.Equal(t, "Wednesday", entry["day_name"])
}

func TestHandle_MissingBusinessIDUnauthorized(t *testing.T) {
	uc := &fakeUseCase{resp: &batchUpdate.Response{}}

	rec := doRequest(t, uc, validBody, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_UseCaseErrorsMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"service not found", batchUpdate.ErrServiceNotFound, http.StatusNotFound},
		{"access denied", batchUpdate.ErrAccessDenied, http.StatusForbidden},
		{"invalid input", batchUpdate.ErrInvalidInput, http.StatusBadRequest},
		{"internal", batchUpdate.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, "100")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
