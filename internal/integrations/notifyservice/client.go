// Package notifyservice клиент сервиса уведомлений.
// Вызывается в режиме fire-and-forget: ошибка доставки уведомления
// никогда не должна ломать бизнес-операцию.
package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReviewRequest запрос на отправку пользователю приглашения оставить отзыв
type ReviewRequest struct {
	BookingID  int64 `json:"booking_id"`
	UserID     int64 `json:"user_id"`
	BusinessID int64 `json:"business_id"`
}

// Client клиент для работы с сервисом уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReviewRequest отправляет приглашение оставить отзыв после
// завершённого бронирования
func (c *Client) SendReviewRequest(ctx context.Context, req *ReviewRequest) error {
	url := fmt.Sprintf("%s/internal/notifications/review-request", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	c.log.Info("Review request sent for booking_id=%d, user_id=%d", req.BookingID, req.UserID)
	return nil
}
