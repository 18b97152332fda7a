// Package middleware HTTP middleware: аутентификация акторов по
// заголовкам и метрики запросов.
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type userIDKey struct{}
type businessIDKey struct{}

const (
	headerUserID     = "X-User-ID"
	headerBusinessID = "X-Business-ID"
)

// Auth извлекает идентификаторы актора из заголовков запроса и кладёт
// их в контекст. Запросы без X-User-ID отклоняются; X-Business-ID
// опционален и присутствует только у запросов от имени бизнеса.
//
// Сервис живёт за API-шлюзом, который уже проверил подпись токена,
// поэтому здесь заголовкам доверяем.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			respondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)

		if businessIDStr := r.Header.Get(headerBusinessID); businessIDStr != "" {
			businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
			if err != nil || businessID <= 0 {
				respondUnauthorized(w, "некорректный заголовок X-Business-ID")
				return
			}
			ctx = context.WithValue(ctx, businessIDKey{}, businessID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// GetBusinessID возвращает ID бизнеса из контекста запроса
func GetBusinessID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(businessIDKey{}).(int64)
	return id, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"` + message + `"}`))
}
