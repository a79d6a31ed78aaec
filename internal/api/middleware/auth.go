package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// HeaderAdminID заголовок идентификации администратора
const HeaderAdminID = "X-Admin-ID"

// Auth проверяет наличие заголовка X-Admin-ID и кладет его в контекст запроса
// Полноценная аутентификация выполняется на API gateway, здесь только идентификация
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(HeaderAdminID)
		if adminID == "" {
			handlers.RespondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
