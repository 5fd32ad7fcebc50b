package middleware

import (
	"net/http"
	"strconv"

	"github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя.
// Заголовок проставляет API gateway, сервис ему доверяет.
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется аутентификация"

// Auth проверяет наличие корректного X-User-ID заголовка
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		if userID, err := strconv.ParseInt(userIDStr, 10, 64); err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
