// Package middlewarectx содержит HTTP middleware витрины.
//
// AdminAuthMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и сверяет его с серверным флагом сессии: выход администратора
// гасит флаг, и ранее выданные токены перестают действовать. В случае успеха
// email администратора добавляется в контекст запроса.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/lib/jwt"
	"github.com/examreviewph/storefront/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// AdminEmail — ключ для email администратора в контексте.
const AdminEmail Key = "admin_email"

// TokenParser описывает разбор и проверку подписи JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.AdminClaims, error)
}

// SessionChecker описывает проверку серверного флага админской сессии.
type SessionChecker interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

// AdminAuthMiddleware возвращает HTTP middleware, который пускает дальше
// только запросы с валидным токеном и активной админской сессией.
func AdminAuthMiddleware(maker TokenParser, gate SessionChecker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminAuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			active, err := gate.IsLoggedIn(r.Context())
			if err != nil {
				log.Error("failed to check admin session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}
			if !active {
				log.Error("admin session is not active")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("admin session expired or closed"))
				return
			}

			ctx := context.WithValue(r.Context(), AdminEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
