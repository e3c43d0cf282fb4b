// Package status реализует HTTP-обработчик проверки админской сессии.
//
// Витрина опрашивает его, чтобы решить, показывать ли админские элементы.
// Просроченная сессия очищается сервисом на месте и отдаётся как неактивная.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/lib/sl"
)

type Handler struct {
	log  *slog.Logger
	gate Gate
}

// Gate описывает интерфейс проверки активности админской сессии.
type Gate interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

func New(log *slog.Logger, gate Gate) *Handler {
	return &Handler{
		log:  log,
		gate: gate,
	}
}

// ServeHTTP godoc
// @Summary Статус админской сессии
// @Description Сообщает, активна ли сессия администратора. Просроченная сессия считается неактивной.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Статус сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при проверке сессии"
// @Router /admin/session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	active, err := h.gate.IsLoggedIn(r.Context())
	if err != nil {
		log.Error("failed to check session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("session status", slog.Bool("logged_in", active))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"logged_in": active,
	}))
}
