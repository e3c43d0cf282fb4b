package logout

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

// Gate описывает интерфейс завершения админской сессии.
type Gate interface {
	Logout(ctx context.Context) error
}

func New(log *slog.Logger, gate Gate) *Handler {
	return &Handler{
		log:  log,
		gate: gate,
	}
}

// ServeHTTP godoc
// @Summary Выход администратора
// @Description Снимает серверный флаг сессии. Ранее выданные токены перестают действовать.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Успешный выход"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выходе"
// @Router /admin/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.gate.Logout(r.Context()); err != nil {
		log.Error("failed to logout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"logged_in": false,
	}))
}
