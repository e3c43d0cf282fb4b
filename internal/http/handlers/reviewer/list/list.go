// Package list реализует HTTP-обработчик выдачи каталога ревьюеров.
//
// Обработчик публичный: витрина запрашивает каталог без авторизации,
// опционально фильтруя его по предмету. Ошибки чтения поглощаются сервисом,
// поэтому обработчик всегда отвечает успешным списком (возможно пустым).
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/models"
)

// Handler обрабатывает HTTP-запросы на чтение каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения каталога.
type Service interface {
	ListReviewers(ctx context.Context, subject string) []models.Reviewer
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список ревьюеров
// @Description Возвращает каталог ревьюеров, отсортированный по дате добавления (новые первыми). Параметр subject фильтрует по предмету; "All" или пустое значение — весь каталог.
// @Tags Reviewers
// @Produce  json
// @Param subject query string false "Фильтр по предмету"
// @Success 200 {object} map[string]any "Каталог ревьюеров"
// @Router /reviewers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reviewer.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subject := r.URL.Query().Get("subject")

	res := h.service.ListReviewers(r.Context(), subject)

	log.Info("list reviewers", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"reviewers":  res,
	}))
}
