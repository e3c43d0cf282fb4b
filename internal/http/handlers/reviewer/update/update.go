// Package update реализует HTTP-обработчик частичного обновления ревьюера.
//
// Handler принимает JSON с любым подмножеством полей записи; отсутствующие
// поля остаются без изменений. Запись ищется по id из пути запроса.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/lib/sl"
	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/services/catalog"
	"github.com/examreviewph/storefront/internal/storage"
)

// Handler обрабатывает HTTP-запросы на обновление ревьюера.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления ревьюера.
type Service interface {
	UpdateReviewer(ctx context.Context, id string, upd models.UpdateReviewer) (*models.Reviewer, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить ревьюер
// @Description Частично обновляет запись каталога: присланные поля накладываются на существующие. Возвращает обновлённую запись.
// @Tags Reviewers
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID ревьюера"
// @Param request body models.UpdateReviewer true "Обновляемые поля"
// @Success 200 {object} map[string]any "Обновлённая запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Администратор не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /admin/reviewers/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reviewer.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing id in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.UpdateReviewer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("id", id))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	reviewer, err := h.service.UpdateReviewer(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrReviewerNotFound):
			log.Error("reviewer not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("reviewer not found"))
		case errors.Is(err, catalog.ErrInvalidDifficulty) || errors.Is(err, catalog.ErrInvalidSubject) ||
			errors.Is(err, catalog.ErrInvalidPrice) || errors.Is(err, catalog.ErrEmptyTitle):
			log.Error("rejected update with invalid field value", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to update reviewer", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update reviewer"))
		}
		return
	}

	log.Info("success to update reviewer", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"reviewer": reviewer,
	}))
}
