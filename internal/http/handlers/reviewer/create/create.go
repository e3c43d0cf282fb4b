// Package create реализует HTTP-обработчик для добавления ревьюеров в каталог.
//
// Handler принимает JSON-запрос с данными товара, валидирует их,
// вызывает бизнес-логику создания через сервис и возвращает созданную запись
// с назначенными id и created_at в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/lib/sl"
	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/services/catalog"
)

// Handler управляет HTTP-запросами на добавление ревьюеров.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания записи,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания ревьюера.
type Service interface {
	CreateReviewer(ctx context.Context, req models.DummyReviewer) (*models.Reviewer, error)
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
// @Summary Добавить ревьюер
// @Description Добавляет новый товар в каталог. Возвращает созданную запись с назначенными id и created_at.
// @Tags Reviewers
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyReviewer true "Данные нового ревьюера"
// @Success 200 {object} map[string]any "Успешное создание"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Администратор не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /admin/reviewers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reviewer.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyReviewer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	reviewer, err := h.service.CreateReviewer(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidDifficulty) || errors.Is(err, catalog.ErrInvalidSubject) ||
			errors.Is(err, catalog.ErrInvalidPrice) || errors.Is(err, catalog.ErrEmptyTitle) {
			log.Error("rejected reviewer with invalid field value", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to create reviewer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create reviewer"))
		return
	}

	log.Info("success to create reviewer", slog.String("id", reviewer.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"reviewer": reviewer,
	}))
}
