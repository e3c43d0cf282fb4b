// Package login реализует HTTP-обработчик входа администратора.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, проверка и валидация полей, а также делегирование
// проверки учётных данных сессионному сервису. При успешном входе
// возвращается JSON с JWT-токеном; в случае ошибок формируются
// соответствующие HTTP-ответы.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/lib/sl"
)

// Request — структура входных данных для авторизации.
//
// Email должен быть валидным адресом, пароль — минимум 6 символов.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Handler обрабатывает HTTP-запросы для авторизации администратора.
type Handler struct {
	log      *slog.Logger
	gate     Gate
	maker    TokenMaker
	validate *validator.Validate
}

// Gate описывает интерфейс проверки учётных данных администратора.
type Gate interface {
	Login(ctx context.Context, email, password string) (bool, error)
}

// TokenMaker описывает выпуск JWT токена для администратора.
type TokenMaker interface {
	GenerateToken(email string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером, сервисом сессии
// и генератором токенов.
func New(log *slog.Logger, gate Gate, maker TokenMaker) *Handler {
	return &Handler{
		log:      log,
		gate:     gate,
		maker:    maker,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход администратора
// @Description Аутентифицирует администратора по email и паролю. Возвращает JWT-токен и включает серверную сессию.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные администратора"
// @Success 200 {object} map[string]any "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	ok, err := h.gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}
	if !ok {
		log.Error("invalid credentials")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}

	token, err := h.maker.GenerateToken(req.Email)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("login success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"email": req.Email,
	}))
}
