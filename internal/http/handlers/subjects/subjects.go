package subjects

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/models"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Список предметов
// @Description Возвращает закрытый список предметов каталога для фильтра витрины.
// @Tags Reviewers
// @Produce  json
// @Success 200 {object} map[string]any "Список предметов"
// @Router /subjects [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subjects": models.Subjects,
	}))
}
