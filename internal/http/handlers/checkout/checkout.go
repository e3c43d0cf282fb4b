// Package checkout реализует HTTP-обработчик страницы оплаты.
//
// Оплата идёт вручную через GCash: обработчик подбирает товар по подсказкам
// из query-параметров (точный id, затем название, иначе первый товар каталога)
// и возвращает его вместе с реквизитами для перевода и ссылкой на форму
// подтверждения оплаты. Сам платёж сервис не проводит.
package checkout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examreviewph/storefront/internal/config"
	"github.com/examreviewph/storefront/internal/http/response"
	"github.com/examreviewph/storefront/internal/models"
)

// Handler обрабатывает HTTP-запросы страницы оплаты.
type Handler struct {
	log      *slog.Logger
	service  Service
	checkout config.Checkout
}

// Service описывает интерфейс подбора товара для оплаты.
type Service interface {
	FindForCheckout(ctx context.Context, productID, productName string) *models.Reviewer
}

// New создает новый Handler с переданными логгером, сервисом и реквизитами оплаты.
func New(log *slog.Logger, service Service, checkout config.Checkout) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		checkout: checkout,
	}
}

// ServeHTTP godoc
// @Summary Данные для оплаты
// @Description Возвращает выбранный товар и реквизиты GCash для ручного перевода. Товар ищется по product_id, затем по product_name; без подсказок берётся первый товар каталога.
// @Tags Checkout
// @Produce  json
// @Param product_id query string false "ID товара"
// @Param product_name query string false "Название товара"
// @Success 200 {object} map[string]any "Товар и реквизиты оплаты"
// @Failure 404 {object} response.ErrorResponse "Каталог пуст"
// @Router /checkout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID := r.URL.Query().Get("product_id")
	productName := r.URL.Query().Get("product_name")

	product := h.service.FindForCheckout(r.Context(), productID, productName)
	if product == nil {
		log.Error("no product available for checkout")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("no product available"))
		return
	}

	log.Info("prepared checkout", slog.String("product_id", product.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"product": product,
		"payment": map[string]any{
			"gcash_name":     h.checkout.GCashName,
			"gcash_number":   h.checkout.GCashNumber,
			"qr_image_url":   h.checkout.QRImageURL,
			"proof_form_url": h.checkout.ProofFormURL,
		},
	}))
}
