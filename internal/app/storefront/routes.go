// Package storefront предоставляет маршруты для основного приложения.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examreviewph/storefront/internal/config"
	"github.com/examreviewph/storefront/internal/http/handlers/auth/login"
	"github.com/examreviewph/storefront/internal/http/handlers/auth/logout"
	"github.com/examreviewph/storefront/internal/http/handlers/auth/status"
	"github.com/examreviewph/storefront/internal/http/handlers/checkout"
	"github.com/examreviewph/storefront/internal/http/handlers/health"
	"github.com/examreviewph/storefront/internal/http/handlers/reviewer/create"
	"github.com/examreviewph/storefront/internal/http/handlers/reviewer/list"
	"github.com/examreviewph/storefront/internal/http/handlers/reviewer/remove"
	"github.com/examreviewph/storefront/internal/http/handlers/reviewer/update"
	"github.com/examreviewph/storefront/internal/http/handlers/subjects"
	"github.com/examreviewph/storefront/internal/http/middlewarectx"
	"github.com/examreviewph/storefront/internal/lib/jwt"
	catalogservice "github.com/examreviewph/storefront/internal/services/catalog"
	sessionservice "github.com/examreviewph/storefront/internal/services/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, catalogService *catalogservice.CatalogService, gate *sessionservice.Gate, maker jwt.Maker, checkoutCfg config.Checkout) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки витрины
		r.Get("/reviewers", list.New(logger, catalogService).ServeHTTP)
		r.Get("/subjects", subjects.New(logger).ServeHTTP)
		r.Get("/checkout", checkout.New(logger, catalogService, checkoutCfg).ServeHTTP)

		r.Post("/admin/login", login.New(logger, gate, maker).ServeHTTP)
		r.Post("/admin/logout", logout.New(logger, gate).ServeHTTP)
		r.Get("/admin/session", status.New(logger, gate).ServeHTTP)

		// Группа с JWT аутентификацией и проверкой серверной сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminAuthMiddleware(maker, gate, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/admin/reviewers", create.New(logger, catalogService).ServeHTTP)
			r.Patch("/admin/reviewers/{id}", update.New(logger, catalogService).ServeHTTP)
			r.Delete("/admin/reviewers/{id}", remove.New(logger, catalogService).ServeHTTP)
		})
	})

	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
