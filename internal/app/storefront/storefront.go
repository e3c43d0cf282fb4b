// Package storefront собирает приложение витрины: хранилище каталога,
// кеш, сессию администратора и HTTP-сервер.
//
// Бэкенд каталога выбирается один раз при старте. Непустая строка
// подключения включает удалённый режим: PostgreSQL становится основным
// хранилищем, а локальный json-файл — резервом для пути чтения. Без неё
// сервис работает целиком на локальном файле. Redis опционален в обоих
// режимах: с ним появляются кеш списка и серверная сессия в redis,
// без него сессия живёт в файле рядом с каталогом.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/examreviewph/storefront/internal/cache"
	"github.com/examreviewph/storefront/internal/config"
	"github.com/examreviewph/storefront/internal/lib/jwt"
	"github.com/examreviewph/storefront/internal/migrations"
	"github.com/examreviewph/storefront/internal/services/catalog"
	"github.com/examreviewph/storefront/internal/services/session"
	"github.com/examreviewph/storefront/internal/storage/localstore"
	"github.com/examreviewph/storefront/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	localStore, err := localstore.New(cfg.Dir, logger)
	if err != nil {
		return nil, err
	}

	var (
		db           *repository.Storage
		catalogRepo  catalog.ReviewerRepository = localStore
		fallback     catalog.FallbackStore
		sessionStore session.Store              = localStore
		sessionTTL   time.Duration
		catalogCache catalog.Cache
		redisCache   *cache.Cache
	)

	if cfg.RemoteMode() {
		db, err = repository.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		if err = repository.CheckDatabaseReady(db); err != nil {
			return nil, err
		}
		catalogRepo = db
		fallback = localStore
		sessionTTL = cfg.SessionTTL
	}

	if cfg.AddressRedis != "" {
		redisCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		catalogCache = redisCache
		sessionStore = cache.NewAdminSessionStore(redisCache)
	}

	catalogService := catalog.NewCatalogService(catalogRepo, fallback, catalogCache, logger)
	if cfg.RemoteMode() {
		if err = catalogService.SeedIfEmpty(ctx, localstore.SampleReviewers()); err != nil {
			return nil, err
		}
	}

	gate, err := session.NewGate(sessionStore, sessionTTL, logger)
	if err != nil {
		return nil, err
	}
	maker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, catalogService, gate, maker, cfg.Checkout)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  redisCache,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.db != nil {
			_ = a.db.DB.Close()
		}
		return err
	}
}
