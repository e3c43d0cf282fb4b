// Package catalog содержит бизнес-логику каталога ревьюеров.
//
// Сервис владеет политикой выбора бэкенда: основной репозиторий назначается
// при сборке приложения (PostgreSQL либо локальный файл), а локальная копия
// подключается как резерв только для пути чтения. Ошибка чтения из основного
// хранилища деградирует до локальной копии и дальше до пустого списка —
// витрина никогда не получает жёсткую ошибку. Ошибки записи, напротив,
// всегда доходят до администратора: маскировка неудавшейся записи создала бы
// ложное впечатление успеха.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/examreviewph/storefront/internal/lib/sl"
	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/storage"
)

const (
	listCacheKey = "reviewers:list"
	listCacheTTL = time.Hour
)

// Ошибки валидации входных данных каталога.
var (
	ErrInvalidDifficulty = errors.New("unknown difficulty value")
	ErrInvalidSubject    = errors.New("unknown subject value")
	ErrInvalidPrice      = errors.New("price must be non-negative")
	ErrEmptyTitle        = errors.New("title must not be empty")
)

// ReviewerRepository определяет методы основного хранилища каталога.
type ReviewerRepository interface {
	// CreateReviewer сохраняет новую запись с уже назначенными id и created_at.
	CreateReviewer(ctx context.Context, r models.Reviewer) error
	// ListReviewers возвращает весь каталог.
	ListReviewers(ctx context.Context) ([]models.Reviewer, error)
	// UpdateReviewer накладывает частичное обновление и возвращает результат.
	UpdateReviewer(ctx context.Context, id string, upd models.UpdateReviewer) (*models.Reviewer, error)
	// RemoveReviewer удаляет запись по id.
	RemoveReviewer(ctx context.Context, id string) error
}

// FallbackStore описывает локальную копию каталога для пути чтения.
type FallbackStore interface {
	// ListReviewers возвращает последнюю известную копию каталога.
	ListReviewers(ctx context.Context) ([]models.Reviewer, error)
	// ReplaceAll обновляет копию после успешного чтения из основного хранилища.
	ReplaceAll(ctx context.Context, items []models.Reviewer) error
}

// Cache описывает методы для кэширования списка каталога.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// CatalogService реализует операции каталога поверх выбранного бэкенда.
// fallback и cache могут быть nil: в локальном режиме резерв не нужен,
// а без redis сервис работает напрямую с хранилищем.
type CatalogService struct {
	repo     ReviewerRepository
	fallback FallbackStore
	cache    Cache
	log      *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(repo ReviewerRepository, fallback FallbackStore, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		fallback: fallback,
		cache:    cache,
		log:      log,
	}
}

// ListReviewers возвращает каталог, при необходимости отфильтрованный по
// предмету ("" и "All" — без фильтра). Ошибки чтения поглощаются: сначала
// локальная копия, затем пустой список. Вызывающий код ошибок не видит.
func (s *CatalogService) ListReviewers(ctx context.Context, subject string) []models.Reviewer {
	items := s.listAll(ctx)

	if subject == "" || subject == "All" {
		return items
	}
	filtered := make([]models.Reviewer, 0, len(items))
	for _, item := range items {
		if item.Subject == subject {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *CatalogService) listAll(ctx context.Context) []models.Reviewer {
	if s.cache != nil {
		var cached []models.Reviewer
		found, err := s.cache.Get(listCacheKey, &cached)
		if err != nil {
			s.log.Warn("failed to read list cache", sl.Err(err))
		}
		if found {
			return cached
		}
	}

	items, err := s.repo.ListReviewers(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", storage.ErrBackendUnavailable, err)
		s.log.Error("failed to list reviewers, falling back to local copy", sl.Err(err))
		return s.listFallback(ctx)
	}
	if items == nil {
		items = []models.Reviewer{}
	}

	if s.cache != nil {
		if err := s.cache.Set(listCacheKey, items, listCacheTTL); err != nil {
			s.log.Warn("failed to cache reviewer list", sl.Err(err))
		}
	}
	if s.fallback != nil {
		if err := s.fallback.ReplaceAll(ctx, items); err != nil {
			s.log.Warn("failed to refresh local copy", sl.Err(err))
		}
	}
	return items
}

func (s *CatalogService) listFallback(ctx context.Context) []models.Reviewer {
	if s.fallback == nil {
		return []models.Reviewer{}
	}
	items, err := s.fallback.ListReviewers(ctx)
	if err != nil {
		s.log.Error("local copy unavailable too, serving empty catalog", sl.Err(err))
		return []models.Reviewer{}
	}
	return items
}

// CreateReviewer назначает id и created_at, валидирует закрытые списки
// значений, цену и название, затем сохраняет запись. Ошибка записи
// возвращается вызывающему.
func (s *CatalogService) CreateReviewer(ctx context.Context, req models.DummyReviewer) (*models.Reviewer, error) {
	difficulty, ok := models.NormalizeDifficulty(req.Difficulty)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, req.Difficulty)
	}
	subject := strings.TrimSpace(req.Subject)
	if !models.ValidSubject(subject) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, req.Subject)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrice, req.Price)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	reviewer := models.Reviewer{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Subject:     subject,
		Difficulty:  difficulty,
		Price:       req.Price,
		PaymentURL:  req.PaymentURL,
		ImageURL:    req.ImageURL,
		PreviewURL:  req.PreviewURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateReviewer(ctx, reviewer); err != nil {
		return nil, err
	}
	s.log.Info("created new reviewer", slog.String("id", reviewer.ID))

	s.invalidateListCache()
	return &reviewer, nil
}

// UpdateReviewer валидирует присланные поля и накладывает их на запись.
// Возвращает storage.ErrReviewerNotFound для несуществующего id.
func (s *CatalogService) UpdateReviewer(ctx context.Context, id string, upd models.UpdateReviewer) (*models.Reviewer, error) {
	if upd.Difficulty != nil {
		difficulty, ok := models.NormalizeDifficulty(*upd.Difficulty)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, *upd.Difficulty)
		}
		upd.Difficulty = &difficulty
	}
	if upd.Subject != nil && !models.ValidSubject(*upd.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, *upd.Subject)
	}
	if upd.Price != nil && *upd.Price < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrice, *upd.Price)
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, ErrEmptyTitle
	}

	result, err := s.repo.UpdateReviewer(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated reviewer", slog.String("id", id))

	s.invalidateListCache()
	return result, nil
}

// RemoveReviewer удаляет запись по id.
func (s *CatalogService) RemoveReviewer(ctx context.Context, id string) error {
	if err := s.repo.RemoveReviewer(ctx, id); err != nil {
		return err
	}
	s.log.Info("removed reviewer", slog.String("id", id))

	s.invalidateListCache()
	return nil
}

// FindForCheckout подбирает товар для страницы чекаута: точное совпадение id,
// затем совпадение по названию, иначе первый товар каталога. Возвращает nil,
// когда каталог пуст.
func (s *CatalogService) FindForCheckout(ctx context.Context, productID, productName string) *models.Reviewer {
	items := s.listAll(ctx)
	if len(items) == 0 {
		return nil
	}

	if productID != "" {
		for _, item := range items {
			if item.ID == productID {
				return &item
			}
		}
	}
	if productName != "" {
		for _, item := range items {
			if item.Title == productName {
				return &item
			}
		}
	}
	return &items[0]
}

// SeedIfEmpty заполняет пустой каталог переданным стартовым списком.
// Выполняется один раз при старте в удалённом режиме; локальное хранилище
// засеивает себя само.
func (s *CatalogService) SeedIfEmpty(ctx context.Context, samples []models.DummyReviewer) error {
	items, err := s.repo.ListReviewers(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}

	for _, sample := range samples {
		if _, err := s.CreateReviewer(ctx, sample); err != nil {
			return err
		}
	}
	s.log.Info("seeded catalog with sample reviewers", slog.Int("count", len(samples)))
	return nil
}

func (s *CatalogService) invalidateListCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate list cache", sl.Err(err))
	}
}
