// Package localstore реализует локальное файловое хранилище каталога и сессии.
//
// Это наследник первой версии витрины, державшей всё в localStorage браузера:
// один именованный слот со списком ревьюеров и два слота сессии администратора.
// Здесь слоты — json-файлы в каталоге данных. Хранилище служит либо основным
// бэкендом (когда удалённая база не настроена), либо локальной копией для
// чтения, когда удалённая база недоступна.
//
// Мутации переписывают файл целиком: на масштабе каталога из десятков записей
// инкрементальная запись не нужна.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/storage"
)

const (
	reviewersFile = "reviewers.json"
	sessionFile   = "session.json"
)

// Store — файловое хранилище. Все операции сериализуются мьютексом:
// конкурентных администраторов по дизайну нет, а списки читаются из
// последней записанной копии.
type Store struct {
	dir string
	log *slog.Logger
	mu  sync.Mutex
}

// New создает каталог данных, если его нет, и возвращает хранилище.
func New(dir string, log *slog.Logger) (*Store, error) {
	const op = "localstore.New"
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// ListReviewers возвращает все записи каталога в порядке хранения.
// Отсутствующий файл при первом обращении заполняется встроенным стартовым
// списком; записанный пустой список так и остаётся пустым.
func (s *Store) ListReviewers(ctx context.Context) ([]models.Reviewer, error) {
	const op = "localstore.ListReviewers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadReviewers()
}

// CreateReviewer добавляет запись в конец слота.
func (s *Store) CreateReviewer(ctx context.Context, r models.Reviewer) error {
	const op = "localstore.CreateReviewer"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadReviewers()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	items = append(items, r)
	if err := s.saveReviewers(items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateReviewer накладывает частичное обновление на запись по id
// и возвращает результат слияния.
func (s *Store) UpdateReviewer(ctx context.Context, id string, upd models.UpdateReviewer) (*models.Reviewer, error) {
	const op = "localstore.UpdateReviewer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadReviewers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		merged := upd.Merge(item)
		items[i] = merged
		if err := s.saveReviewers(items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &merged, nil
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrReviewerNotFound)
}

// RemoveReviewer удаляет запись по id. Отсутствующий id — ошибка:
// прежнее поведение "удаление несуществующего всегда успешно" было
// маскировкой no-op и не сохраняется.
func (s *Store) RemoveReviewer(ctx context.Context, id string) error {
	const op = "localstore.RemoveReviewer"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadReviewers()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.saveReviewers(items); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: %w", op, storage.ErrReviewerNotFound)
}

// ReplaceAll перезаписывает слот целиком. Сервис каталога вызывает его после
// успешного чтения из удалённой базы, чтобы локальная копия оставалась свежей
// на случай падения следующего чтения.
func (s *Store) ReplaceAll(ctx context.Context, items []models.Reviewer) error {
	const op = "localstore.ReplaceAll"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveReviewers(items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// loadReviewers читает слот, заполняя его стартовым списком только когда
// файла ещё нет: пустой, но записанный слот — легитимное состояние каталога
// после удаления всех товаров или копии опустевшей удалённой базы.
// Записи ранних версий с difficulty в нижнем регистре приводятся
// к каноническому виду; результат нормализации сразу сохраняется.
// Вызывается под мьютексом.
func (s *Store) loadReviewers() ([]models.Reviewer, error) {
	path := filepath.Join(s.dir, reviewersFile)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s.seed()
	}
	if err != nil {
		return nil, err
	}

	var items []models.Reviewer
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Reviewer{}
	}

	changed := false
	for i, item := range items {
		canonical, ok := models.NormalizeDifficulty(item.Difficulty)
		if ok && canonical != item.Difficulty {
			items[i].Difficulty = canonical
			changed = true
		}
	}
	if changed {
		s.log.Info("normalized legacy difficulty values", slog.String("file", path))
		if err := s.saveReviewers(items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *Store) seed() ([]models.Reviewer, error) {
	now := time.Now().UTC()
	samples := SampleReviewers()
	items := make([]models.Reviewer, 0, len(samples))
	for _, sample := range samples {
		items = append(items, models.Reviewer{
			ID:          uuid.NewString(),
			Title:       sample.Title,
			Description: sample.Description,
			Subject:     sample.Subject,
			Difficulty:  sample.Difficulty,
			Price:       sample.Price,
			PaymentURL:  sample.PaymentURL,
			ImageURL:    sample.ImageURL,
			PreviewURL:  sample.PreviewURL,
			CreatedAt:   now,
		})
	}
	if err := s.saveReviewers(items); err != nil {
		return nil, err
	}
	s.log.Info("seeded local catalog", slog.Int("count", len(items)))
	return items, nil
}

func (s *Store) saveReviewers(items []models.Reviewer) error {
	if items == nil {
		items = []models.Reviewer{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, reviewersFile), data, 0o660)
}
