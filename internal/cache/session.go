package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Именованные слоты сессии администратора. Имя флага унаследовано
// от первой версии витрины, хранившей его в localStorage браузера.
const (
	adminSessionKey = "examreview_admin"
	adminExpiryKey  = "examreview_admin_expiry"
)

// AdminSessionStore хранит флаг сессии администратора в redis.
// Используется в удалённом режиме; в локальном режиме его место занимает
// файловый слот localstore.
type AdminSessionStore struct {
	db *redis.Client
}

// NewAdminSessionStore создает хранилище сессии поверх существующего подключения.
func NewAdminSessionStore(c *Cache) *AdminSessionStore {
	return &AdminSessionStore{db: c.Db}
}

// GetSession возвращает состояние флага и отметку истечения, если она есть.
func (s *AdminSessionStore) GetSession(ctx context.Context) (bool, *time.Time, error) {
	const op = "cache.GetSession"

	val, err := s.db.Get(ctx, adminSessionKey).Result()
	if err == redis.Nil {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}
	if val != "true" {
		return false, nil, nil
	}

	expVal, err := s.db.Get(ctx, adminExpiryKey).Result()
	if err == redis.Nil {
		return true, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}
	expiresAt, err := time.Parse(time.RFC3339, expVal)
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}
	return true, &expiresAt, nil
}

// SetSession взводит флаг. При заданной отметке истечения ключам дополнительно
// проставляется redis TTL, так что слот исчезает сам даже без ленивой проверки.
func (s *AdminSessionStore) SetSession(ctx context.Context, expiresAt *time.Time) error {
	const op = "cache.SetSession"

	var ttl time.Duration
	if expiresAt != nil {
		ttl = time.Until(*expiresAt)
	}
	if err := s.db.Set(ctx, adminSessionKey, "true", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if expiresAt == nil {
		if err := s.db.Del(ctx, adminExpiryKey).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	if err := s.db.Set(ctx, adminExpiryKey, expiresAt.Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearSession удаляет флаг и отметку истечения.
func (s *AdminSessionStore) ClearSession(ctx context.Context) error {
	const op = "cache.ClearSession"
	if err := s.db.Del(ctx, adminSessionKey, adminExpiryKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
