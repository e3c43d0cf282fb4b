package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// sessionState — содержимое слота сессии: флаг и необязательная отметка
// истечения. Формат повторяет пару ключей localStorage первой версии.
type sessionState struct {
	Admin     bool       `json:"admin"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// GetSession возвращает состояние флага сессии администратора.
func (s *Store) GetSession(ctx context.Context) (bool, *time.Time, error) {
	const op = "localstore.GetSession"
	select {
	case <-ctx.Done():
		return false, nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}
	return state.Admin, state.ExpiresAt, nil
}

// SetSession взводит флаг сессии с необязательной отметкой истечения.
func (s *Store) SetSession(ctx context.Context, expiresAt *time.Time) error {
	const op = "localstore.SetSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sessionState{Admin: true, ExpiresAt: expiresAt})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), data, 0o660); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearSession сбрасывает флаг и отметку истечения. Отсутствие слота не ошибка.
func (s *Store) ClearSession(ctx context.Context) error {
	const op = "localstore.ClearSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
