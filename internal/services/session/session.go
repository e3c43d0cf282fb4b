// Package session реализует админскую сессию витрины.
//
// Учётная запись одна и вшита в приложение; хранилище держит только флаг
// входа и срок его действия. Срок проверяется лениво: просроченная сессия
// обнаруживается и очищается при первой же проверке статуса.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/examreviewph/storefront/internal/lib/password"
	"github.com/examreviewph/storefront/internal/lib/sl"
)

// Встроенные учётные данные единственного администратора.
const (
	AdminEmail    = "admin@examreview.ph"
	adminPassword = "admin123"
)

// Store описывает хранилище флага админской сессии.
type Store interface {
	// GetSession возвращает флаг входа и срок действия (nil — бессрочно).
	GetSession(ctx context.Context) (bool, *time.Time, error)
	// SetSession включает флаг входа с заданным сроком действия.
	SetSession(ctx context.Context, expiresAt *time.Time) error
	// ClearSession снимает флаг входа.
	ClearSession(ctx context.Context) error
}

// Gate проверяет учётные данные и управляет флагом сессии.
type Gate struct {
	store        Store
	passwordHash string
	sessionTTL   time.Duration
	log          *slog.Logger
	now          func() time.Time
}

// NewGate создает новый Gate. Хэш пароля считается один раз при сборке,
// чтобы дальше сравнивать только хэши. ttl == 0 означает бессрочную сессию.
func NewGate(store Store, sessionTTL time.Duration, log *slog.Logger) (*Gate, error) {
	const op = "session.NewGate"

	hash, err := password.GetHash(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Gate{
		store:        store,
		passwordHash: hash,
		sessionTTL:   sessionTTL,
		log:          log,
		now:          time.Now,
	}, nil
}

// Login сверяет учётные данные и при совпадении включает сессию.
// Несовпадение возвращает false без ошибки и без побочных эффектов —
// вызывающий код не должен отличать неверный email от неверного пароля.
func (g *Gate) Login(ctx context.Context, email, pass string) (bool, error) {
	const op = "session.Gate.Login"

	if email != AdminEmail || password.CompareHash(g.passwordHash, pass) != nil {
		g.log.Info("rejected admin login attempt")
		return false, nil
	}

	var expiresAt *time.Time
	if g.sessionTTL > 0 {
		exp := g.now().UTC().Add(g.sessionTTL)
		expiresAt = &exp
	}
	if err := g.store.SetSession(ctx, expiresAt); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	g.log.Info("admin logged in")
	return true, nil
}

// Logout снимает флаг сессии. Повторный выход не является ошибкой.
func (g *Gate) Logout(ctx context.Context) error {
	const op = "session.Gate.Logout"

	if err := g.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	g.log.Info("admin logged out")
	return nil
}

// IsLoggedIn сообщает, активна ли сессия. Просроченная сессия очищается
// на месте и считается отсутствующей.
func (g *Gate) IsLoggedIn(ctx context.Context) (bool, error) {
	const op = "session.Gate.IsLoggedIn"

	active, expiresAt, err := g.store.GetSession(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if !active {
		return false, nil
	}
	if expiresAt != nil && g.now().After(*expiresAt) {
		if err := g.store.ClearSession(ctx); err != nil {
			g.log.Warn("failed to clear expired session", sl.Err(err))
		}
		g.log.Info("admin session expired")
		return false, nil
	}
	return true, nil
}
