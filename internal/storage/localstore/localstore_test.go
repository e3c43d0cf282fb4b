package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	store, err := New(t.TempDir(), log)
	require.NoError(t, err)
	return store
}

func TestListReviewers_SeedsOnFirstAccess(t *testing.T) {
	store := newTestStore(t)

	items, err := store.ListReviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(SampleReviewers()))

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.False(t, item.CreatedAt.IsZero())
	}
	assert.Equal(t, "Complete Math Reviewer for UPCAT", items[0].Title)

	// Повторное чтение не создает записи заново
	again, err := store.ListReviewers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestCreateThenList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := models.Reviewer{
		ID:         "r-new",
		Title:      "Math Set",
		Subject:    "Practice Sets",
		Difficulty: models.DifficultyHard,
		Price:      299,
		PaymentURL: "https://ko-fi.com/s/math-set",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.CreateReviewer(ctx, created))

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)

	var matched int
	for _, item := range items {
		if item.ID == "r-new" {
			matched++
			assert.Equal(t, created.Title, item.Title)
			assert.Equal(t, created.Price, item.Price)
		}
	}
	assert.Equal(t, 1, matched)
}

func TestUpdateReviewer(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)
	target := items[0]

	newPrice := 999
	updated, err := store.UpdateReviewer(ctx, target.ID, models.UpdateReviewer{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 999, updated.Price)
	// Остальные поля без изменений
	assert.Equal(t, target.Title, updated.Title)
	assert.Equal(t, target.CreatedAt, updated.CreatedAt)

	// Изменение видно при следующем чтении
	items, err = store.ListReviewers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 999, items[0].Price)
}

func TestUpdateReviewer_NotFound(t *testing.T) {
	store := newTestStore(t)

	newPrice := 100
	_, err := store.UpdateReviewer(context.Background(), "no-such-id", models.UpdateReviewer{Price: &newPrice})
	assert.True(t, errors.Is(err, storage.ErrReviewerNotFound))
}

func TestRemoveReviewer(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)
	target := items[0]

	require.NoError(t, store.RemoveReviewer(ctx, target.ID))

	items, err = store.ListReviewers(ctx)
	require.NoError(t, err)
	for _, item := range items {
		assert.NotEqual(t, target.ID, item.ID)
	}

	// Повторное удаление того же id — NotFound, политика едина для бэкендов
	err = store.RemoveReviewer(ctx, target.ID)
	assert.True(t, errors.Is(err, storage.ErrReviewerNotFound))
}

func TestLoad_NormalizesLegacyDifficulty(t *testing.T) {
	dir := t.TempDir()
	legacy := []models.Reviewer{
		{ID: "r-1", Title: "Old Record", Subject: "Others", Difficulty: "easy", Price: 100, PaymentURL: "https://example.com/pay", CreatedAt: time.Now().UTC()},
		{ID: "r-2", Title: "Another", Subject: "Others", Difficulty: "Hard", Price: 150, PaymentURL: "https://example.com/pay2", CreatedAt: time.Now().UTC()},
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reviewers.json"), data, 0o660))

	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	store, err := New(dir, log)
	require.NoError(t, err)

	items, err := store.ListReviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.DifficultyEasy, items[0].Difficulty)
	assert.Equal(t, models.DifficultyHard, items[1].Difficulty)

	// Нормализация записана на диск один раз
	raw, err := os.ReadFile(filepath.Join(dir, "reviewers.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"easy"`)
}

func TestReplaceAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fresh := []models.Reviewer{
		{ID: "remote-1", Title: "From Remote", Subject: "Bundles", Difficulty: models.DifficultyMedium, Price: 499, PaymentURL: "https://example.com/pay", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, store.ReplaceAll(ctx, fresh))

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "remote-1", items[0].ID)
}

func TestReplaceAll_EmptyCopyStaysEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Удалённая база легитимно пуста: копия тоже должна опустеть
	require.NoError(t, store.ReplaceAll(ctx, []models.Reviewer{}))

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// И не заполняется стартовым списком при повторных чтениях
	items, err = store.ListReviewers(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveReviewer_EmptiedCatalogStaysEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items, err := store.ListReviewers(ctx)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, store.RemoveReviewer(ctx, item.ID))
	}

	items, err = store.ListReviewers(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSession_SetGetClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	active, expiresAt, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Nil(t, expiresAt)

	exp := time.Now().Add(24 * time.Hour).UTC()
	require.NoError(t, store.SetSession(ctx, &exp))

	active, expiresAt, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, active)
	require.NotNil(t, expiresAt)
	assert.True(t, exp.Equal(*expiresAt))

	require.NoError(t, store.ClearSession(ctx))
	// Повторный сброс не падает
	require.NoError(t, store.ClearSession(ctx))

	active, _, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestContextCancelled(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListReviewers(ctx)
	assert.Error(t, err)

	err = store.RemoveReviewer(ctx, "any")
	assert.Error(t, err)
}
