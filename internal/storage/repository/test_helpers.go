package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/examreviewph/storefront/internal/migrations"
	"github.com/examreviewph/storefront/internal/models"
)

// setupTestDatabase поднимает одноразовый PostgreSQL в контейнере
// и накатывает миграции каталога.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("examreview_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, "../../../migrations"))

	cleanup := func() {
		_ = storage.DB.Close()
		_ = container.Terminate(ctx)
	}
	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных каталога.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateReviewer создает тестовую запись каталога и возвращает её id.
func (f *TestDataFactory) CreateReviewer(t *testing.T, title, subject, difficulty string,
	price int, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO reviewers
		(id, title, description, subject, difficulty, price, payment_url, image_url, preview_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, title, "test description", subject, difficulty, price,
		"https://example.com/pay", "", "", createdAt)
	require.NoError(t, err)
	return id
}

// MustList возвращает каталог, падая при ошибке.
func (f *TestDataFactory) MustList(t *testing.T) []models.Reviewer {
	t.Helper()
	items, err := f.storage.ListReviewers(context.Background())
	require.NoError(t, err)
	return items
}
