package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examreviewph/storefront/internal/config"
	"github.com/examreviewph/storefront/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := []models.Reviewer{
		{ID: "r-1", Title: "English Grammar Essentials", Price: 199},
		{ID: "r-2", Title: "Logic and Critical Thinking", Price: 249},
	}
	err := cache.Set("reviewers:list", expected, time.Minute)
	require.NoError(t, err)

	var actual []models.Reviewer
	found, err := cache.Get("reviewers:list", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out []models.Reviewer
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("reviewers:list", []models.Reviewer{{ID: "r-1"}}, time.Minute))
	require.NoError(t, cache.Invalidate("reviewers:list"))

	var out []models.Reviewer
	found, err := cache.Get("reviewers:list", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
