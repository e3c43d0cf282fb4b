package list

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/examreviewph/storefront/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListReviewers(ctx context.Context, subject string) []models.Reviewer {
	args := m.Called(ctx, subject)
	return args.Get(0).([]models.Reviewer)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items := []models.Reviewer{
		{ID: "rev-1", Title: "Math Set", Subject: "Practice Sets"},
		{ID: "rev-2", Title: "Mock Exam A", Subject: "Mock Exams"},
	}

	tests := []struct {
		name         string
		url          string
		subject      string
		mockItems    []models.Reviewer
		expectedBody string
	}{
		{
			name:         "весь каталог",
			url:          "/reviewers",
			subject:      "",
			mockItems:    items,
			expectedBody: `"list_count":2`,
		},
		{
			name:         "фильтр по предмету",
			url:          "/reviewers?subject=Mock+Exams",
			subject:      "Mock Exams",
			mockItems:    items[1:],
			expectedBody: `"rev-2"`,
		},
		{
			name:         "пустой каталог",
			url:          "/reviewers",
			subject:      "",
			mockItems:    []models.Reviewer{},
			expectedBody: `"list_count":0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockService.On("ListReviewers", mock.Anything, tt.subject).Return(tt.mockItems)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
