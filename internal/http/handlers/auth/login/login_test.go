package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// GateMock реализует интерфейс login.Gate
type GateMock struct {
	mock.Mock
}

func (m *GateMock) Login(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

// MakerMock реализует интерфейс login.TokenMaker
type MakerMock struct {
	mock.Mock
}

func (m *MakerMock) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    any
		setupMocks     func(g *GateMock, mk *MakerMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный вход",
			requestBody: Request{Email: "admin@examreview.ph", Password: "admin123"},
			setupMocks: func(g *GateMock, mk *MakerMock) {
				g.On("Login", mock.Anything, "admin@examreview.ph", "admin123").Return(true, nil)
				mk.On("GenerateToken", "admin@examreview.ph").Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed.jwt.token"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMocks:     func(_ *GateMock, _ *MakerMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "невалидный email",
			requestBody:    Request{Email: "not-an-email", Password: "admin123"},
			setupMocks:     func(_ *GateMock, _ *MakerMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:           "короткий пароль",
			requestBody:    Request{Email: "admin@examreview.ph", Password: "123"},
			setupMocks:     func(_ *GateMock, _ *MakerMock) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name:        "неверные учетные данные",
			requestBody: Request{Email: "admin@examreview.ph", Password: "letmein"},
			setupMocks: func(g *GateMock, _ *MakerMock) {
				g.On("Login", mock.Anything, "admin@examreview.ph", "letmein").Return(false, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"invalid credentials"`,
		},
		{
			name:        "ошибка хранилища сессии",
			requestBody: Request{Email: "admin@examreview.ph", Password: "admin123"},
			setupMocks: func(g *GateMock, _ *MakerMock) {
				g.On("Login", mock.Anything, "admin@examreview.ph", "admin123").
					Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"internal service error"`,
		},
		{
			name:        "ошибка генерации токена",
			requestBody: Request{Email: "admin@examreview.ph", Password: "admin123"},
			setupMocks: func(g *GateMock, mk *MakerMock) {
				g.On("Login", mock.Anything, "admin@examreview.ph", "admin123").Return(true, nil)
				mk.On("GenerateToken", "admin@examreview.ph").Return("", errors.New("sign error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"internal service error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateMock := new(GateMock)
			makerMock := new(MakerMock)
			tt.setupMocks(gateMock, makerMock)

			handler := New(logger, gateMock, makerMock)

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/login", &body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			gateMock.AssertExpectations(t)
			makerMock.AssertExpectations(t)
		})
	}
}
