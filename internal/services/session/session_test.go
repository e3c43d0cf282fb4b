package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type StoreMock struct{ mock.Mock }

func (m *StoreMock) GetSession(ctx context.Context) (bool, *time.Time, error) {
	args := m.Called(ctx)
	var exp *time.Time
	if args.Get(1) != nil {
		exp = args.Get(1).(*time.Time)
	}
	return args.Bool(0), exp, args.Error(2)
}

func (m *StoreMock) SetSession(ctx context.Context, expiresAt *time.Time) error {
	return m.Called(ctx, expiresAt).Error(0)
}

func (m *StoreMock) ClearSession(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestGate(t *testing.T, store Store, ttl time.Duration) *Gate {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	gate, err := NewGate(store, ttl, log)
	require.NoError(t, err)
	return gate
}

func TestGate_Login(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		ttl        time.Duration
		setupMocks func(s *StoreMock)
		want       bool
		wantErr    bool
	}{
		{
			name:     "valid credentials with expiry",
			email:    AdminEmail,
			password: "admin123",
			ttl:      24 * time.Hour,
			setupMocks: func(s *StoreMock) {
				s.On("SetSession", mock.Anything, mock.MatchedBy(func(exp *time.Time) bool {
					return exp != nil && exp.After(time.Now().UTC())
				})).Return(nil).Once()
			},
			want: true,
		},
		{
			name:     "zero ttl means no expiry",
			email:    AdminEmail,
			password: "admin123",
			ttl:      0,
			setupMocks: func(s *StoreMock) {
				s.On("SetSession", mock.Anything, (*time.Time)(nil)).Return(nil).Once()
			},
			want: true,
		},
		{
			name:       "wrong password",
			email:      AdminEmail,
			password:   "letmein",
			ttl:        24 * time.Hour,
			setupMocks: func(_ *StoreMock) {},
			want:       false,
		},
		{
			name:       "wrong email",
			email:      "someone@example.com",
			password:   "admin123",
			ttl:        24 * time.Hour,
			setupMocks: func(_ *StoreMock) {},
			want:       false,
		},
		{
			name:     "store failure is surfaced",
			email:    AdminEmail,
			password: "admin123",
			ttl:      24 * time.Hour,
			setupMocks: func(s *StoreMock) {
				s.On("SetSession", mock.Anything, mock.Anything).
					Return(errors.New("redis down")).Once()
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(StoreMock)
			gate := newTestGate(t, store, tt.ttl)

			tt.setupMocks(store)

			got, err := gate.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			store.AssertExpectations(t)
			if !tt.want && !tt.wantErr {
				// Неудачный вход не трогает хранилище
				store.AssertNotCalled(t, "SetSession", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestGate_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := new(StoreMock)
		gate := newTestGate(t, store, 24*time.Hour)

		store.On("ClearSession", mock.Anything).Return(nil).Once()

		require.NoError(t, gate.Logout(context.Background()))
		store.AssertExpectations(t)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		store := new(StoreMock)
		gate := newTestGate(t, store, 24*time.Hour)

		store.On("ClearSession", mock.Anything).Return(errors.New("fs down")).Once()

		assert.Error(t, gate.Logout(context.Background()))
	})
}

func TestGate_IsLoggedIn(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Minute)

	tests := []struct {
		name       string
		setupMocks func(s *StoreMock)
		want       bool
		wantErr    bool
	}{
		{
			name: "active session with future expiry",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(true, &future, nil).Once()
			},
			want: true,
		},
		{
			name: "active session without expiry",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(true, nil, nil).Once()
			},
			want: true,
		},
		{
			name: "no session",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(false, nil, nil).Once()
			},
			want: false,
		},
		{
			name: "expired session is cleared lazily",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(true, &past, nil).Once()
				s.On("ClearSession", mock.Anything).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "expired session reported even if cleanup fails",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(true, &past, nil).Once()
				s.On("ClearSession", mock.Anything).Return(errors.New("fs down")).Once()
			},
			want: false,
		},
		{
			name: "store failure is surfaced",
			setupMocks: func(s *StoreMock) {
				s.On("GetSession", mock.Anything).Return(false, nil, errors.New("redis down")).Once()
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(StoreMock)
			gate := newTestGate(t, store, 24*time.Hour)
			gate.now = func() time.Time { return now }

			tt.setupMocks(store)

			got, err := gate.IsLoggedIn(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			store.AssertExpectations(t)
		})
	}
}
