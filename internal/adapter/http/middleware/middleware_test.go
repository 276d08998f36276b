package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

type fakeAuth struct {
	users map[string]*models.User
}

func (f fakeAuth) RoleCheck(_ context.Context, token string) (*models.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, types.ErrInvalidToken
}

func newTestMiddleware() *Middleware {
	return NewMiddleware(fakeAuth{users: map[string]*models.User{
		"admin-token":    {ID: "u-1", Role: types.RoleAdmin},
		"merchant-token": {ID: "u-2", Role: types.RoleMerchant},
	}}, logger.New(io.Discard, "test", logger.LevelError))
}

func TestAuth(t *testing.T) {
	m := newTestMiddleware()

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = models.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		header    string
		code      int
		anonymous bool
		userID    string
	}{
		{"no header is anonymous", "", http.StatusNoContent, true, ""},
		{"valid token", "Bearer admin-token", http.StatusNoContent, false, "u-1"},
		{"scheme is case insensitive", "bearer merchant-token", http.StatusNoContent, false, "u-2"},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, false, ""},
		{"wrong scheme", "Basic admin-token", http.StatusUnauthorized, false, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusNoContent {
				assert.Nil(t, seen)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.anonymous, seen.IsAnonymous())
			assert.Equal(t, tt.userID, seen.ID)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	m := newTestMiddleware()

	handler := m.Auth(m.RequireRoles(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, types.RoleAdmin))

	tests := []struct {
		header string
		code   int
	}{
		{"", http.StatusUnauthorized},
		{"Bearer merchant-token", http.StatusForbidden},
		{"Bearer admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/pricing", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, tt.code, rec.Code, tt.header)
	}
}

func TestRequestID(t *testing.T) {
	m := newTestMiddleware()

	var seen string
	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
}

func TestRecover(t *testing.T) {
	m := newTestMiddleware()

	handler := m.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
}

func TestLoggingAndMetrics_KeepStatus(t *testing.T) {
	m := newTestMiddleware()

	handler := m.Logging(m.Metrics("test-service")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/delivery/zone", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriters_Hijack(t *testing.T) {
	// httptest.ResponseRecorder is not a hijacker
	lw := &responseWriterWrapper{ResponseWriter: httptest.NewRecorder()}
	_, _, err := lw.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)

	mw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _, err = mw.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)
}
