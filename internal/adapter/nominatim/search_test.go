package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "rua floriano peixoto, conde, ba, brasil", r.URL.Query().Get("q"))
		assert.Equal(t, "br", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-11.8139","lon":"-37.6132","display_name":"Rua Floriano Peixoto"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-agent", "br", time.Second)
	p, err := c.Search(context.Background(), "rua floriano peixoto, conde, ba, brasil")

	require.NoError(t, err)
	assert.Equal(t, -11.8139, p.Latitude)
	assert.Equal(t, -37.6132, p.Longitude)
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty result", status: http.StatusOK, body: `[]`, wantErr: types.ErrNoResults},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `slow down`, wantErr: types.ErrExternalService},
		{name: "bad json", status: http.StatusOK, body: `{`},
		{name: "bad latitude", status: http.StatusOK, body: `[{"lat":"x","lon":"1"}]`},
		{name: "out of range", status: http.StatusOK, body: `[{"lat":"100","lon":"1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, "ua", "br", time.Second).Search(context.Background(), "x")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSearch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "ua", "br", 20*time.Millisecond).Search(context.Background(), "x")
	assert.ErrorIs(t, err, types.ErrExternalService)
}
