package googlemaps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestNewRouteService_RequiresKey(t *testing.T) {
	_, err := NewRouteService("", time.Second)
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)
}

func TestMatrix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/distancematrix/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","rows":[
			{"elements":[{"status":"OK","distance":{"value":0,"text":"1 m"},"duration":{"value":0,"text":"1 min"}},
			             {"status":"OK","distance":{"value":120,"text":"0.1 km"},"duration":{"value":30,"text":"1 min"}}]},
			{"elements":[{"status":"OK","distance":{"value":118,"text":"0.1 km"},"duration":{"value":28,"text":"1 min"}},
			             {"status":"OK","distance":{"value":0,"text":"1 m"},"duration":{"value":0,"text":"1 min"}}]}]}`))
	}))
	defer srv.Close()

	s, err := NewRouteService("key", time.Second, maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	m, err := s.Matrix(context.Background(), []models.GeoPoint{
		{Latitude: -11.8139, Longitude: -37.6132},
		{Latitude: -11.8135, Longitude: -37.6135},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 120}, {118, 0}}, m.Distances)
	assert.Equal(t, [][]float64{{0, 30}, {28, 0}}, m.Durations)
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"R. Floriano Peixoto, Conde - BA, Brasil"}]}`))
	}))
	defer srv.Close()

	s, err := NewRouteService("key", time.Second, maps.WithBaseURL(srv.URL))
	require.NoError(t, err)

	addr, err := s.Reverse(context.Background(), models.GeoPoint{Latitude: -11.8139, Longitude: -37.6132})
	require.NoError(t, err)
	assert.Equal(t, "R. Floriano Peixoto, Conde - BA, Brasil", addr)
}
