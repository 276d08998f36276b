package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/delivery-pricing/config"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/internal/service/pricing"
	"github.com/Temutjin2k/delivery-pricing/internal/service/routing"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	ws "github.com/Temutjin2k/delivery-pricing/pkg/wsHub"
)

type stubPricing struct{}

func (stubPricing) CalculateDeliveryDistance(context.Context, models.DeliveryRequest) (*models.DistanceResult, error) {
	return &models.DistanceResult{DistanceKm: 2.6, EstimatedTimeMinutes: 11, DeliveryFee: 11.5}, nil
}

func (stubPricing) Quote(context.Context, models.DeliveryRequest) (*models.DeliveryQuote, error) {
	return &models.DeliveryQuote{ID: "q-1"}, nil
}

func (stubPricing) SurgeNow(baseFee float64) models.SurgeResult {
	return pricing.ApplySurgePricing(baseFee, 9, 2)
}

func (stubPricing) GetPricingSettings(context.Context) models.PricingSettings {
	return models.PricingSettings{Config: models.DefaultPricingConfig()}
}

func (stubPricing) UpdatePricingSettings(context.Context, models.PricingSettings) error {
	return nil
}

type stubGeocoder struct{}

func (stubGeocoder) Resolve(context.Context, string, string) (models.Resolution, error) {
	return models.Resolution{Source: types.SourceDefaultCity}, nil
}

type stubAuth struct{}

func (stubAuth) RoleCheck(_ context.Context, token string) (*models.User, error) {
	if token == "admin" {
		return &models.User{ID: "1", Role: types.RoleAdmin}, nil
	}
	return nil, types.ErrInvalidToken
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	l := logger.New(io.Discard, "test", logger.LevelError)
	cfg := config.Config{Mode: types.PricingService, Server: config.ServerConfig{Port: "0"}}

	api, err := New(cfg, Services{
		Pricing:  stubPricing{},
		Admin:    stubPricing{},
		Geocoder: stubGeocoder{},
		Routing:  routing.NewService(nil, 0, l),
		Auth:     stubAuth{},
	}, ws.NewConnHub(l), l)
	require.NoError(t, err)

	return api.Handler()
}

func TestNew_Validation(t *testing.T) {
	l := logger.New(io.Discard, "test", logger.LevelError)

	_, err := New(config.Config{Mode: types.PricingService}, Services{}, ws.NewConnHub(l), l)
	assert.Error(t, err)

	_, err = New(config.Config{Mode: "ride-service"}, Services{Auth: stubAuth{}}, ws.NewConnHub(l), l)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	h := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		token  string
		code   int
	}{
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"distance", http.MethodPost, "/v1/delivery/distance", `{"pickup_address":"a","delivery_address":"b"}`, "", http.StatusOK},
		{"distance wrong method", http.MethodGet, "/v1/delivery/distance", "", "", http.StatusMethodNotAllowed},
		{"quote", http.MethodPost, "/v1/delivery/quote", `{"pickup_address":"a","delivery_address":"b"}`, "", http.StatusOK},
		{"zone", http.MethodGet, "/v1/delivery/zone?distance_km=2", "", "", http.StatusOK},
		{"surge", http.MethodGet, "/v1/delivery/surge?base_fee=10", "", "", http.StatusOK},
		{"geocode", http.MethodPost, "/v1/geocode", `{"address":"centro"}`, "", http.StatusOK},
		{"reverse without provider", http.MethodGet, "/v1/geocode/reverse?lat=1&lon=1", "", "", http.StatusNotFound},
		{"route estimated", http.MethodPost, "/v1/routes", `{"origin":{"latitude":1,"longitude":1},"destination":{"latitude":1.1,"longitude":1}}`, "", http.StatusOK},
		{"matrix estimated", http.MethodPost, "/v1/routes/matrix", `{"points":[{"latitude":1,"longitude":1},{"latitude":1.1,"longitude":1}]}`, "", http.StatusOK},
		{"nearest", http.MethodPost, "/v1/deliverers/nearest", `{"pickup":{"latitude":1,"longitude":1},"candidates":[{"id":"a","location":{"latitude":1,"longitude":1}}]}`, "", http.StatusOK},
		{"admin anonymous", http.MethodGet, "/v1/admin/pricing", "", "", http.StatusUnauthorized},
		{"admin bad token", http.MethodGet, "/v1/admin/pricing", "", "nope", http.StatusUnauthorized},
		{"admin", http.MethodGet, "/v1/admin/pricing", "", "admin", http.StatusOK},
		{"admin update", http.MethodPut, "/v1/admin/pricing", `{"base_fee":5,"per_km_rate":2.5,"minimum_fee":7,"maximum_fee":25,"default_city":"Conde","default_state":"BA"}`, "admin", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"unknown", http.MethodGet, "/v1/unknown", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Delivery Pricing API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/v1/delivery/distance")
	assert.Contains(t, doc.Paths, "/v1/admin/pricing")
}
