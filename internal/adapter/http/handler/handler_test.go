package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, "test", logger.LevelError)
}

type fakePricing struct {
	result *models.DistanceResult
	quote  *models.DeliveryQuote
	err    error
	surge  models.SurgeResult

	got models.DeliveryRequest
}

func (f *fakePricing) CalculateDeliveryDistance(_ context.Context, req models.DeliveryRequest) (*models.DistanceResult, error) {
	f.got = req
	return f.result, f.err
}

func (f *fakePricing) Quote(_ context.Context, req models.DeliveryRequest) (*models.DeliveryQuote, error) {
	f.got = req
	return f.quote, f.err
}

func (f *fakePricing) SurgeNow(baseFee float64) models.SurgeResult {
	return f.surge
}

func do(t *testing.T, h http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestDelivery_CalculateDistance(t *testing.T) {
	svc := &fakePricing{result: &models.DistanceResult{DistanceKm: 0.07, EstimatedTimeMinutes: 0, DeliveryFee: 7}}
	h := NewDelivery(svc, testLogger())

	rec, out := do(t, h.CalculateDistance, http.MethodPost, "/v1/delivery/distance",
		`{"pickup_address":"Rua Floriano Peixoto","delivery_address":"Rua da Vila","delivery_postal_code":"48300-000"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 0.07, out["distance_km"])
	assert.Equal(t, float64(0), out["estimated_time_minutes"])
	assert.Equal(t, float64(7), out["delivery_fee"])
	assert.Equal(t, "48300-000", svc.got.DeliveryPostalCode)
}

func TestDelivery_CalculateDistance_NotFound(t *testing.T) {
	err := fmt.Errorf("pickup address: %w: %w", types.ErrNotFound, errors.New("nominatim: 503"))
	h := NewDelivery(&fakePricing{err: err}, testLogger())

	rec, out := do(t, h.CalculateDistance, http.MethodPost, "/v1/delivery/distance",
		`{"pickup_address":"x","delivery_address":"y"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, messageNoPrice, out["error"])
}

func TestDelivery_CalculateDistance_BadInput(t *testing.T) {
	h := NewDelivery(&fakePricing{}, testLogger())

	tests := []struct {
		name string
		body string
		code int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"malformed", `{"pickup_address":`, http.StatusBadRequest},
		{"unknown field", `{"pickup_address":"a","delivery_address":"b","tip":1}`, http.StatusBadRequest},
		{"two values", `{"pickup_address":"a","delivery_address":"b"}{}`, http.StatusBadRequest},
		{"blank pickup", `{"pickup_address":"  ","delivery_address":"b"}`, http.StatusUnprocessableEntity},
		{"missing delivery", `{"pickup_address":"a"}`, http.StatusUnprocessableEntity},
		{"long address", `{"pickup_address":"` + strings.Repeat("a", 256) + `","delivery_address":"b"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := do(t, h.CalculateDistance, http.MethodPost, "/v1/delivery/distance", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, out, "error")
		})
	}
}

func TestDelivery_Quote(t *testing.T) {
	quote := &models.DeliveryQuote{
		ID:     "q-1",
		Result: models.DistanceResult{DistanceKm: 4.2, EstimatedTimeMinutes: 18, DeliveryFee: 15.5},
		Surge:  models.SurgeResult{Fee: 18.6, Multiplier: 1.2, Reason: "lunch rush"},
	}
	h := NewDelivery(&fakePricing{quote: quote}, testLogger())

	rec, out := do(t, h.Quote, http.MethodPost, "/v1/delivery/quote",
		`{"pickup_address":"a","delivery_address":"b"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := out["quote"].(map[string]any)
	assert.Equal(t, "q-1", got["id"])
	assert.Equal(t, 1.2, got["surge"].(map[string]any)["multiplier"])
}

func TestDelivery_Zone(t *testing.T) {
	h := NewDelivery(&fakePricing{}, testLogger())

	rec, out := do(t, h.Zone, http.MethodGet, "/v1/delivery/zone?distance_km=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	zone := out["zone"].(map[string]any)
	assert.Equal(t, float64(3), zone["zone"])
	assert.Equal(t, "Zone 3", zone["zone_label"])
	assert.Equal(t, float64(15), zone["max_distance_km"])

	rec, out = do(t, h.Zone, http.MethodGet, "/v1/delivery/zone?distance_km=120", "")
	require.Equal(t, http.StatusOK, rec.Code)
	zone = out["zone"].(map[string]any)
	assert.Equal(t, float64(4), zone["zone"])
	assert.Nil(t, zone["max_distance_km"])

	rec, _ = do(t, h.Zone, http.MethodGet, "/v1/delivery/zone", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, h.Zone, http.MethodGet, "/v1/delivery/zone?distance_km=-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, h.Zone, http.MethodGet, "/v1/delivery/zone?distance_km=far", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// values that parse as floats but cannot be classified or encoded
	for _, v := range []string{"Inf", "+Inf", "NaN", "1e300"} {
		rec, out := do(t, h.Zone, http.MethodGet, "/v1/delivery/zone?distance_km="+url.QueryEscape(v), "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, v)
		assert.Contains(t, out["error"], "distance_km", v)
	}
}

func TestDelivery_Surge(t *testing.T) {
	svc := &fakePricing{surge: models.SurgeResult{Fee: 10, Multiplier: 1, Reason: "normal pricing"}}
	h := NewDelivery(svc, testLogger())

	t.Run("explicit time", func(t *testing.T) {
		rec, out := do(t, h.Surge, http.MethodGet, "/v1/delivery/surge?base_fee=10&hour=19&day=5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		surge := out["surge"].(map[string]any)
		assert.Equal(t, float64(15), surge["fee"])
		assert.Equal(t, 1.5, surge["multiplier"])
		assert.Equal(t, "weekend high demand", surge["reason"])
	})

	t.Run("current time", func(t *testing.T) {
		rec, out := do(t, h.Surge, http.MethodGet, "/v1/delivery/surge?base_fee=10", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "normal pricing", out["surge"].(map[string]any)["reason"])
	})

	invalid := []string{
		"/v1/delivery/surge?hour=3&day=1",
		"/v1/delivery/surge?base_fee=10&hour=3",
		"/v1/delivery/surge?base_fee=10&day=3",
		"/v1/delivery/surge?base_fee=10&hour=24&day=1",
		"/v1/delivery/surge?base_fee=10&hour=1&day=7",
		"/v1/delivery/surge?base_fee=-1",
		"/v1/delivery/surge?base_fee=Inf",
		"/v1/delivery/surge?base_fee=NaN",
		"/v1/delivery/surge?base_fee=1e300&hour=19&day=5",
		"/v1/delivery/surge?base_fee=1e300",
	}
	for _, target := range invalid {
		rec, _ := do(t, h.Surge, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
	}

	rec, _ := do(t, h.Surge, http.MethodGet, "/v1/delivery/surge?base_fee=10&hour=noon&day=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeGeocoder struct {
	res models.Resolution
	err error
}

func (f fakeGeocoder) Resolve(context.Context, string, string) (models.Resolution, error) {
	return f.res, f.err
}

type fakeReverse struct {
	address string
}

func (f fakeReverse) ReverseGeocode(context.Context, models.GeoPoint) (string, bool) {
	return f.address, f.address != ""
}

func TestGeocode_Resolve(t *testing.T) {
	res := models.Resolution{
		Point:  models.GeoPoint{Latitude: -11.8139, Longitude: -37.6132},
		Source: types.SourceStaticTable,
		Attempts: []models.GeocodeAttempt{
			{Source: types.SourceFullAddress, Reason: "no results"},
			{Source: types.SourceStaticTable, OK: true},
		},
	}
	h := NewGeocode(fakeGeocoder{res: res}, fakeReverse{}, testLogger())

	rec, out := do(t, h.Resolve, http.MethodPost, "/v1/geocode", `{"address":"Rua Floriano Peixoto"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := out["resolution"].(map[string]any)
	assert.Equal(t, "static_table", got["source"])
	assert.Len(t, got["attempts"], 2)

	rec, _ = do(t, h.Resolve, http.MethodPost, "/v1/geocode", `{"address":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	h = NewGeocode(fakeGeocoder{err: types.ErrNotFound}, fakeReverse{}, testLogger())
	rec, _ = do(t, h.Resolve, http.MethodPost, "/v1/geocode", `{"address":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeocode_Reverse(t *testing.T) {
	h := NewGeocode(fakeGeocoder{}, fakeReverse{address: "Praça da Matriz, Conde"}, testLogger())

	rec, out := do(t, h.Reverse, http.MethodGet, "/v1/geocode/reverse?lat=-11.81&lon=-37.61", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Praça da Matriz, Conde", out["result"].(map[string]any)["address"])

	rec, _ = do(t, h.Reverse, http.MethodGet, "/v1/geocode/reverse?lat=91&lon=0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, h.Reverse, http.MethodGet, "/v1/geocode/reverse?lat=1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	h = NewGeocode(fakeGeocoder{}, fakeReverse{}, testLogger())
	rec, _ = do(t, h.Reverse, http.MethodGet, "/v1/geocode/reverse?lat=1&lon=1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeRouting struct {
	route   models.RouteData
	matrix  models.DistanceMatrix
	nearest *models.NearestDeliverer

	points     []models.GeoPoint
	candidates []models.Deliverer
}

func (f *fakeRouting) Route(context.Context, models.GeoPoint, models.GeoPoint) models.RouteData {
	return f.route
}

func (f *fakeRouting) CalculateDistanceMatrix(_ context.Context, points []models.GeoPoint) models.DistanceMatrix {
	f.points = points
	return f.matrix
}

func (f *fakeRouting) FindNearestDeliverer(_ context.Context, _ models.GeoPoint, candidates []models.Deliverer) *models.NearestDeliverer {
	f.candidates = candidates
	return f.nearest
}

func TestRouting_Route(t *testing.T) {
	svc := &fakeRouting{route: models.RouteData{DistanceMeters: 4000, DurationSeconds: 480, Geometry: [][2]float64{{0, 0}, {1, 1}}}}
	h := NewRouting(svc, testLogger())

	body := `{"origin":{"latitude":-11.81,"longitude":-37.61},"destination":{"latitude":-11.85,"longitude":-37.62}}`
	rec, out := do(t, h.Route, http.MethodPost, "/v1/routes", body)
	require.Equal(t, http.StatusOK, rec.Code)

	price := out["result"].(map[string]any)["price"].(map[string]any)
	assert.Equal(t, float64(4), price["distance_km"])
	assert.Equal(t, float64(5), price["base_fare"])
	assert.Equal(t, float64(10), price["distance_fare"])
	assert.Equal(t, float64(15), price["total_fare"])

	body = `{"origin":{"latitude":-11.81,"longitude":-37.61},"destination":{"latitude":-11.85,"longitude":-37.62},"base_fare":3,"per_km":1}`
	rec, out = do(t, h.Route, http.MethodPost, "/v1/routes", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), out["result"].(map[string]any)["price"].(map[string]any)["total_fare"])
}

func TestRouting_Route_Validation(t *testing.T) {
	h := NewRouting(&fakeRouting{}, testLogger())

	rec, out := do(t, h.Route, http.MethodPost, "/v1/routes", `{"origin":{"latitude":-11.81},"destination":{"latitude":100,"longitude":0}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errs := out["error"].(map[string]any)
	assert.Contains(t, errs, "origin.longitude")
	assert.Contains(t, errs, "destination.latitude")

	rec, out = do(t, h.Route, http.MethodPost, "/v1/routes",
		`{"origin":{"latitude":1,"longitude":1},"destination":{"latitude":2,"longitude":2},"base_fare":1e300,"per_km":1e308}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs = out["error"].(map[string]any)
	assert.Contains(t, errs, "base_fare")
	assert.Contains(t, errs, "per_km")
}

func TestRouting_Matrix(t *testing.T) {
	svc := &fakeRouting{matrix: models.DistanceMatrix{Distances: [][]float64{{0, 10}, {10, 0}}, Estimated: true}}
	h := NewRouting(svc, testLogger())

	rec, out := do(t, h.Matrix, http.MethodPost, "/v1/routes/matrix",
		`{"points":[{"latitude":1,"longitude":2},{"latitude":3,"longitude":4}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["matrix"].(map[string]any)["estimated"])
	assert.Equal(t, []models.GeoPoint{{Latitude: 1, Longitude: 2}, {Latitude: 3, Longitude: 4}}, svc.points)

	rec, _ = do(t, h.Matrix, http.MethodPost, "/v1/routes/matrix", `{"points":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouting_Nearest(t *testing.T) {
	svc := &fakeRouting{nearest: &models.NearestDeliverer{ID: "d2", Name: "Bia", Distance: 120}}
	h := NewRouting(svc, testLogger())

	body := `{"pickup":{"latitude":1,"longitude":1},"candidates":[
		{"id":"d1","name":"Ana","location":{"latitude":2,"longitude":2}},
		{"id":"d2","name":"Bia","location":{"latitude":1.001,"longitude":1}}]}`
	rec, out := do(t, h.Nearest, http.MethodPost, "/v1/deliverers/nearest", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "d2", out["nearest"].(map[string]any)["id"])
	require.Len(t, svc.candidates, 2)
	assert.Equal(t, "d1", svc.candidates[0].ID)

	svc.nearest = nil
	rec, out = do(t, h.Nearest, http.MethodPost, "/v1/deliverers/nearest", `{"pickup":{"latitude":1,"longitude":1},"candidates":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, out["nearest"])

	rec, _ = do(t, h.Nearest, http.MethodPost, "/v1/deliverers/nearest", `{"pickup":{"latitude":1,"longitude":1},"candidates":[{"location":{"latitude":1,"longitude":1}}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

type fakeAdmin struct {
	settings models.PricingSettings
	err      error
	updated  *models.PricingSettings
}

func (f *fakeAdmin) GetPricingSettings(context.Context) models.PricingSettings {
	return f.settings
}

func (f *fakeAdmin) UpdatePricingSettings(_ context.Context, in models.PricingSettings) error {
	if f.err != nil {
		return f.err
	}
	f.updated = &in
	return nil
}

func TestAdmin_GetPricing(t *testing.T) {
	svc := &fakeAdmin{settings: models.PricingSettings{
		Config:   models.DefaultPricingConfig(),
		Locality: models.Locality{City: "Conde", State: "BA"},
	}}
	h := NewAdmin(svc, testLogger())

	rec, out := do(t, h.GetPricing, http.MethodGet, "/v1/admin/pricing", "")
	require.Equal(t, http.StatusOK, rec.Code)

	settings := out["settings"].(map[string]any)
	assert.Equal(t, float64(25), settings["config"].(map[string]any)["maximum_fee"])
	assert.Equal(t, "Conde", settings["locality"].(map[string]any)["city"])
}

func TestAdmin_UpdatePricing(t *testing.T) {
	svc := &fakeAdmin{}
	h := NewAdmin(svc, testLogger())

	body := `{"base_fee":6,"per_km_rate":3,"minimum_fee":8,"maximum_fee":30,"default_city":" Conde ","default_state":"BA"}`
	rec, _ := do(t, h.UpdatePricing, http.MethodPut, "/v1/admin/pricing", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, 30.0, svc.updated.Config.MaximumFee)
	assert.Equal(t, "Conde", svc.updated.Locality.City)

	rec, out := do(t, h.UpdatePricing, http.MethodPut, "/v1/admin/pricing",
		`{"base_fee":6,"per_km_rate":3,"minimum_fee":40,"maximum_fee":30,"default_city":"Conde","default_state":"BA"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, out["error"], "minimum_fee")

	rec, out = do(t, h.UpdatePricing, http.MethodPut, "/v1/admin/pricing", `{"base_fee":6}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, out["error"], "maximum_fee")
	assert.Contains(t, out["error"], "default_city")
}

func TestAdmin_UpdatePricing_ServiceError(t *testing.T) {
	body := `{"base_fee":6,"per_km_rate":3,"minimum_fee":8,"maximum_fee":30,"default_city":"Conde","default_state":"BA"}`

	h := NewAdmin(&fakeAdmin{err: fmt.Errorf("%w: bad", types.ErrInvalidPricingConfig)}, testLogger())
	rec, _ := do(t, h.UpdatePricing, http.MethodPut, "/v1/admin/pricing", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	h = NewAdmin(&fakeAdmin{err: errors.New("connection refused")}, testLogger())
	rec, out := do(t, h.UpdatePricing, http.MethodPut, "/v1/admin/pricing", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, out["error"], "connection refused")
}

func TestHealth(t *testing.T) {
	h := NewHealth("pricing-service", testLogger())

	rec, out := do(t, h.HealthCheck, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "available", out["status"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("op: %w", types.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", types.ErrNotFound, types.ErrInvalidAddress), http.StatusNotFound},
		{types.ErrInvalidPricingConfig, http.StatusUnprocessableEntity},
		{types.ErrInvalidToken, http.StatusUnauthorized},
		{types.ErrExternalService, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, GetCode(tt.err), tt.err.Error())
	}
}
