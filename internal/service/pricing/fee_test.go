package pricing

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

func TestCalculateDeliveryFee(t *testing.T) {
	cfg := models.DefaultPricingConfig()

	tests := []struct {
		km   float64
		want float64
	}{
		{0, 7.00},
		{0.0717, 7.00},
		{1, 7.50},
		{2, 10.00},
		{4.123, 15.31},
		{8, 25.00},
		{1000, 25.00},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateDeliveryFee(tt.km, cfg), "distance %v", tt.km)
	}
}

func TestCalculateDeliveryFee_TimeBasedMultiplier(t *testing.T) {
	m := 2.0
	cfg := models.DefaultPricingConfig()
	cfg.TimeBasedMultiplier = &m

	assert.Equal(t, 20.00, CalculateDeliveryFee(2, cfg))
	assert.Equal(t, 25.00, CalculateDeliveryFee(5, cfg))
}

func TestCalculateDeliveryFee_StaysWithinBounds(t *testing.T) {
	configs := []models.PricingConfig{
		models.DefaultPricingConfig(),
		{BaseFee: 0, PerKmRate: 0, MinimumFee: 3, MaximumFee: 3},
		{BaseFee: 12.5, PerKmRate: 0.99, MinimumFee: 0, MaximumFee: 40},
		{BaseFee: 1, PerKmRate: 10, MinimumFee: 9.99, MaximumFee: 150},
	}

	for _, cfg := range configs {
		for km := 0.0; km <= 1000; km += 0.37 {
			fee := CalculateDeliveryFee(km, cfg)
			require.GreaterOrEqual(t, fee, cfg.MinimumFee, "cfg %+v km %v", cfg, km)
			require.LessOrEqual(t, fee, cfg.MaximumFee, "cfg %+v km %v", cfg, km)
		}
	}
}

func TestCalculateDeliveryFee_Monotonic(t *testing.T) {
	cfg := models.DefaultPricingConfig()

	prev := CalculateDeliveryFee(0, cfg)
	for km := 0.01; km <= 50; km += 0.01 {
		fee := CalculateDeliveryFee(km, cfg)
		require.GreaterOrEqual(t, fee, prev, "km %v", km)
		prev = fee
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{7.005, 7.01},
		{2.675, 2.68},
		{0.0717, 0.07},
		{25, 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "round %v", tt.in)
	}
}

func TestGetDeliveryZone(t *testing.T) {
	tests := []struct {
		km   float64
		zone int
	}{
		{0, 1},
		{3.0, 1},
		{3.01, 2},
		{7.0, 2},
		{7.01, 3},
		{15.0, 3},
		{15.01, 4},
		{250, 4},
	}

	for _, tt := range tests {
		z := GetDeliveryZone(tt.km)
		assert.Equal(t, tt.zone, z.Zone, "distance %v", tt.km)
	}

	z := GetDeliveryZone(1)
	assert.Equal(t, "Zone 1", z.ZoneLabel)
	assert.Equal(t, "central area, fast delivery", z.Description)
	assert.Equal(t, 3.0, z.MaxDistanceKm)

	z = GetDeliveryZone(40)
	assert.Equal(t, "rural area, special delivery", z.Description)
	assert.True(t, math.IsInf(z.MaxDistanceKm, 1))
}

func TestDeliveryZone_JSONUnboundedLimit(t *testing.T) {
	raw, err := json.Marshal(GetDeliveryZone(40))
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":4,"zone_label":"Zone 4","description":"rural area, special delivery","max_distance_km":null}`, string(raw))

	raw, err = json.Marshal(GetDeliveryZone(5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":2,"zone_label":"Zone 2","description":"urban area, standard delivery","max_distance_km":7}`, string(raw))
}

func TestApplySurgePricing(t *testing.T) {
	tests := []struct {
		name       string
		hour       int
		day        time.Weekday
		multiplier float64
		reason     string
	}{
		{"saturday evening prefers weekend over dinner", 19, time.Saturday, 1.5, ReasonWeekend},
		{"friday dinner is weekend", 18, time.Friday, 1.5, ReasonWeekend},
		{"friday 23h is weekend", 23, time.Friday, 1.5, ReasonWeekend},
		{"wednesday noon", 12, time.Wednesday, 1.2, ReasonLunch},
		{"friday lunch", 14, time.Friday, 1.2, ReasonLunch},
		{"monday dinner", 19, time.Monday, 1.3, ReasonDinner},
		{"thursday 21h", 21, time.Thursday, 1.3, ReasonDinner},
		{"tuesday 3am", 3, time.Tuesday, 1.4, ReasonLateNight},
		{"wednesday 22h", 22, time.Wednesday, 1.4, ReasonLateNight},
		{"sunday 23h", 23, time.Sunday, 1.4, ReasonLateNight},
		{"tuesday 9am", 9, time.Tuesday, 1.0, ReasonNormal},
		{"sunday dinner", 19, time.Sunday, 1.0, ReasonNormal},
		{"saturday lunch", 12, time.Saturday, 1.0, ReasonNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySurgePricing(10.00, tt.hour, tt.day)
			assert.Equal(t, tt.multiplier, got.Multiplier)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, Round2(10*tt.multiplier), got.Fee)
		})
	}
}

func TestApplySurgePricing_RoundsFee(t *testing.T) {
	got := ApplySurgePricing(7.33, 12, time.Monday)
	assert.Equal(t, 8.80, got.Fee)
}

func TestApplySurgePricingAt(t *testing.T) {
	sat := time.Date(2026, time.January, 10, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.5, ApplySurgePricingAt(10, sat).Multiplier)

	tue := time.Date(2026, time.January, 6, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, 1.0, ApplySurgePricingAt(10, tue).Multiplier)
}
