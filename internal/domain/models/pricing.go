package models

import (
	"encoding/json"
	"math"
	"time"
)

// Setting keys read from the settings store
const (
	SettingBaseFee      = "delivery_base_fee"
	SettingPerKmRate    = "delivery_per_km_rate"
	SettingMinimumFee   = "delivery_minimum_fee"
	SettingMaximumFee   = "delivery_maximum_fee"
	SettingDefaultCity  = "default_city"
	SettingDefaultState = "default_state"
)

// Fallback values used when a setting is absent or unparsable.
const (
	DefaultBaseFee    = 5.00
	DefaultPerKmRate  = 2.50
	DefaultMinimumFee = 7.00
	DefaultMaximumFee = 25.00

	DefaultCity  = "Conde"
	DefaultState = "BA"
)

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PricingConfig struct {
	BaseFee             float64  `json:"base_fee"`
	PerKmRate           float64  `json:"per_km_rate"`
	MinimumFee          float64  `json:"minimum_fee"`
	MaximumFee          float64  `json:"maximum_fee"`
	TimeBasedMultiplier *float64 `json:"time_based_multiplier,omitempty"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaseFee:    DefaultBaseFee,
		PerKmRate:  DefaultPerKmRate,
		MinimumFee: DefaultMinimumFee,
		MaximumFee: DefaultMaximumFee,
	}
}

// Locality is the default city/state used to complete partial addresses.
type Locality struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// PricingSettings is the administrable part of the settings store.
type PricingSettings struct {
	Config   PricingConfig `json:"config"`
	Locality Locality      `json:"locality"`
}

// DeliveryRequest is the input of the fee calculation pipeline.
type DeliveryRequest struct {
	PickupAddress      string `json:"pickup_address"`
	DeliveryAddress    string `json:"delivery_address"`
	PickupPostalCode   string `json:"pickup_postal_code,omitempty"`
	DeliveryPostalCode string `json:"delivery_postal_code,omitempty"`
}

type DistanceResult struct {
	DistanceKm           float64 `json:"distance_km"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	DeliveryFee          float64 `json:"delivery_fee"`
}

// DeliveryZone is a static classification of a distance.
// MaxDistanceKm is +Inf for the outermost zone.
type DeliveryZone struct {
	Zone          int     `json:"zone"`
	ZoneLabel     string  `json:"zone_label"`
	Description   string  `json:"description"`
	MaxDistanceKm float64 `json:"-"`
}

// MarshalJSON encodes an unbounded zone limit as null.
func (z DeliveryZone) MarshalJSON() ([]byte, error) {
	type zone DeliveryZone

	var limit *float64
	if !math.IsInf(z.MaxDistanceKm, 1) {
		limit = &z.MaxDistanceKm
	}

	return json.Marshal(struct {
		zone
		MaxDistanceKm *float64 `json:"max_distance_km"`
	}{zone(z), limit})
}

type SurgeResult struct {
	Fee        float64 `json:"fee"`
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
}

// DeliveryQuote combines the fee pipeline with zone and surge information.
type DeliveryQuote struct {
	ID       string         `json:"id"`
	Pickup   GeoPoint       `json:"pickup"`
	Delivery GeoPoint       `json:"delivery"`
	Result   DistanceResult `json:"result"`
	Zone     DeliveryZone   `json:"zone"`
	Surge    SurgeResult    `json:"surge"`
	QuotedAt time.Time      `json:"quoted_at"`
}
