package dto

import (
	"strings"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

// PricingSettingsRequest replaces every administrable setting at once.
type PricingSettingsRequest struct {
	BaseFee      *float64 `json:"base_fee"`
	PerKmRate    *float64 `json:"per_km_rate"`
	MinimumFee   *float64 `json:"minimum_fee"`
	MaximumFee   *float64 `json:"maximum_fee"`
	DefaultCity  string   `json:"default_city"`
	DefaultState string   `json:"default_state"`
}

func (r *PricingSettingsRequest) Validate(v *validator.Validator) {
	checkAmount(v, "base_fee", r.BaseFee)
	checkAmount(v, "per_km_rate", r.PerKmRate)
	checkAmount(v, "minimum_fee", r.MinimumFee)
	checkAmount(v, "maximum_fee", r.MaximumFee)
	if r.MinimumFee != nil && r.MaximumFee != nil {
		v.Check(*r.MinimumFee <= *r.MaximumFee, "minimum_fee", "must not exceed maximum_fee")
	}

	v.Check(strings.TrimSpace(r.DefaultCity) != "", "default_city", "must be provided")
	v.Check(len(r.DefaultCity) <= 100, "default_city", "must not be more than 100 characters long")
	v.Check(strings.TrimSpace(r.DefaultState) != "", "default_state", "must be provided")
	v.Check(len(r.DefaultState) <= 50, "default_state", "must not be more than 50 characters long")
}

// ToModel must be called on a validated request.
func (r *PricingSettingsRequest) ToModel() models.PricingSettings {
	return models.PricingSettings{
		Config: models.PricingConfig{
			BaseFee:    *r.BaseFee,
			PerKmRate:  *r.PerKmRate,
			MinimumFee: *r.MinimumFee,
			MaximumFee: *r.MaximumFee,
		},
		Locality: models.Locality{
			City:  strings.TrimSpace(r.DefaultCity),
			State: strings.TrimSpace(r.DefaultState),
		},
	}
}

func checkAmount(v *validator.Validator, key string, value *float64) {
	v.Check(value != nil, key, "must be provided")
	if value != nil {
		CheckAmount(v, key, *value)
	}
}
