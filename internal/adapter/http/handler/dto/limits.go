package dto

import (
	"fmt"

	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

// Upper bounds keep computed fees finite so they can always be encoded as JSON.
const (
	MaxAmount     = 1_000_000.0
	MaxDistanceKm = 50_000.0
)

// CheckAmount accepts a finite monetary value in [0, MaxAmount]. NaN and infinities fail.
func CheckAmount(v *validator.Validator, key string, value float64) {
	v.Check(validator.InRange(value, 0, MaxAmount), key, fmt.Sprintf("must be between 0 and %.0f", MaxAmount))
}

// CheckDistance accepts a finite distance in [0, MaxDistanceKm]. NaN and infinities fail.
func CheckDistance(v *validator.Validator, key string, value float64) {
	v.Check(validator.InRange(value, 0, MaxDistanceKm), key, fmt.Sprintf("must be between 0 and %.0f", MaxDistanceKm))
}
