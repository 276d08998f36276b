package pricing

import (
	"math"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

// CalculateDeliveryFee is base fee plus distance rate, clamped to [minimum, maximum]
// and rounded half-up to cents. A configured time based multiplier applies before clamping.
func CalculateDeliveryFee(distanceKm float64, cfg models.PricingConfig) float64 {
	fee := cfg.BaseFee + distanceKm*cfg.PerKmRate

	if m := cfg.TimeBasedMultiplier; m != nil && *m > 0 {
		fee *= *m
	}

	fee = math.Min(math.Max(fee, cfg.MinimumFee), cfg.MaximumFee)

	return Round2(fee)
}

// Round2 rounds half-up to two decimals. The epsilon absorbs binary
// representation error, so 7.005 becomes 7.01.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5+1e-9) / 100
}
