package routing

import (
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/service/pricing"
)

const (
	DefaultBaseFare = 5.00
	DefaultPerKm    = 2.50
)

// CalculateDeliveryPrice is a linear price over a routed distance.
// Unlike pricing.CalculateDeliveryFee it is not clamped to minimum and maximum fees.
func CalculateDeliveryPrice(distanceMeters int, baseFare, perKm float64) models.DeliveryPrice {
	km := float64(distanceMeters) / 1000

	return models.DeliveryPrice{
		DistanceKm:   pricing.Round2(km),
		BaseFare:     pricing.Round2(baseFare),
		DistanceFare: pricing.Round2(km * perKm),
		TotalFare:    pricing.Round2(baseFare + km*perKm),
	}
}
