package pricing

import (
	"fmt"
	"math"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

var zones = []struct {
	maxKm       float64
	description string
}{
	{3, "central area, fast delivery"},
	{7, "urban area, standard delivery"},
	{15, "metropolitan area, extended delivery"},
	{math.Inf(1), "rural area, special delivery"},
}

// GetDeliveryZone classifies a distance. Upper bounds are inclusive.
func GetDeliveryZone(distanceKm float64) models.DeliveryZone {
	for i, z := range zones {
		if distanceKm <= z.maxKm || i == len(zones)-1 {
			return models.DeliveryZone{
				Zone:          i + 1,
				ZoneLabel:     fmt.Sprintf("Zone %d", i+1),
				Description:   z.description,
				MaxDistanceKm: z.maxKm,
			}
		}
	}
	// unreachable, the last zone is unbounded
	return models.DeliveryZone{}
}
