package calculator

import (
	"math"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

const (
	earthRadiusKm = 6371

	// RoadFactor approximates the extra length of urban road network over a straight line.
	RoadFactor = 1.3

	deliverySpeedKmh = 25 // average urban delivery speed including stops
	bufferPerKmMin   = 2
	maxBufferMin     = 15
)

type CalculatorImpl struct{}

func New() *CalculatorImpl {
	return &CalculatorImpl{}
}

// Haversine returns great-circle distance between two points in kilometers.
func Haversine(p1, p2 models.GeoPoint) float64 {
	lat1Rad := p1.Latitude * math.Pi / 180
	lat2Rad := p2.Latitude * math.Pi / 180

	diffLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	diffLon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(diffLon/2), 2)
	angle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * angle
}

// Distance is the straight-line distance in kilometers.
func (c *CalculatorImpl) Distance(p1, p2 models.GeoPoint) float64 {
	return Haversine(p1, p2)
}

func (c *CalculatorImpl) RoadDistance(straightKm float64) float64 {
	return straightKm * RoadFactor
}

// TravelTime estimates delivery time in whole minutes: driving time at the average
// delivery speed plus a preparation buffer of 2 min/km capped at 15 minutes.
func (c *CalculatorImpl) TravelTime(correctedKm float64) int {
	if correctedKm <= 0 {
		return 0
	}
	base := correctedKm / deliverySpeedKmh * 60
	buffer := math.Min(correctedKm*bufferPerKmMin, maxBufferMin)
	return int(math.Round(base + buffer))
}

func (c *CalculatorImpl) Estimate(p1, p2 models.GeoPoint) (float64, int) {
	corrected := c.RoadDistance(c.Distance(p1, p2))
	return corrected, c.TravelTime(corrected)
}
