package routing

import (
	"context"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

// Provider is an external routing API (OpenRouteService, Google Maps).
type Provider interface {
	Directions(ctx context.Context, origin, destination models.GeoPoint) (models.RouteData, error)
	Matrix(ctx context.Context, points []models.GeoPoint) (models.DistanceMatrix, error)
	Reverse(ctx context.Context, p models.GeoPoint) (string, error)
}
