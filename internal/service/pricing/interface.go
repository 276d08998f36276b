package pricing

import (
	"context"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

type SettingsRepo interface {
	GetSettings(ctx context.Context, keys ...string) (map[string]models.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address, postalCode string) (models.GeoPoint, error)
}

type Estimator interface {
	Estimate(p1, p2 models.GeoPoint) (correctedKm float64, minutes int)
}

type QuotePublisher interface {
	PublishQuoteCalculated(ctx context.Context, evt models.QuoteCalculatedEvent) error
}
