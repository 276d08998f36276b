package geocoder

import (
	"context"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

type ForwardGeocoder interface {
	Search(ctx context.Context, query string) (models.GeoPoint, error)
}

type PostalLookup interface {
	Lookup(ctx context.Context, cep string) (models.PostalAddress, error)
}

type SettingsReader interface {
	GetSettings(ctx context.Context, keys ...string) (map[string]models.Setting, error)
}
