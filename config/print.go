package config

import (
	"context"

	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

const masked = "******"

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return masked
}

// PrintConfig logs the effective configuration with secrets masked.
func PrintConfig(ctx context.Context, cfg *Config, log logger.Logger) {
	ctx = wrap.WithAction(ctx, "print_config")

	log.Info(ctx, "configuration loaded",
		"mode", cfg.Mode,
		"log_level", cfg.LogLevel,
		"server_port", cfg.Server.Port,
		"database", map[string]any{
			"host":      cfg.Database.Host,
			"port":      cfg.Database.Port,
			"user":      cfg.Database.User,
			"password":  mask(cfg.Database.Password),
			"database":  cfg.Database.Database,
			"max_conns": cfg.Database.MaxConns,
		},
		"redis", map[string]any{
			"enabled":     cfg.Redis.Enabled,
			"addr":        cfg.Redis.Addr,
			"geocode_ttl": cfg.Redis.GeocodeTTL.String(),
		},
		"rabbitmq", map[string]any{
			"enabled":  cfg.RabbitMQ.Enabled,
			"host":     cfg.RabbitMQ.Host,
			"port":     cfg.RabbitMQ.Port,
			"exchange": cfg.RabbitMQ.Exchange,
		},
		"geocoding", map[string]any{
			"nominatim_url": cfg.Geocoding.NominatimURL,
			"viacep_url":    cfg.Geocoding.ViaCEPURL,
			"country":       cfg.Geocoding.Country,
			"timeout":       cfg.Geocoding.Timeout.String(),
		},
		"routing", map[string]any{
			"provider":            cfg.Routing.Provider,
			"openroute_url":       cfg.Routing.OpenRouteURL,
			"openroute_api_key":   mask(cfg.Routing.OpenRouteAPIKey),
			"google_maps_api_key": mask(cfg.Routing.GoogleMapsAPIKey),
			"timeout":             cfg.Routing.Timeout.String(),
		},
		"pricing_timezone", cfg.Pricing.Timezone,
		"jwt_secret", mask(cfg.Auth.JWTSecret),
	)
}
