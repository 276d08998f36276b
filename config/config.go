package config

import (
	"flag"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/configparser"
	"github.com/Temutjin2k/delivery-pricing/pkg/postgres"
	"github.com/Temutjin2k/delivery-pricing/pkg/redis"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.PricingService), "application mode")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode     types.ServiceMode
		LogLevel string `env:"LOG_LEVEL" default:"INFO"`

		Server    ServerConfig
		Database  DatabaseConfig
		Redis     RedisConfig
		RabbitMQ  RabbitMQConfig
		Geocoding GeocodingConfig
		Routing   RoutingConfig
		Pricing   PricingConfig
		Auth      Auth
	}

	ServerConfig struct {
		Port string `env:"SERVER_PORT" default:"3010"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"delivery_user"`
		Password string `env:"DATABASE_PASSWORD" default:"delivery_pass"`
		Database string `env:"DATABASE_DATABASE" default:"delivery_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RedisConfig struct {
		Enabled    bool          `env:"REDIS_ENABLED" default:"false"`
		Addr       string        `env:"REDIS_ADDR" default:"localhost:6379"`
		Password   string        `env:"REDIS_PASSWORD"`
		DB         int           `env:"REDIS_DB" default:"0"`
		GeocodeTTL time.Duration `env:"REDIS_GEOCODE_TTL" default:"168h"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Exchange string `env:"RABBITMQ_EXCHANGE" default:"pricing_topic"`
	}

	GeocodingConfig struct {
		NominatimURL string        `env:"GEOCODING_NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
		UserAgent    string        `env:"GEOCODING_USER_AGENT" default:"delivery-pricing/1.0"`
		ViaCEPURL    string        `env:"GEOCODING_VIACEP_URL" default:"https://viacep.com.br"`
		Country      string        `env:"GEOCODING_COUNTRY" default:"Brasil"`
		CountryCode  string        `env:"GEOCODING_COUNTRY_CODE" default:"br"`
		Timeout      time.Duration `env:"GEOCODING_TIMEOUT" default:"8s"`
	}

	RoutingConfig struct {
		Provider         string        `env:"ROUTING_PROVIDER" default:"openroute"`
		OpenRouteURL     string        `env:"ROUTING_OPENROUTE_URL" default:"https://api.openrouteservice.org"`
		OpenRouteAPIKey  string        `env:"ROUTING_OPENROUTE_API_KEY"`
		GoogleMapsAPIKey string        `env:"ROUTING_GOOGLE_MAPS_API_KEY"`
		Timeout          time.Duration `env:"ROUTING_TIMEOUT" default:"10s"`
	}

	PricingConfig struct {
		Timezone string `env:"PRICING_TIMEZONE" default:"America/Bahia"`
	}

	Auth struct {
		JWTSecret string `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c DatabaseConfig) GetPoolOptions() postgres.PoolOptions {
	return postgres.PoolOptions{
		MaxConns:        c.MaxConns,
		MinConns:        c.MinConns,
		MaxConnLifetime: c.MaxConnLifetime,
		MaxConnIdleTime: c.MaxConnIdleTime,
	}
}

func (c RedisConfig) ClientConfig() redis.Config {
	return redis.Config{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

// Location returns the time zone used for surge pricing.
func (c PricingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return fmt.Errorf("mode flag not provided")
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	switch types.RoutingProvider(c.Routing.Provider) {
	case types.ProviderOpenRoute, types.ProviderGoogle:
	default:
		return fmt.Errorf("unknown routing provider %q", c.Routing.Provider)
	}

	if _, err := c.Pricing.Location(); err != nil {
		return fmt.Errorf("invalid pricing timezone %q: %w", c.Pricing.Timezone, err)
	}

	return nil
}
