package microservices

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Temutjin2k/delivery-pricing/config"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/googlemaps"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/server"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/nominatim"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/openroute"
	repo "github.com/Temutjin2k/delivery-pricing/internal/adapter/postgres"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/rabbit"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/redis"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/viacep"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/internal/service/auth"
	"github.com/Temutjin2k/delivery-pricing/internal/service/calculator"
	"github.com/Temutjin2k/delivery-pricing/internal/service/geocoder"
	"github.com/Temutjin2k/delivery-pricing/internal/service/pricing"
	"github.com/Temutjin2k/delivery-pricing/internal/service/routing"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/postgres"
	rabbitmq "github.com/Temutjin2k/delivery-pricing/pkg/rabbit"
	redisclient "github.com/Temutjin2k/delivery-pricing/pkg/redis"
	"github.com/Temutjin2k/delivery-pricing/pkg/trm"
	ws "github.com/Temutjin2k/delivery-pricing/pkg/wsHub"
)

type PricingService struct {
	postgresDB  *postgres.PostgreDB
	redisClient *goredis.Client
	rabbitMQ    *rabbitmq.RabbitMQ
	connections *ws.ConnectionHub
	httpServer  *server.API
	pricing     *pricing.Service

	cfg config.Config
	log logger.Logger
}

func NewPricing(ctx context.Context, cfg config.Config, log logger.Logger) (*PricingService, error) {
	ctx = wrap.WithAction(ctx, types.ActionServiceInit)
	s := &PricingService{
		cfg: cfg,
		log: log,
	}

	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}
	s.postgresDB = postgresDB

	settingsRepo := repo.NewSettingsRepo(postgresDB.Pool)
	trManager := trm.New(postgresDB.Pool)

	// Forward geocoding, optionally cached in redis
	var forward geocoder.ForwardGeocoder = nominatim.New(
		cfg.Geocoding.NominatimURL,
		cfg.Geocoding.UserAgent,
		cfg.Geocoding.CountryCode,
		cfg.Geocoding.Timeout,
	)
	if cfg.Redis.Enabled {
		client, err := redisclient.New(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Warn(ctx, "redis is unavailable, geocode cache disabled", "error", err.Error())
		} else {
			s.redisClient = client
			forward = redis.NewCachedGeocoder(forward, client, cfg.Redis.GeocodeTTL, log)
		}
	}

	geo := geocoder.New(
		forward,
		viacep.New(cfg.Geocoding.ViaCEPURL, cfg.Geocoding.Timeout),
		settingsRepo,
		geocoder.DefaultTables(),
		geocoder.Options{
			Country: cfg.Geocoding.Country,
			Aliases: geocoder.DefaultAliases(),
			Timeout: cfg.Geocoding.Timeout,
		},
		log,
	)

	// Quote events
	var publisher pricing.QuotePublisher = rabbit.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := rabbitmq.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			s.close(ctx)
			log.Error(ctx, "Failed to connect to rabbitmq", err)
			return nil, err
		}
		s.rabbitMQ = rabbitMQ

		producer, err := rabbit.NewQuoteProducer(rabbitMQ, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			s.close(ctx)
			log.Error(ctx, "Failed to setup quote producer", err)
			return nil, err
		}
		publisher = producer
	}

	loc, err := cfg.Pricing.Location()
	if err != nil {
		s.close(ctx)
		return nil, err
	}

	pricingService := pricing.NewService(settingsRepo, geo, calculator.New(), publisher, trManager, loc, log)
	s.pricing = pricingService
	routingService := routing.NewService(newRoutingProvider(ctx, cfg.Routing, log), cfg.Routing.Timeout, log)

	s.connections = ws.NewConnHub(log)
	httpServer, err := server.New(cfg, server.Services{
		Pricing:  pricingService,
		Admin:    pricingService,
		Geocoder: geo,
		Routing:  routingService,
		Auth:     auth.NewTokenService(cfg.Auth.JWTSecret),
	}, s.connections, log)
	if err != nil {
		s.close(ctx)
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}
	s.httpServer = httpServer

	return s, nil
}

// newRoutingProvider returns nil when the selected provider cannot be used,
// the routing service then estimates every route locally.
func newRoutingProvider(ctx context.Context, cfg config.RoutingConfig, log logger.Logger) routing.Provider {
	switch types.RoutingProvider(cfg.Provider) {
	case types.ProviderGoogle:
		provider, err := googlemaps.NewRouteService(cfg.GoogleMapsAPIKey, cfg.Timeout)
		if err != nil {
			if !errors.Is(err, types.ErrMissingAPIKey) {
				log.Error(ctx, "failed to setup google maps client", err)
			}
			log.Warn(ctx, "google maps is not configured, routes will be estimated")
			return nil
		}
		return provider
	default:
		client := openroute.New(cfg.OpenRouteAPIKey, cfg.OpenRouteURL, cfg.Timeout)
		if !client.HasAPIKey() {
			log.Warn(ctx, "openrouteservice api key is not set, routes will be estimated")
			return nil
		}
		return client
	}
}

func (s *PricingService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "pricing service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "Pricing service has been started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *PricingService) close(ctx context.Context) {
	if s.connections != nil {
		s.connections.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	// in-flight quote events go out before the broker connection closes
	if s.pricing != nil {
		s.pricing.Close()
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitmq connection", "error", err.Error())
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.log.Warn(ctx, "Failed to close redis client", "error", err.Error())
		}
	}

	if s.postgresDB != nil && s.postgresDB.Pool != nil {
		s.postgresDB.Pool.Close()
	}
}
