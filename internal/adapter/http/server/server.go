package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/delivery-pricing/config"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/handler"
	"github.com/Temutjin2k/delivery-pricing/internal/adapter/http/middleware"
	wshandler "github.com/Temutjin2k/delivery-pricing/internal/adapter/http/ws"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/delivery-pricing/pkg/wsHub"
)

const (
	serverIPAddress = "%s:%s"
	swaggerInstance = "pricing"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health   *handler.Health
	delivery *handler.Delivery
	geocode  *handler.Geocode
	routing  *handler.Routing
	admin    *handler.Admin
	quotes   *wshandler.QuoteStream
}

// Services groups the ports the HTTP layer depends on.
type Services struct {
	Pricing  handler.PricingService
	Admin    handler.AdminService
	Geocoder handler.GeocodeService
	Routing  RoutingService
	Auth     middleware.AuthService
}

type RoutingService interface {
	handler.RoutingService
	handler.ReverseGeocoder
}

func New(cfg config.Config, services Services, connections *ws.ConnectionHub, logger logger.Logger) (*API, error) {
	if services.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	if cfg.Mode != types.PricingService {
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	routes := &handlers{
		health:   handler.NewHealth(string(cfg.Mode), logger),
		delivery: handler.NewDelivery(services.Pricing, logger),
		geocode:  handler.NewGeocode(services.Geocoder, services.Routing, logger),
		routing:  handler.NewRouting(services.Routing, logger),
		admin:    handler.NewAdmin(services.Admin, logger),
		quotes:   wshandler.NewQuoteStream(connections, services.Pricing, logger),
	}

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      middleware.NewMiddleware(services.Auth, logger),
		addr:   fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port),
		cfg:    cfg,
		log:    logger,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler returns the routed handler with every middleware applied.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(
		a.m.RequestID(
			a.m.Logging(
				a.m.Metrics(string(a.cfg.Mode))(
					a.m.Auth(a.mux),
				),
			),
		),
	)
}
