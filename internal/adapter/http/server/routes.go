package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Temutjin2k/delivery-pricing/docs"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	setupSwaggerRoutes(a.mux)
	setupMetricsRoute(a.mux)

	a.setupDeliveryRoutes()
	a.setupGeocodeRoutes()
	a.setupRoutingRoutes()
	a.setupAdminRoutes()
}

func (a *API) setupDeliveryRoutes() {
	a.mux.HandleFunc("POST /v1/delivery/distance", a.routes.delivery.CalculateDistance) // Distance, time and fee between two addresses
	a.mux.HandleFunc("POST /v1/delivery/quote", a.routes.delivery.Quote)                // Fee with zone and current surge
	a.mux.HandleFunc("GET /v1/delivery/zone", a.routes.delivery.Zone)
	a.mux.HandleFunc("GET /v1/delivery/surge", a.routes.delivery.Surge)
	a.mux.HandleFunc("GET /ws/quotes", a.routes.quotes.HandleWS) // WebSocket connection for live quotes
}

func (a *API) setupGeocodeRoutes() {
	a.mux.HandleFunc("POST /v1/geocode", a.routes.geocode.Resolve)
	a.mux.HandleFunc("GET /v1/geocode/reverse", a.routes.geocode.Reverse)
}

func (a *API) setupRoutingRoutes() {
	a.mux.HandleFunc("POST /v1/routes", a.routes.routing.Route)
	a.mux.HandleFunc("POST /v1/routes/matrix", a.routes.routing.Matrix)
	a.mux.HandleFunc("POST /v1/deliverers/nearest", a.routes.routing.Nearest)
}

// setupAdminRoutes setups routes available to administrators only
func (a *API) setupAdminRoutes() {
	a.mux.Handle("GET /v1/admin/pricing", a.m.RequireRoles(a.routes.admin.GetPricing, types.RoleAdmin))    // Effective pricing settings
	a.mux.Handle("PUT /v1/admin/pricing", a.m.RequireRoles(a.routes.admin.UpdatePricing, types.RoleAdmin)) // Update pricing settings
}

// setupSwaggerRoutes configures Swagger UI endpoints
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(swaggerInstance)
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
