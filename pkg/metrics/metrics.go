package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	GeocodeAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_attempts_total",
			Help: "Geocoding attempts by resolution tier and outcome",
		},
		[]string{"source", "outcome"},
	)

	GeocodeCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_requests_total",
			Help: "Geocode cache lookups by result",
		},
		[]string{"result"},
	)

	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_duration_seconds",
			Help:    "Duration of calls to third-party services",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service", "operation", "status"},
	)

	RoutingFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_fallbacks_total",
			Help: "Routing operations answered by the local haversine estimate",
		},
		[]string{"operation"},
	)

	DeliveryQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_quotes_total",
			Help: "Total number of delivery fee calculations",
		},
		[]string{"status"},
	)

	DeliveryFee = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_fee",
			Help:    "Distribution of calculated delivery fees",
			Buckets: []float64{5, 7, 10, 12.5, 15, 20, 25, 30},
		},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"service", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	RabbitMQMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_published_total",
			Help: "Total number of messages published to RabbitMQ",
		},
		[]string{"service", "exchange", "status"},
	)
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, code).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, code).Observe(duration.Seconds())
}

// RecordGeocodeAttempt records outcome of a single geocoding tier
func RecordGeocodeAttempt(source string, ok bool) {
	outcome := "miss"
	if ok {
		outcome = "hit"
	}
	GeocodeAttemptsTotal.WithLabelValues(source, outcome).Inc()
}

// RecordCacheLookup records geocode cache hit or miss
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	GeocodeCacheTotal.WithLabelValues(result).Inc()
}

// RecordExternalCall records duration of a third-party call
func RecordExternalCall(service, operation string, err error, duration time.Duration) {
	ExternalCallDuration.WithLabelValues(service, operation, status(err)).Observe(duration.Seconds())
}

// RecordRoutingFallback records a routing operation served by the local estimate
func RecordRoutingFallback(operation string) {
	RoutingFallbacksTotal.WithLabelValues(operation).Inc()
}

// RecordQuote records a delivery fee calculation
func RecordQuote(fee float64, err error) {
	DeliveryQuotesTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		DeliveryFee.Observe(fee)
	}
}

// RecordDatabaseQuery records database query metrics
func RecordDatabaseQuery(service, operation string, err error, duration time.Duration) {
	DatabaseQueriesTotal.WithLabelValues(service, operation, status(err)).Inc()
	DatabaseQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordRabbitMQPublish records RabbitMQ publish metrics
func RecordRabbitMQPublish(service, exchange string, err error) {
	RabbitMQMessagesPublished.WithLabelValues(service, exchange, status(err)).Inc()
}
