package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"
	ActionRabbitReconnecting      = "rabbitmq_reconnecting"

	ActionDatabaseTransactionFailed = "database_transaction_failed"
	ActionExternalServiceFailed     = "external_service_failed"

	ActionServiceInit   = "pricing_service_init"
	ActionValidateToken = "validate_token"
	ActionIssueToken    = "issue_token"
	ActionWSConnAdd     = "add_ws_connection"
	ActionWSConnDelete  = "ws_connection_delete"
	ActionWSHubClose    = "hub_close"
	ActionWSQuoteStream = "ws_quotes"
	ActionGeocodeCache  = "geocode_cache"
	ActionNominatim     = "nominatim_search"
	ActionViaCEP        = "viacep_lookup"
	ActionORSDirections = "openroute_directions"
	ActionORSMatrix     = "openroute_matrix"
	ActionORSReverse    = "openroute_reverse"
	ActionGoogleRoute   = "googlemaps_directions"
	ActionGoogleMatrix  = "googlemaps_matrix"
	ActionGoogleReverse = "googlemaps_reverse"

	ActionGeocode             = "geocode"
	ActionGeocodeAttempt      = "geocode_attempt"
	ActionLoadPricingConfig   = "load_pricing_config"
	ActionCalculateDistance   = "calculate_delivery_distance"
	ActionPublishQuote        = "publish_quote"
	ActionRoute               = "route"
	ActionDistanceMatrix      = "distance_matrix"
	ActionReverseGeocode      = "reverse_geocode"
	ActionUpdatePricingConfig = "update_pricing_config"
)
