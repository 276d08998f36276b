package docs

// @title           Delivery Pricing API
// @version         1.0
// @description     Delivery pricing service: address geocoding with tiered fallback, road distance and travel time estimation, bounded delivery fees, zones, surge pricing, routing and distance matrices.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3010
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
