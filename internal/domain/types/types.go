package types

type ServiceMode string

const (
	PricingService ServiceMode = "pricing-service"
)

// GeocodeSource names the tier which produced a coordinate.
type GeocodeSource string

func (s GeocodeSource) String() string {
	return string(s)
}

const (
	SourceFullAddress      GeocodeSource = "full_address"
	SourceStreet           GeocodeSource = "street"
	SourcePostalCode       GeocodeSource = "postal_code"
	SourceStaticTable      GeocodeSource = "static_table"
	SourceDefaultCity      GeocodeSource = "default_city"
	SourceRegionalCentroid GeocodeSource = "regional_centroid"
)

// UserRole of the marketplace user carried in the access token
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleMerchant UserRole = "MERCHANT"
)

type RoutingProvider string

const (
	ProviderOpenRoute RoutingProvider = "openroute"
	ProviderGoogle    RoutingProvider = "google"
)
