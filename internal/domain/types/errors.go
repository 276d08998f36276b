package types

import "errors"

var (
	ErrNotFound             = errors.New("could not determine a location for this address")
	ErrInvalidAddress       = errors.New("address must not be empty")
	ErrInvalidPricingConfig = errors.New("invalid pricing configuration")

	ErrExternalService = errors.New("external service unavailable")
	ErrMissingAPIKey   = errors.New("api key is not configured")
	ErrNoResults       = errors.New("external service returned no results")

	ErrInvalidToken = errors.New("invalid or expired token")
)
