package dto

import (
	"strings"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

const maxAddressLength = 255

type DeliveryRequest struct {
	PickupAddress      string `json:"pickup_address"`
	DeliveryAddress    string `json:"delivery_address"`
	PickupPostalCode   string `json:"pickup_postal_code,omitempty"`
	DeliveryPostalCode string `json:"delivery_postal_code,omitempty"`
}

func (r *DeliveryRequest) Validate(v *validator.Validator) {
	validateAddress(v, "pickup_address", r.PickupAddress)
	validateAddress(v, "delivery_address", r.DeliveryAddress)
	validatePostalCode(v, "pickup_postal_code", r.PickupPostalCode)
	validatePostalCode(v, "delivery_postal_code", r.DeliveryPostalCode)
}

func (r *DeliveryRequest) ToModel() models.DeliveryRequest {
	return models.DeliveryRequest{
		PickupAddress:      r.PickupAddress,
		DeliveryAddress:    r.DeliveryAddress,
		PickupPostalCode:   r.PickupPostalCode,
		DeliveryPostalCode: r.DeliveryPostalCode,
	}
}

func validateAddress(v *validator.Validator, key, address string) {
	v.Check(strings.TrimSpace(address) != "", key, "must be provided")
	v.Check(len(address) <= maxAddressLength, key, "must not be more than 255 characters long")
}

// Postal codes are optional. Malformed ones are not rejected here, the geocoder skips them.
func validatePostalCode(v *validator.Validator, key, code string) {
	v.Check(len(code) <= 16, key, "must not be more than 16 characters long")
}
