package dto

import "github.com/Temutjin2k/delivery-pricing/pkg/validator"

type GeocodeRequest struct {
	Address    string `json:"address"`
	PostalCode string `json:"postal_code,omitempty"`
}

func (r *GeocodeRequest) Validate(v *validator.Validator) {
	validateAddress(v, "address", r.Address)
	validatePostalCode(v, "postal_code", r.PostalCode)
}

type ReverseGeocodeResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
