package models

import "github.com/Temutjin2k/delivery-pricing/internal/domain/types"

// GeoPoint is a WGS-84 coordinate in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// LonLat returns the point in GeoJSON order.
func (p GeoPoint) LonLat() [2]float64 {
	return [2]float64{p.Longitude, p.Latitude}
}

// PostalAddress is a locality returned by the postal code service
type PostalAddress struct {
	PostalCode string `json:"postal_code"`
	Locality   string `json:"locality"`
	State      string `json:"state"`
}

// GeocodeAttempt records the outcome of one resolution tier.
type GeocodeAttempt struct {
	Source types.GeocodeSource `json:"source"`
	Query  string              `json:"query,omitempty"`
	Reason string              `json:"reason,omitempty"`
	OK     bool                `json:"ok"`
	// Skipped tiers did not apply to the input and made no call.
	Skipped bool `json:"skipped,omitempty"`
}

// Resolution is the result of geocoding an address.
type Resolution struct {
	Point    GeoPoint            `json:"point"`
	Source   types.GeocodeSource `json:"source"`
	Query    string              `json:"query"`
	Attempts []GeocodeAttempt    `json:"attempts"`
}
