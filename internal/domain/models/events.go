package models

import "time"

// QuoteCalculatedEvent is published after a delivery fee has been computed.
type QuoteCalculatedEvent struct {
	QuoteID              string    `json:"quote_id"`
	CorrelationID        string    `json:"correlation_id,omitempty"`
	Pickup               GeoPoint  `json:"pickup"`
	Delivery             GeoPoint  `json:"delivery"`
	DistanceKm           float64   `json:"distance_km"`
	EstimatedTimeMinutes int       `json:"estimated_time_minutes"`
	DeliveryFee          float64   `json:"delivery_fee"`
	Timestamp            time.Time `json:"timestamp"`
}
