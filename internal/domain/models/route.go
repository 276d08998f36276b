package models

// RouteData is a driving route. Geometry holds (lon, lat) pairs, at least two.
type RouteData struct {
	DistanceMeters  int          `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Geometry        [][2]float64 `json:"geometry"`
	Estimated       bool         `json:"estimated"`
}

// DeliveryPrice is the linear price computed from a route distance.
type DeliveryPrice struct {
	DistanceKm   float64 `json:"distance_km"`
	BaseFare     float64 `json:"base_fare"`
	DistanceFare float64 `json:"distance_fare"`
	TotalFare    float64 `json:"total_fare"`
}

// DistanceMatrix holds pairwise distances in meters and durations in seconds.
// Durations is nil when the matrix was estimated locally.
type DistanceMatrix struct {
	Distances [][]float64 `json:"distances"`
	Durations [][]float64 `json:"durations,omitempty"`
	Estimated bool        `json:"estimated"`
}

type Deliverer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location GeoPoint `json:"location"`
}

// NearestDeliverer is the closest candidate, Distance in meters.
type NearestDeliverer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}
