package dto

import (
	"fmt"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/pkg/validator"
)

const (
	maxMatrixPoints = 50
	maxCandidates   = 49
)

// Point is a coordinate in a request body. Both fields are required.
type Point struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (p *Point) Validate(v *validator.Validator, key string) {
	v.Check(p.Latitude != nil, key+".latitude", "must be provided")
	v.Check(p.Longitude != nil, key+".longitude", "must be provided")
	if p.Latitude != nil {
		v.Check(validator.InRange(*p.Latitude, -90, 90), key+".latitude", "must be between -90 and 90")
	}
	if p.Longitude != nil {
		v.Check(validator.InRange(*p.Longitude, -180, 180), key+".longitude", "must be between -180 and 180")
	}
}

// ToModel must be called on a validated point.
func (p Point) ToModel() models.GeoPoint {
	return models.GeoPoint{Latitude: *p.Latitude, Longitude: *p.Longitude}
}

type RouteRequest struct {
	Origin      Point    `json:"origin"`
	Destination Point    `json:"destination"`
	BaseFare    *float64 `json:"base_fare,omitempty"`
	PerKm       *float64 `json:"per_km,omitempty"`
}

func (r *RouteRequest) Validate(v *validator.Validator) {
	r.Origin.Validate(v, "origin")
	r.Destination.Validate(v, "destination")
	if r.BaseFare != nil {
		CheckAmount(v, "base_fare", *r.BaseFare)
	}
	if r.PerKm != nil {
		CheckAmount(v, "per_km", *r.PerKm)
	}
}

type RouteResponse struct {
	Route models.RouteData     `json:"route"`
	Price models.DeliveryPrice `json:"price"`
}

type MatrixRequest struct {
	Points []Point `json:"points"`
}

func (r *MatrixRequest) Validate(v *validator.Validator) {
	v.Check(len(r.Points) > 0, "points", "must contain at least one point")
	v.Check(len(r.Points) <= maxMatrixPoints, "points", fmt.Sprintf("must not contain more than %d points", maxMatrixPoints))
	for i := range r.Points {
		r.Points[i].Validate(v, fmt.Sprintf("points[%d]", i))
	}
}

func (r *MatrixRequest) ToModel() []models.GeoPoint {
	points := make([]models.GeoPoint, len(r.Points))
	for i, p := range r.Points {
		points[i] = p.ToModel()
	}
	return points
}

type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location Point  `json:"location"`
}

type NearestRequest struct {
	Pickup     Point       `json:"pickup"`
	Candidates []Candidate `json:"candidates"`
}

func (r *NearestRequest) Validate(v *validator.Validator) {
	r.Pickup.Validate(v, "pickup")
	v.Check(len(r.Candidates) <= maxCandidates, "candidates", fmt.Sprintf("must not contain more than %d candidates", maxCandidates))
	for i, c := range r.Candidates {
		key := fmt.Sprintf("candidates[%d]", i)
		v.Check(c.ID != "", key+".id", "must be provided")
		c.Location.Validate(v, key+".location")
	}
}

func (r *NearestRequest) ToModel() (models.GeoPoint, []models.Deliverer) {
	candidates := make([]models.Deliverer, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = models.Deliverer{
			ID:       c.ID,
			Name:     c.Name,
			Location: c.Location.ToModel(),
		}
	}
	return r.Pickup.ToModel(), candidates
}
