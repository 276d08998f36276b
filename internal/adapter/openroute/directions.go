package openroute

import (
	"context"
	"fmt"
	"math"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Preference  string       `json:"preference"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Directions returns the fastest driving route between two points.
func (c *Client) Directions(ctx context.Context, origin, destination models.GeoPoint) (models.RouteData, error) {
	const op = "openroute.Directions"
	ctx = wrap.WithAction(ctx, types.ActionORSDirections)

	body := directionsRequest{
		Coordinates: [][2]float64{origin.LonLat(), destination.LonLat()},
		Preference:  "fastest",
	}

	var resp directionsResponse
	if err := c.post(ctx, "directions", "/v2/directions/"+profile+"/geojson", body, &resp); err != nil {
		return models.RouteData{}, err
	}

	if len(resp.Features) == 0 {
		return models.RouteData{}, wrap.Error(ctx, fmt.Errorf("%s: response has no features", op))
	}

	feature := resp.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return models.RouteData{}, wrap.Error(ctx, fmt.Errorf("%s: route geometry has %d points", op, len(feature.Geometry.Coordinates)))
	}

	return models.RouteData{
		DistanceMeters:  int(math.Round(feature.Properties.Summary.Distance)),
		DurationSeconds: int(math.Round(feature.Properties.Summary.Duration)),
		Geometry:        feature.Geometry.Coordinates,
	}, nil
}
