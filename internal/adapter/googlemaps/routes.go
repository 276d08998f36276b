package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
	"googlemaps.github.io/maps"
)

const serviceName = "googlemaps"

// RouteService is a routing provider backed by Google Maps web services.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
// Extra options (e.g. maps.WithBaseURL) are passed to the maps client.
func NewRouteService(apiKey string, timeout time.Duration, opts ...maps.ClientOption) (*RouteService, error) {
	if apiKey == "" {
		return nil, types.ErrMissingAPIKey
	}

	opts = append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

func latLng(p models.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}

// Directions returns the driving route between two points.
func (s *RouteService) Directions(ctx context.Context, origin, destination models.GeoPoint) (route models.RouteData, err error) {
	const op = "googlemaps.Directions"
	ctx = wrap.WithAction(ctx, types.ActionGoogleRoute)

	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, "directions", err, time.Since(start)) }()

	routes, _, err := s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        maps.TravelModeDriving,
		Region:      "br",
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return route, wrap.Error(ctx, fmt.Errorf("%s: maps api error: %w: %w", op, types.ErrExternalService, err))
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return route, wrap.Error(ctx, fmt.Errorf("%s: %w", op, types.ErrNoResults))
	}

	var (
		meters   int
		duration time.Duration
	)
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
	}

	path, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return route, wrap.Error(ctx, fmt.Errorf("%s: failed to decode polyline: %w", op, err))
	}

	geometry := make([][2]float64, 0, len(path))
	for _, ll := range path {
		geometry = append(geometry, [2]float64{ll.Lng, ll.Lat})
	}
	if len(geometry) < 2 {
		geometry = [][2]float64{origin.LonLat(), destination.LonLat()}
	}

	return models.RouteData{
		DistanceMeters:  meters,
		DurationSeconds: int(duration.Seconds()),
		Geometry:        geometry,
	}, nil
}

// Matrix returns pairwise driving distances (meters) and durations (seconds).
func (s *RouteService) Matrix(ctx context.Context, points []models.GeoPoint) (m models.DistanceMatrix, err error) {
	const op = "googlemaps.Matrix"
	ctx = wrap.WithAction(ctx, types.ActionGoogleMatrix)

	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, "matrix", err, time.Since(start)) }()

	locations := make([]string, len(points))
	for i, p := range points {
		locations[i] = latLng(p)
	}

	resp, err := s.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      locations,
		Destinations: locations,
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return m, wrap.Error(ctx, fmt.Errorf("%s: maps api error: %w: %w", op, types.ErrExternalService, err))
	}

	if len(resp.Rows) != len(points) {
		return m, wrap.Error(ctx, fmt.Errorf("%s: expected %d rows, got %d", op, len(points), len(resp.Rows)))
	}

	m.Distances = make([][]float64, len(points))
	m.Durations = make([][]float64, len(points))
	for i, row := range resp.Rows {
		if len(row.Elements) != len(points) {
			return models.DistanceMatrix{}, wrap.Error(ctx, fmt.Errorf("%s: row %d has %d elements", op, i, len(row.Elements)))
		}

		m.Distances[i] = make([]float64, len(points))
		m.Durations[i] = make([]float64, len(points))
		for j, el := range row.Elements {
			if el.Status != "OK" {
				return models.DistanceMatrix{}, wrap.Error(ctx, fmt.Errorf("%s: element %d,%d status %s", op, i, j, el.Status))
			}
			m.Distances[i][j] = float64(el.Distance.Meters)
			m.Durations[i][j] = el.Duration.Seconds()
		}
	}

	return m, nil
}

// Reverse returns the formatted address of the point.
func (s *RouteService) Reverse(ctx context.Context, p models.GeoPoint) (address string, err error) {
	const op = "googlemaps.Reverse"
	ctx = wrap.WithAction(ctx, types.ActionGoogleReverse)

	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, "reverse", err, time.Since(start)) }()

	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: p.Latitude, Lng: p.Longitude},
		Language: "pt-BR",
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return "", wrap.Error(ctx, fmt.Errorf("%s: maps api error: %w: %w", op, types.ErrExternalService, err))
	}

	if len(results) == 0 || results[0].FormattedAddress == "" {
		return "", wrap.Error(ctx, types.ErrNoResults)
	}

	return results[0].FormattedAddress, nil
}
