package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/internal/service/calculator"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const (
	fallbackSpeedKmh = 30
	defaultTimeout   = 10 * time.Second

	// operation labels for fallback logs and metrics
	opRoute  = "route"
	opMatrix = "matrix"
)

// Service computes routes and distance matrices on known coordinates.
// Every operation except ReverseGeocode degrades to a local haversine estimate.
type Service struct {
	provider Provider
	timeout  time.Duration
	l        logger.Logger
}

// NewService accepts a nil provider, routes are then always estimated.
func NewService(provider Provider, timeout time.Duration, l logger.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		provider: provider,
		timeout:  timeout,
		l:        l,
	}
}

// Route never fails: any provider error falls back to EstimateRoute.
func (s *Service) Route(ctx context.Context, origin, destination models.GeoPoint) models.RouteData {
	ctx = wrap.WithAction(ctx, types.ActionRoute)

	if s.provider != nil {
		route, err := s.directions(ctx, origin, destination)
		if err == nil {
			return route
		}
		s.logFallback(ctx, opRoute, err)
	}

	metrics.RecordRoutingFallback(opRoute)
	return EstimateRoute(origin, destination)
}

func (s *Service) directions(ctx context.Context, origin, destination models.GeoPoint) (models.RouteData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	route, err := s.provider.Directions(ctx, origin, destination)
	if err != nil {
		return route, err
	}
	if len(route.Geometry) < 2 {
		return route, fmt.Errorf("route geometry has %d points", len(route.Geometry))
	}
	return route, nil
}

// CalculateDistanceMatrix returns pairwise distances in meters. When the provider
// fails the matrix is computed locally and Durations is nil.
func (s *Service) CalculateDistanceMatrix(ctx context.Context, points []models.GeoPoint) models.DistanceMatrix {
	ctx = wrap.WithAction(ctx, types.ActionDistanceMatrix)

	if s.provider != nil && len(points) > 1 {
		m, err := s.matrix(ctx, points)
		if err == nil {
			return m
		}
		s.logFallback(ctx, opMatrix, err)
	}

	metrics.RecordRoutingFallback(opMatrix)
	return HaversineMatrix(points)
}

func (s *Service) matrix(ctx context.Context, points []models.GeoPoint) (models.DistanceMatrix, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	m, err := s.provider.Matrix(ctx, points)
	if err != nil {
		return m, err
	}
	if len(m.Distances) != len(points) {
		return m, fmt.Errorf("matrix has %d rows for %d points", len(m.Distances), len(points))
	}
	for i, row := range m.Distances {
		if len(row) != len(points) {
			return m, fmt.Errorf("matrix row %d has %d columns for %d points", i, len(row), len(points))
		}
	}
	return m, nil
}

// FindNearestDeliverer returns the candidate closest to pickup, nil when there are none.
// Ties go to the candidate listed first.
func (s *Service) FindNearestDeliverer(ctx context.Context, pickup models.GeoPoint, candidates []models.Deliverer) *models.NearestDeliverer {
	if len(candidates) == 0 {
		return nil
	}

	points := make([]models.GeoPoint, 0, len(candidates)+1)
	points = append(points, pickup)
	for _, c := range candidates {
		points = append(points, c.Location)
	}

	row := s.CalculateDistanceMatrix(ctx, points).Distances[0]

	best := 1
	for j := 2; j < len(row); j++ {
		if row[j] < row[best] {
			best = j
		}
	}

	c := candidates[best-1]
	return &models.NearestDeliverer{
		ID:       c.ID,
		Name:     c.Name,
		Distance: row[best],
	}
}

// ReverseGeocode has no local fallback. ok is false without an API key,
// without results, or when the provider fails.
func (s *Service) ReverseGeocode(ctx context.Context, p models.GeoPoint) (string, bool) {
	ctx = wrap.WithAction(ctx, types.ActionReverseGeocode)

	if s.provider == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	address, err := s.provider.Reverse(ctx, p)
	if err != nil {
		if !errors.Is(err, types.ErrMissingAPIKey) && !errors.Is(err, types.ErrNoResults) {
			s.l.Warn(wrap.ErrorCtx(ctx, err), "reverse geocoding failed", "error", err.Error())
		}
		return "", false
	}

	return address, address != ""
}

func (s *Service) logFallback(ctx context.Context, operation string, err error) {
	if errors.Is(err, types.ErrMissingAPIKey) {
		s.l.Debug(ctx, "routing provider has no api key, estimating locally", "operation", operation)
		return
	}
	s.l.Warn(wrap.ErrorCtx(ctx, err), "routing provider failed, estimating locally", "operation", operation, "error", err.Error())
}

// EstimateRoute is the straight line route at the fallback speed.
func EstimateRoute(origin, destination models.GeoPoint) models.RouteData {
	km := calculator.Haversine(origin, destination)

	return models.RouteData{
		DistanceMeters:  int(math.Round(km * 1000)),
		DurationSeconds: int(math.Round(km / fallbackSpeedKmh * 3600)),
		Geometry:        [][2]float64{origin.LonLat(), destination.LonLat()},
		Estimated:       true,
	}
}

// HaversineMatrix is the symmetric great-circle distance matrix in meters.
func HaversineMatrix(points []models.GeoPoint) models.DistanceMatrix {
	n := len(points)
	distances := make([][]float64, n)
	for i := range distances {
		distances[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := calculator.Haversine(points[i], points[j]) * 1000
			distances[i][j] = d
			distances[j][i] = d
		}
	}

	return models.DistanceMatrix{Distances: distances, Estimated: true}
}
