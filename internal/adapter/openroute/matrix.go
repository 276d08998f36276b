package openroute

import (
	"context"
	"fmt"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

type matrixRequest struct {
	Locations [][2]float64 `json:"locations"`
	Metrics   []string     `json:"metrics"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// Matrix returns pairwise driving distances (meters) and durations (seconds).
// A pair without route makes the whole call fail.
func (c *Client) Matrix(ctx context.Context, points []models.GeoPoint) (models.DistanceMatrix, error) {
	const op = "openroute.Matrix"
	ctx = wrap.WithAction(ctx, types.ActionORSMatrix)

	body := matrixRequest{
		Locations: make([][2]float64, len(points)),
		Metrics:   []string{"distance", "duration"},
	}
	for i, p := range points {
		body.Locations[i] = p.LonLat()
	}

	var resp matrixResponse
	if err := c.post(ctx, "matrix", "/v2/matrix/"+profile, body, &resp); err != nil {
		return models.DistanceMatrix{}, err
	}

	distances, err := dense(resp.Distances, len(points))
	if err != nil {
		return models.DistanceMatrix{}, wrap.Error(ctx, fmt.Errorf("%s: distances: %w", op, err))
	}

	durations, err := dense(resp.Durations, len(points))
	if err != nil {
		return models.DistanceMatrix{}, wrap.Error(ctx, fmt.Errorf("%s: durations: %w", op, err))
	}

	return models.DistanceMatrix{
		Distances: distances,
		Durations: durations,
	}, nil
}

func dense(m [][]*float64, n int) ([][]float64, error) {
	if len(m) != n {
		return nil, fmt.Errorf("expected %d rows, got %d", n, len(m))
	}

	out := make([][]float64, n)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d: expected %d values, got %d", i, n, len(row))
		}
		out[i] = make([]float64, n)
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("no route between %d and %d", i, j)
			}
			out[i][j] = *v
		}
	}
	return out, nil
}
