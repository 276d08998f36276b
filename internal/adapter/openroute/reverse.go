package openroute

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

type reverseResponse struct {
	Features []struct {
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Reverse returns a human readable address of the point.
func (c *Client) Reverse(ctx context.Context, p models.GeoPoint) (string, error) {
	const op = "openroute.Reverse"
	ctx = wrap.WithAction(ctx, types.ActionORSReverse)

	if !c.HasAPIKey() {
		return "", types.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("point.lat", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	params.Set("point.lon", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	params.Set("size", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to build request: %w", op, err)
	}

	var resp reverseResponse
	if err := c.do(ctx, "reverse", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Features) == 0 || resp.Features[0].Properties.Label == "" {
		return "", wrap.Error(ctx, types.ErrNoResults)
	}

	return resp.Features[0].Properties.Label, nil
}
