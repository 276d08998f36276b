package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const serviceName = "nominatim"

// Client is a forward geocoder for Nominatim compatible APIs (OpenStreetMap, LocationIQ).
type Client struct {
	baseURL     string
	userAgent   string
	countryCode string
	http        *http.Client
}

func New(baseURL, userAgent, countryCode string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		countryCode: countryCode,
		http:        &http.Client{Timeout: timeout},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search returns the best match for a free-text query.
// types.ErrNoResults is returned when nothing matched.
func (c *Client) Search(ctx context.Context, query string) (p models.GeoPoint, err error) {
	const op = "nominatim.Search"
	ctx = wrap.WithAction(ctx, types.ActionNominatim)

	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, "search", err, time.Since(start)) }()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.countryCode != "" {
		params.Set("countrycodes", c.countryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return p, wrap.Error(ctx, fmt.Errorf("%s: failed to build request: %w", op, err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return p, wrap.Error(ctx, fmt.Errorf("%s: failed to make request: %w: %w", op, types.ErrExternalService, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return p, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d: %s: %w", op, resp.StatusCode, strings.TrimSpace(string(body)), types.ErrExternalService))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return p, wrap.Error(ctx, fmt.Errorf("%s: failed to decode response: %w", op, err))
	}

	if len(results) == 0 {
		return p, wrap.Error(ctx, types.ErrNoResults)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return p, wrap.Error(ctx, fmt.Errorf("%s: failed to parse latitude: %w", op, err))
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return p, wrap.Error(ctx, fmt.Errorf("%s: failed to parse longitude: %w", op, err))
	}

	p = models.GeoPoint{Latitude: lat, Longitude: lon}
	if !p.Valid() {
		return models.GeoPoint{}, wrap.Error(ctx, fmt.Errorf("%s: coordinate out of range: %v", op, p))
	}

	return p, nil
}
