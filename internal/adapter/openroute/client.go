package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const (
	serviceName = "openroute"
	profile     = "driving-car"
)

// Client talks to the OpenRouteService API.
// Every call fails with types.ErrMissingAPIKey when no key is configured.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// do sends the request and decodes a JSON response into dst.
func (c *Client) do(ctx context.Context, operation string, req *http.Request, dst any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, operation, err, time.Since(start)) }()

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json, application/geo+json")

	resp, err := c.http.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: failed to make request: %w: %w", operation, types.ErrExternalService, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d: %s: %w", operation, resp.StatusCode, strings.TrimSpace(string(body)), types.ErrExternalService))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return wrap.Error(ctx, fmt.Errorf("%s: failed to decode response: %w", operation, err))
	}

	return nil
}

func (c *Client) post(ctx context.Context, operation, path string, body, dst any) error {
	if !c.HasAPIKey() {
		return types.ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, operation, req, dst)
}
