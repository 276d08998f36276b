package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const serviceName = "viacep"

// Client resolves Brazilian postal codes (CEP) into localities.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type cepPayload struct {
	CEP        string `json:"cep"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// ViaCEP reports unknown codes with "erro": true (older API) or "erro": "true".
func (p cepPayload) notFound() bool {
	switch v := p.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// Lookup returns the locality of an 8-digit CEP.
func (c *Client) Lookup(ctx context.Context, cep string) (addr models.PostalAddress, err error) {
	const op = "viacep.Lookup"
	ctx = wrap.WithAction(ctx, types.ActionViaCEP)

	start := time.Now()
	defer func() { metrics.RecordExternalCall(serviceName, "lookup", err, time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep), nil)
	if err != nil {
		return addr, wrap.Error(ctx, fmt.Errorf("%s: failed to build request: %w", op, err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return addr, wrap.Error(ctx, fmt.Errorf("%s: failed to make request: %w: %w", op, types.ErrExternalService, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return addr, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d: %w", op, resp.StatusCode, types.ErrNoResults))
	}

	var payload cepPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return addr, wrap.Error(ctx, fmt.Errorf("%s: failed to decode response: %w", op, err))
	}

	if payload.notFound() || payload.Localidade == "" {
		return addr, wrap.Error(ctx, fmt.Errorf("%s: cep %s: %w", op, cep, types.ErrNoResults))
	}

	return models.PostalAddress{
		PostalCode: cep,
		Locality:   payload.Localidade,
		State:      payload.UF,
	}, nil
}
