package pricing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

var feeKeys = []string{
	models.SettingBaseFee,
	models.SettingPerKmRate,
	models.SettingMinimumFee,
	models.SettingMaximumFee,
}

// LoadPricingConfig reads the fee settings. Every key falls back to its
// default on its own when absent or unparsable, so this never fails.
// Inverted bounds are discarded in favour of the default bounds.
func (s *Service) LoadPricingConfig(ctx context.Context) models.PricingConfig {
	ctx = wrap.WithAction(ctx, types.ActionLoadPricingConfig)
	cfg := models.DefaultPricingConfig()

	settings, err := s.settings.GetSettings(ctx, feeKeys...)
	if err != nil {
		s.l.Warn(ctx, "failed to read pricing settings, using defaults", "error", err.Error())
		return cfg
	}

	cfg.BaseFee = s.feeSetting(ctx, settings, models.SettingBaseFee, models.DefaultBaseFee)
	cfg.PerKmRate = s.feeSetting(ctx, settings, models.SettingPerKmRate, models.DefaultPerKmRate)
	cfg.MinimumFee = s.feeSetting(ctx, settings, models.SettingMinimumFee, models.DefaultMinimumFee)
	cfg.MaximumFee = s.feeSetting(ctx, settings, models.SettingMaximumFee, models.DefaultMaximumFee)

	if cfg.MinimumFee > cfg.MaximumFee {
		s.l.Warn(ctx, "minimum fee exceeds maximum fee, using default bounds",
			"minimum_fee", cfg.MinimumFee, "maximum_fee", cfg.MaximumFee)
		cfg.MinimumFee = models.DefaultMinimumFee
		cfg.MaximumFee = models.DefaultMaximumFee
	}

	return cfg
}

func (s *Service) feeSetting(ctx context.Context, settings map[string]models.Setting, key string, def float64) float64 {
	setting, ok := settings[key]
	if !ok {
		return def
	}

	v, err := ParseAmount(setting.Value)
	if err != nil {
		s.l.Warn(ctx, "invalid pricing setting, using default", "key", key, "value", setting.Value, "default", def)
		return def
	}
	return v
}

// ParseAmount parses a non-negative decimal amount. A decimal comma is accepted.
func ParseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("amount out of range: %q", raw)
	}
	return v, nil
}

// ValidatePricingConfig rejects negative or non-finite amounts and inverted bounds.
func ValidatePricingConfig(cfg models.PricingConfig) error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"base_fee", cfg.BaseFee},
		{"per_km_rate", cfg.PerKmRate},
		{"minimum_fee", cfg.MinimumFee},
		{"maximum_fee", cfg.MaximumFee},
	}

	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) || a.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", types.ErrInvalidPricingConfig, a.name)
		}
	}

	if cfg.MinimumFee > cfg.MaximumFee {
		return fmt.Errorf("%w: minimum_fee must not exceed maximum_fee", types.ErrInvalidPricingConfig)
	}

	return nil
}
