package pricing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

// GetPricingSettings returns the effective configuration, defaults included.
func (s *Service) GetPricingSettings(ctx context.Context) models.PricingSettings {
	return models.PricingSettings{
		Config:   s.LoadPricingConfig(ctx),
		Locality: s.loadLocality(ctx),
	}
}

// UpdatePricingSettings validates and stores every administrable setting in one transaction.
func (s *Service) UpdatePricingSettings(ctx context.Context, in models.PricingSettings) error {
	const op = "PricingService.UpdatePricingSettings"
	ctx = wrap.WithAction(ctx, types.ActionUpdatePricingConfig)

	if err := ValidatePricingConfig(in.Config); err != nil {
		return wrap.Error(ctx, err)
	}

	city, state := strings.TrimSpace(in.Locality.City), strings.TrimSpace(in.Locality.State)
	if city == "" || state == "" {
		return wrap.Error(ctx, fmt.Errorf("%w: default city and state are required", types.ErrInvalidPricingConfig))
	}

	values := []struct {
		key   string
		value string
	}{
		{models.SettingBaseFee, formatAmount(in.Config.BaseFee)},
		{models.SettingPerKmRate, formatAmount(in.Config.PerKmRate)},
		{models.SettingMinimumFee, formatAmount(in.Config.MinimumFee)},
		{models.SettingMaximumFee, formatAmount(in.Config.MaximumFee)},
		{models.SettingDefaultCity, city},
		{models.SettingDefaultState, state},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		for _, v := range values {
			if err := s.settings.UpsertSetting(ctx, v.key, v.value); err != nil {
				return fmt.Errorf("failed to store %s: %w", v.key, err)
			}
		}
		return nil
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	s.l.Info(ctx, "pricing settings updated",
		"base_fee", in.Config.BaseFee,
		"per_km_rate", in.Config.PerKmRate,
		"minimum_fee", in.Config.MinimumFee,
		"maximum_fee", in.Config.MaximumFee,
		"default_city", city,
		"default_state", state)

	return nil
}

func (s *Service) loadLocality(ctx context.Context) models.Locality {
	loc := models.Locality{City: models.DefaultCity, State: models.DefaultState}

	settings, err := s.settings.GetSettings(ctx, models.SettingDefaultCity, models.SettingDefaultState)
	if err != nil {
		s.l.Warn(ctx, "failed to read default locality, using fallback", "error", err.Error())
		return loc
	}

	if v := strings.TrimSpace(settings[models.SettingDefaultCity].Value); v != "" {
		loc.City = v
	}
	if v := strings.TrimSpace(settings[models.SettingDefaultState].Value); v != "" {
		loc.State = v
	}
	return loc
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
