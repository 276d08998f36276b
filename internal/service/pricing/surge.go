package pricing

import (
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
)

const (
	ReasonWeekend   = "weekend high demand"
	ReasonLunch     = "lunch rush"
	ReasonDinner    = "dinner rush"
	ReasonLateNight = "late night"
	ReasonNormal    = "normal pricing"
)

type surgeRule struct {
	multiplier float64
	reason     string
	applies    func(hour int, day time.Weekday) bool
}

// surgeRules are evaluated in order, the first match wins.
var surgeRules = []surgeRule{
	{1.5, ReasonWeekend, func(h int, d time.Weekday) bool {
		return (d == time.Friday || d == time.Saturday) && h >= 18 && h <= 23
	}},
	{1.2, ReasonLunch, func(h int, d time.Weekday) bool {
		return isWeekday(d) && h >= 11 && h <= 14
	}},
	{1.3, ReasonDinner, func(h int, d time.Weekday) bool {
		return isWeekday(d) && h >= 18 && h <= 21
	}},
	{1.4, ReasonLateNight, func(h int, _ time.Weekday) bool {
		return h >= 22 || h <= 6
	}},
}

// ApplySurgePricing multiplies baseFee by the demand multiplier of the given hour (0-23) and day.
func ApplySurgePricing(baseFee float64, hour int, day time.Weekday) models.SurgeResult {
	multiplier, reason := 1.0, ReasonNormal

	for _, r := range surgeRules {
		if r.applies(hour, day) {
			multiplier, reason = r.multiplier, r.reason
			break
		}
	}

	return models.SurgeResult{
		Fee:        Round2(baseFee * multiplier),
		Multiplier: multiplier,
		Reason:     reason,
	}
}

// ApplySurgePricingAt uses the hour and weekday of t in its own location.
func ApplySurgePricingAt(baseFee float64, t time.Time) models.SurgeResult {
	return ApplySurgePricing(baseFee, t.Hour(), t.Weekday())
}

func isWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}
