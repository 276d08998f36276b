package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
	"github.com/Temutjin2k/delivery-pricing/pkg/trm"
)

// publishTimeout bounds a single quote event publish.
const publishTimeout = 2 * time.Second

type Service struct {
	settings  SettingsRepo
	geocoder  Geocoder
	estimator Estimator
	publisher QuotePublisher
	trm       trm.TxManager

	publishTimeout time.Duration
	publishing     sync.WaitGroup

	loc *time.Location
	now func() time.Time

	l logger.Logger
}

// NewService builds the pricing service. loc is the time zone of the surge
// wall clock, nil means UTC.
func NewService(
	settings SettingsRepo,
	geocoder Geocoder,
	estimator Estimator,
	publisher QuotePublisher,
	trm trm.TxManager,
	loc *time.Location,
	l logger.Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		settings:  settings,
		geocoder:  geocoder,
		estimator: estimator,
		publisher: publisher,
		trm:       trm,

		publishTimeout: publishTimeout,

		loc: loc,
		now: time.Now,
		l:   l,
	}
}

type estimate struct {
	pickup   models.GeoPoint
	delivery models.GeoPoint
	result   models.DistanceResult
}

// CalculateDeliveryDistance geocodes both addresses, estimates the road distance
// and travel time and prices the delivery. It fails with types.ErrNotFound
// when either address cannot be located.
func (s *Service) CalculateDeliveryDistance(ctx context.Context, req models.DeliveryRequest) (*models.DistanceResult, error) {
	est, err := s.estimate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &est.result, nil
}

// Quote prices a delivery, classifies its zone and applies the surge of the current time.
// The calculated quote is published for downstream consumers in the background,
// a slow or failing broker never delays or fails the quote.
func (s *Service) Quote(ctx context.Context, req models.DeliveryRequest) (*models.DeliveryQuote, error) {
	est, err := s.estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	quote := &models.DeliveryQuote{
		ID:       uuid.NewString(),
		Pickup:   est.pickup,
		Delivery: est.delivery,
		Result:   est.result,
		Zone:     GetDeliveryZone(est.result.DistanceKm),
		Surge:    ApplySurgePricingAt(est.result.DeliveryFee, now),
		QuotedAt: now,
	}

	ctx = wrap.WithQuoteID(ctx, quote.ID)
	evt := models.QuoteCalculatedEvent{
		QuoteID:              quote.ID,
		CorrelationID:        wrap.GetRequestID(ctx),
		Pickup:               quote.Pickup,
		Delivery:             quote.Delivery,
		DistanceKm:           quote.Result.DistanceKm,
		EstimatedTimeMinutes: quote.Result.EstimatedTimeMinutes,
		DeliveryFee:          quote.Result.DeliveryFee,
		Timestamp:            now.UTC(),
	}
	s.publishQuote(ctx, evt)

	return quote, nil
}

func (s *Service) publishQuote(ctx context.Context, evt models.QuoteCalculatedEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)

	s.publishing.Add(1)
	go func() {
		defer s.publishing.Done()
		defer cancel()

		if err := s.publisher.PublishQuoteCalculated(ctx, evt); err != nil {
			s.l.Error(wrap.ErrorCtx(ctx, err), "failed to publish quote event", err)
		}
	}()
}

// Close waits for quote events that are still being published.
func (s *Service) Close() {
	s.publishing.Wait()
}

// SurgeNow applies the surge of the current time in the service time zone.
func (s *Service) SurgeNow(baseFee float64) models.SurgeResult {
	return ApplySurgePricingAt(baseFee, s.now().In(s.loc))
}

func (s *Service) estimate(ctx context.Context, req models.DeliveryRequest) (_ estimate, err error) {
	const op = "PricingService.CalculateDeliveryDistance"
	ctx = wrap.WithAction(ctx, types.ActionCalculateDistance)

	var est estimate
	defer func() { metrics.RecordQuote(est.result.DeliveryFee, err) }()

	var cfg models.PricingConfig

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg = s.LoadPricingConfig(gctx)
		return nil
	})
	g.Go(func() error {
		p, err := s.geocoder.Geocode(gctx, req.PickupAddress, req.PickupPostalCode)
		if err != nil {
			return notFound("pickup", err)
		}
		est.pickup = p
		return nil
	})
	g.Go(func() error {
		p, err := s.geocoder.Geocode(gctx, req.DeliveryAddress, req.DeliveryPostalCode)
		if err != nil {
			return notFound("delivery", err)
		}
		est.delivery = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return est, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	correctedKm, minutes := s.estimator.Estimate(est.pickup, est.delivery)
	est.result = models.DistanceResult{
		DistanceKm:           Round2(correctedKm),
		EstimatedTimeMinutes: minutes,
		DeliveryFee:          CalculateDeliveryFee(correctedKm, cfg),
	}

	s.l.Debug(ctx, "delivery priced",
		"distance_km", est.result.DistanceKm,
		"estimated_time_minutes", est.result.EstimatedTimeMinutes,
		"delivery_fee", est.result.DeliveryFee)

	return est, nil
}

func notFound(which string, err error) error {
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("%s address: %w", which, err)
	}
	return fmt.Errorf("%s address: %w: %w", which, types.ErrNotFound, err)
}
