package geocoder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"
)

const defaultTimeout = 8 * time.Second

var (
	errSkipped      = errors.New("skipped")
	errNoMatch      = errors.New("no static match")
	errNotAvailable = errors.New("service not configured")
)

type Options struct {
	Country string
	Aliases Aliases
	// Timeout bounds each external call. A timeout fails the tier.
	Timeout time.Duration
}

// Geocoder resolves free-text addresses into coordinates. It tries a
// fixed list of strategies and returns the first success. The static
// tier always answers, so only an empty address fails.
type Geocoder struct {
	forward  ForwardGeocoder
	postal   PostalLookup
	settings SettingsReader
	tables   Tables
	opts     Options
	l        logger.Logger
}

// New builds a Geocoder. forward, postal and settings may be nil, the
// corresponding tiers are then skipped and the default locality is used.
func New(forward ForwardGeocoder, postal PostalLookup, settings SettingsReader, tables Tables, opts Options, l logger.Logger) *Geocoder {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Country == "" {
		opts.Country = "Brasil"
	}

	return &Geocoder{
		forward:  forward,
		postal:   postal,
		settings: settings,
		tables:   tables,
		opts:     opts,
		l:        l,
	}
}

// request is the per call input shared by all strategies.
type request struct {
	normalized string
	query      string
	postalCode string
	locality   models.Locality
}

type outcome struct {
	point models.GeoPoint
	query string
	err   error
}

type strategy struct {
	source types.GeocodeSource
	run    func(ctx context.Context, r request) outcome
}

func (g *Geocoder) strategies() []strategy {
	return []strategy{
		{types.SourceFullAddress, g.fullAddress},
		{types.SourceStreet, g.streetOnly},
		{types.SourcePostalCode, g.postalCode},
		{types.SourceStaticTable, g.staticTables},
		{types.SourceDefaultCity, g.defaultCity},
		{types.SourceRegionalCentroid, g.regionalCentroid},
	}
}

// Geocode returns the coordinate of address. postalCode is optional.
func (g *Geocoder) Geocode(ctx context.Context, address, postalCode string) (models.GeoPoint, error) {
	res, err := g.Resolve(ctx, address, postalCode)
	if err != nil {
		return models.GeoPoint{}, err
	}
	return res.Point, nil
}

// Resolve is Geocode with the matched source and every attempt made.
func (g *Geocoder) Resolve(ctx context.Context, address, postalCode string) (models.Resolution, error) {
	ctx = wrap.WithAction(ctx, types.ActionGeocode)

	normalized := Normalize(address)
	if normalized == "" {
		return models.Resolution{}, wrap.Error(ctx, fmt.Errorf("%w: %w", types.ErrNotFound, types.ErrInvalidAddress))
	}

	loc := g.locality(ctx)
	req := request{
		normalized: normalized,
		query:      CompleteLocality(normalized, loc, g.opts.Country, g.opts.Aliases),
		postalCode: postalCode,
		locality:   loc,
	}

	var res models.Resolution
	for _, s := range g.strategies() {
		out := s.run(ctx, req)

		attempt := models.GeocodeAttempt{
			Source:  s.source,
			Query:   out.query,
			OK:      out.err == nil,
			Skipped: errors.Is(out.err, errSkipped),
		}
		if out.err != nil {
			attempt.Reason = out.err.Error()
		}
		res.Attempts = append(res.Attempts, attempt)
		g.logAttempt(ctx, attempt)

		if out.err == nil {
			res.Point = out.point
			res.Source = s.source
			res.Query = out.query
			g.l.Info(ctx, "address resolved",
				"address", normalized, "source", s.source.String(),
				"latitude", out.point.Latitude, "longitude", out.point.Longitude)
			return res, nil
		}
	}

	return res, wrap.Error(ctx, types.ErrNotFound)
}

func (g *Geocoder) logAttempt(ctx context.Context, a models.GeocodeAttempt) {
	ctx = wrap.WithAction(ctx, types.ActionGeocodeAttempt)

	if a.Skipped {
		g.l.Debug(ctx, "geocode tier skipped", "source", a.Source.String(), "reason", a.Reason)
		return
	}

	metrics.RecordGeocodeAttempt(a.Source.String(), a.OK)
	if a.OK {
		g.l.Debug(ctx, "geocode attempt succeeded", "source", a.Source.String(), "query", a.Query)
		return
	}
	g.l.Info(ctx, "geocode attempt failed", "source", a.Source.String(), "query", a.Query, "reason", a.Reason)
}

// locality reads the default city and state once per call.
func (g *Geocoder) locality(ctx context.Context) models.Locality {
	loc := models.Locality{City: models.DefaultCity, State: models.DefaultState}
	if g.settings == nil {
		return loc
	}

	settings, err := g.settings.GetSettings(ctx, models.SettingDefaultCity, models.SettingDefaultState)
	if err != nil {
		g.l.Warn(ctx, "failed to read default locality, using fallback", "error", err.Error())
		return loc
	}

	if s, ok := settings[models.SettingDefaultCity]; ok && strings.TrimSpace(s.Value) != "" {
		loc.City = strings.TrimSpace(s.Value)
	}
	if s, ok := settings[models.SettingDefaultState]; ok && strings.TrimSpace(s.Value) != "" {
		loc.State = strings.TrimSpace(s.Value)
	}

	return loc
}

func (g *Geocoder) fullAddress(ctx context.Context, r request) outcome {
	return g.search(ctx, r.query)
}

func (g *Geocoder) streetOnly(ctx context.Context, r request) outcome {
	street, ok := ExtractStreet(r.normalized)
	if !ok {
		return outcome{err: fmt.Errorf("%w: no street type in address", errSkipped)}
	}

	query := joinNonEmpty(street, r.locality.City, r.locality.State, g.opts.Country)
	if query == r.query {
		return outcome{query: query, err: fmt.Errorf("%w: same query as full address", errSkipped)}
	}

	return g.search(ctx, query)
}

func (g *Geocoder) postalCode(ctx context.Context, r request) outcome {
	if strings.TrimSpace(r.postalCode) == "" {
		return outcome{err: fmt.Errorf("%w: no postal code", errSkipped)}
	}

	cep, ok := NormalizeCEP(r.postalCode)
	if !ok {
		return outcome{query: cep, err: fmt.Errorf("%w: postal code must have 8 digits", errSkipped)}
	}
	if g.postal == nil {
		return outcome{query: cep, err: errNotAvailable}
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	addr, err := g.postal.Lookup(ctx, cep)
	if err != nil {
		return outcome{query: cep, err: err}
	}

	if place, ok := lookup(g.tables.Cities, addr.Locality); ok {
		return outcome{point: place.Point, query: cep}
	}

	g.l.Debug(ctx, "postal locality not mapped, using state centroid", "locality", addr.Locality, "state", addr.State)
	return outcome{point: g.tables.StateCentroid, query: cep}
}

func (g *Geocoder) staticTables(_ context.Context, r request) outcome {
	folded := fold(r.normalized)

	for _, table := range [][]Place{g.tables.Streets, g.tables.Neighborhoods, g.tables.Cities} {
		if place, ok := match(table, folded); ok {
			return outcome{point: place.Point, query: place.Name}
		}
	}

	return outcome{query: r.normalized, err: errNoMatch}
}

func (g *Geocoder) defaultCity(_ context.Context, r request) outcome {
	if place, ok := lookup(g.tables.Cities, r.locality.City); ok {
		return outcome{point: place.Point, query: place.Name}
	}
	return outcome{query: r.locality.City, err: errNoMatch}
}

func (g *Geocoder) regionalCentroid(context.Context, request) outcome {
	return outcome{point: g.tables.RegionalCentroid}
}

func (g *Geocoder) search(ctx context.Context, query string) outcome {
	if g.forward == nil {
		return outcome{query: query, err: errNotAvailable}
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	p, err := g.forward.Search(ctx, query)
	if err != nil {
		return outcome{query: query, err: err}
	}
	return outcome{point: p, query: query}
}
