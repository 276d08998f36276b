package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/hasher"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

// Store is the subset of the redis client used by the cache.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

type ForwardGeocoder interface {
	Search(ctx context.Context, query string) (models.GeoPoint, error)
}

// CachedGeocoder memoizes successful forward geocoding lookups in redis.
// Cache failures are logged and never fail the lookup itself.
type CachedGeocoder struct {
	next  ForwardGeocoder
	store Store
	ttl   time.Duration
	l     logger.Logger
}

func NewCachedGeocoder(next ForwardGeocoder, store Store, ttl time.Duration, l logger.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		next:  next,
		store: store,
		ttl:   ttl,
		l:     l,
	}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) (models.GeoPoint, error) {
	ctx = wrap.WithAction(ctx, types.ActionGeocodeCache)
	key := hasher.Key(keyPrefix, strings.ToLower(strings.TrimSpace(query)))

	if p, ok := c.get(ctx, key); ok {
		metrics.RecordCacheLookup(true)
		return p, nil
	}
	metrics.RecordCacheLookup(false)

	p, err := c.next.Search(ctx, query)
	if err != nil {
		return p, err
	}

	c.set(ctx, key, p)
	return p, nil
}

func (c *CachedGeocoder) get(ctx context.Context, key string) (models.GeoPoint, bool) {
	var p models.GeoPoint

	raw, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.l.Warn(ctx, "failed to read geocode cache", "key", key, "error", err.Error())
		}
		return p, false
	}

	if err := json.Unmarshal(raw, &p); err != nil || !p.Valid() {
		c.l.Warn(ctx, "discarding malformed geocode cache entry", "key", key)
		return models.GeoPoint{}, false
	}

	return p, true
}

func (c *CachedGeocoder) set(ctx context.Context, key string, p models.GeoPoint) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.l.Warn(ctx, "failed to encode geocode cache entry", "error", err.Error())
		return
	}

	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.l.Warn(ctx, "failed to write geocode cache", "key", key, "error", fmt.Sprint(err))
	}
}
