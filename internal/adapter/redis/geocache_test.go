package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) *goredis.StringCmd {
	if m.getErr != nil {
		return goredis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (m *memStore) Set(_ context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl = ttl
	return goredis.NewStatusResult("OK", nil)
}

type countingGeocoder struct {
	calls int
	point models.GeoPoint
	err   error
}

func (g *countingGeocoder) Search(context.Context, string) (models.GeoPoint, error) {
	g.calls++
	return g.point, g.err
}

func testLogger() logger.Logger {
	return logger.New(io.Discard, "test", logger.LevelError)
}

func TestCachedGeocoder_HitAfterMiss(t *testing.T) {
	store := newMemStore()
	next := &countingGeocoder{point: models.GeoPoint{Latitude: -11.8139, Longitude: -37.6132}}
	c := NewCachedGeocoder(next, store, time.Hour, testLogger())

	p1, err := c.Search(context.Background(), "Rua Floriano Peixoto, Conde")
	require.NoError(t, err)
	p2, err := c.Search(context.Background(), "  rua floriano peixoto, conde ")
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, time.Hour, store.ttl)
	assert.Len(t, store.data, 1)
}

func TestCachedGeocoder_FailuresAreNotCached(t *testing.T) {
	store := newMemStore()
	next := &countingGeocoder{err: types.ErrNoResults}
	c := NewCachedGeocoder(next, store, time.Hour, testLogger())

	_, err := c.Search(context.Background(), "nowhere")
	require.ErrorIs(t, err, types.ErrNoResults)
	_, err = c.Search(context.Background(), "nowhere")
	require.ErrorIs(t, err, types.ErrNoResults)

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, store.data)
}

func TestCachedGeocoder_StoreErrorFallsThrough(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	next := &countingGeocoder{point: models.GeoPoint{Latitude: -12, Longitude: -38}}
	c := NewCachedGeocoder(next, store, time.Minute, testLogger())

	p, err := c.Search(context.Background(), "salvador")
	require.NoError(t, err)
	assert.Equal(t, next.point, p)
	assert.Equal(t, 1, next.calls)
}

func TestCachedGeocoder_MalformedEntryIgnored(t *testing.T) {
	store := newMemStore()
	next := &countingGeocoder{point: models.GeoPoint{Latitude: -12, Longitude: -38}}
	c := NewCachedGeocoder(next, store, time.Minute, testLogger())

	_, err := c.Search(context.Background(), "feira")
	require.NoError(t, err)
	for k := range store.data {
		store.data[k] = "{not json"
	}

	p, err := c.Search(context.Background(), "feira")
	require.NoError(t, err)
	assert.Equal(t, next.point, p)
	assert.Equal(t, 2, next.calls)
}
