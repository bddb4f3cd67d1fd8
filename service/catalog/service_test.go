package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-costpilot/model"
)

// stubDiscovery counts discovery calls so tests can assert the cache
// actually short-circuits them
type stubDiscovery struct {
	services []string
	err      error
	calls    int
}

func (s *stubDiscovery) GetGroupedCost(ctx context.Context, window model.DateWindow, groupBy model.Dimension, granularity model.Granularity, filter *model.CostFilter) ([]model.CostRecord, error) {
	return nil, nil
}

func (s *stubDiscovery) GetGroupedCostByTag(ctx context.Context, window model.DateWindow, tagKey string, granularity model.Granularity) ([]model.CostRecord, error) {
	return nil, nil
}

func (s *stubDiscovery) GetDimensionValues(ctx context.Context, dimension model.Dimension) ([]string, error) {
	s.calls++
	return s.services, s.err
}

func (s *stubDiscovery) GetTagKeys(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s *stubDiscovery) GetCostForecast(ctx context.Context, days int) (*model.Forecast, error) {
	return nil, nil
}

func TestGetDiscoversAndCaches(t *testing.T) {
	discovery := &stubDiscovery{services: []string{"AWS Lambda", "Amazon Simple Storage Service"}}
	svc := NewService(NewMemoryStore(), time.Hour, discovery, nil, zerolog.Nop())

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, discovery.services, first)

	second, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, discovery.calls)
}

func TestGetRefreshesExpiredRecord(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(&model.CatalogRecord{
		CachedAt: time.Now().Add(-2 * time.Hour),
		Services: []string{"stale"},
	}))

	discovery := &stubDiscovery{services: []string{"fresh"}}
	svc := NewService(store, time.Hour, discovery, nil, zerolog.Nop())

	services, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"fresh"}, services)
	assert.Equal(t, 1, discovery.calls)
}

func TestGetFallsBackWhenDiscoveryFails(t *testing.T) {
	discovery := &stubDiscovery{err: errors.New("access denied")}
	fallback := []string{"Amazon Elastic Compute Cloud - Compute"}
	svc := NewService(NewMemoryStore(), time.Hour, discovery, fallback, zerolog.Nop())

	services, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fallback, services)
}

func TestGetFailsWithoutAnySource(t *testing.T) {
	discovery := &stubDiscovery{err: errors.New("access denied")}
	svc := NewService(NewMemoryStore(), time.Hour, discovery, nil, zerolog.Nop())

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCatalogSource)
}

func TestInvalidateForcesRediscovery(t *testing.T) {
	discovery := &stubDiscovery{services: []string{"AWS Lambda"}}
	svc := NewService(NewMemoryStore(), time.Hour, discovery, nil, zerolog.Nop())

	_, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate())

	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, discovery.calls)
}
