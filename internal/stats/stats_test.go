package stats_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// countStore answers the stats queries from fixed values.
type countStore struct {
	store.Store
	counts map[store.CountQuery]int
	avg    content.Money
	failOn store.CountQuery
	calls  atomic.Int32
}

func (s *countStore) Count(_ context.Context, q store.CountQuery) (int, error) {
	s.calls.Add(1)
	if q == s.failOn {
		return 0, errors.New("query timeout")
	}
	return s.counts[q], nil
}

func (s *countStore) UKAverageSalary(context.Context) (content.Money, error) {
	s.calls.Add(1)
	return s.avg, nil
}

func newCountStore() *countStore {
	return &countStore{
		counts: map[store.CountQuery]int{
			store.CountActiveJobs:     12,
			store.CountLocationFacets: 20,
			store.CountIndustryFacets: 6,
			store.CountAgencies:       3,
		},
		avg: content.Amount(150000),
	}
}

func TestCollector_MergesPositionally(t *testing.T) {
	t.Parallel()

	s := newCountStore()
	got, err := stats.NewCollector(s).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, got.TotalJobs)
	assert.Equal(t, 20, got.TotalLocations)
	assert.Equal(t, 6, got.TotalIndustries)
	assert.Equal(t, 3, got.TotalAgencies)
	assert.Equal(t, content.Amount(150000), got.AvgSalaryUK)
	assert.False(t, got.CollectedAt.IsZero())
	assert.Equal(t, int32(5), s.calls.Load())
}

func TestCollector_OneFailureFailsAll(t *testing.T) {
	t.Parallel()

	s := newCountStore()
	s.failOn = store.CountAgencies

	got, err := stats.NewCollector(s).Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "count agencies")
}

func TestRefresher_KeepsLastGoodSnapshot(t *testing.T) {
	t.Parallel()

	s := newCountStore()
	r, err := stats.NewRefresher(stats.NewCollector(s), "@every 1h", logger.NewNop())
	require.NoError(t, err)
	assert.Nil(t, r.Latest())

	r.Refresh(context.Background())
	first := r.Latest()
	require.NotNil(t, first)

	s.failOn = store.CountActiveJobs
	r.Refresh(context.Background())
	assert.Same(t, first, r.Latest())
}

func TestRefresher_StartStop(t *testing.T) {
	t.Parallel()

	r, err := stats.NewRefresher(stats.NewCollector(newCountStore()), "", nil)
	require.NoError(t, err)

	r.Start(context.Background())
	require.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)
	r.Stop()
}

// slowStore holds every count until release is closed or ctx ends.
type slowStore struct {
	*countStore
	release chan struct{}
}

func (s *slowStore) Count(ctx context.Context, q store.CountQuery) (int, error) {
	select {
	case <-s.release:
		return s.countStore.Count(ctx, q)
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func TestRefresher_StartDoesNotWaitForFirstCollection(t *testing.T) {
	t.Parallel()

	s := &slowStore{countStore: newCountStore(), release: make(chan struct{})}
	r, err := stats.NewRefresher(stats.NewCollector(s), "@every 1h", nil)
	require.NoError(t, err)

	started := make(chan struct{})
	go func() {
		r.Start(context.Background())
		close(started)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("Start blocked on the first collection")
	}
	assert.Nil(t, r.Latest(), "no snapshot before the store answers")

	close(s.release)
	require.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 12, r.Latest().TotalJobs)
	r.Stop()
}

func TestRefresher_StopCancelsFirstCollection(t *testing.T) {
	t.Parallel()

	s := &slowStore{countStore: newCountStore(), release: make(chan struct{})}
	r, err := stats.NewRefresher(stats.NewCollector(s), "@every 1h", nil)
	require.NoError(t, err)

	r.Start(context.Background())
	r.Stop()
	assert.Nil(t, r.Latest())
}

func TestNewRefresher_InvalidSchedule(t *testing.T) {
	t.Parallel()

	_, err := stats.NewRefresher(stats.NewCollector(newCountStore()), "every so often", nil)
	require.Error(t, err)
}

func TestTiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, stats.StaticTiles, stats.Tiles(nil))

	tiles := stats.Tiles(&stats.Stats{TotalLocations: 20, TotalJobs: 1234, AvgSalaryUK: content.Amount(150000)})
	require.Len(t, tiles, 4)
	assert.Equal(t, "20", tiles[0].Value)
	assert.Equal(t, "1,234", tiles[1].Value)
	assert.Equal(t, "£150K", tiles[2].Value)
	assert.Equal(t, "50K+", tiles[3].Value)

	tiles = stats.Tiles(&stats.Stats{AvgSalaryUK: content.MoneyText("£150K")})
	assert.Equal(t, "20+", tiles[0].Value)
	assert.Equal(t, "500+", tiles[1].Value)
	assert.Equal(t, "£150K", tiles[2].Value)
}
