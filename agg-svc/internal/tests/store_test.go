package tests

import (
	"context"
	"testing"
	"time"

	"crawingo-delivery/agg-svc/internal/domain"
	"crawingo-delivery/agg-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), mr
}

func TestStore_RecordReviewAndStats(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 4} {
		require.NoError(t, store.RecordReview(ctx, 7, 2, rating, eventTime))
	}

	stats, err := store.DishStats(ctx, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ReviewCount)
	assert.True(t, decimal.RequireFromString("4.33").Equal(stats.AverageRating), stats.AverageRating.String())
	assert.Equal(t, eventTime, stats.LastUpdated)

	score, err := mr.ZScore("analytics:alltime:2", "7")
	require.NoError(t, err)
	assert.InDelta(t, 4.33, score, 0.001)

	_, err = store.DishStats(ctx, 2, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RatingDistribution(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.RecordReview(ctx, 1, 1, 5, eventTime))
	require.NoError(t, store.RecordReview(ctx, 2, 1, 3, eventTime))
	require.NoError(t, store.RecordReview(ctx, 9, 2, 5, eventTime))

	tests := []struct {
		name         string
		restaurantID int
		want         map[string]int
	}{
		{name: "restaurant 1", restaurantID: 1, want: map[string]int{"1": 0, "2": 0, "3": 1, "4": 0, "5": 1}},
		{name: "restaurant 2", restaurantID: 2, want: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 1}},
		{name: "no reviews", restaurantID: 3, want: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}},
		{name: "global", restaurantID: 0, want: map[string]int{"1": 0, "2": 0, "3": 1, "4": 0, "5": 2}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := store.RatingDistribution(ctx, testCase.restaurantID)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestStore_TopOnDate(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, 1, []domain.OrderItem{
		{DishID: 1, Quantity: 2},
		{DishID: 3, Quantity: 1},
	}, eventTime))
	require.NoError(t, store.RecordOrder(ctx, 1, []domain.OrderItem{{DishID: 3, Quantity: 4}}, eventTime))
	require.NoError(t, store.RecordOrder(ctx, 2, []domain.OrderItem{{DishID: 12, Quantity: 2}}, eventTime))
	require.NoError(t, store.RecordOrder(ctx, 2, []domain.OrderItem{{DishID: 14, Quantity: 9}}, eventTime.Add(-24*time.Hour)))

	top, err := store.TopOnDate(ctx, "2026-03-14", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishAnalytics{
		{DishID: 3, RestaurantID: 1, Score: 5},
		{DishID: 1, RestaurantID: 1, Score: 2},
		{DishID: 12, RestaurantID: 2, Score: 2},
	}, top)

	limited, err := store.TopOnDate(ctx, "2026-03-14", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	empty, err := store.TopOnDate(ctx, "2020-01-01", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.True(t, mr.TTL("analytics:daily:2026-03-14:1") > 0)
}

func TestStore_TopDishes(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.RecordReview(ctx, 1, 1, 3, eventTime))
	require.NoError(t, store.RecordReview(ctx, 2, 1, 5, eventTime))
	require.NoError(t, store.RecordReview(ctx, 2, 1, 5, eventTime))
	require.NoError(t, store.RecordReview(ctx, 4, 1, 4, eventTime))

	top, err := store.TopDishes(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishAnalytics{
		{DishID: 2, RestaurantID: 1, Score: 5, ReviewCount: 2},
		{DishID: 4, RestaurantID: 1, Score: 4, ReviewCount: 1},
	}, top)

	none, err := store.TopDishes(ctx, 3, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}
