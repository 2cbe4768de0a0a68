package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"crawingo-delivery/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	dailyTTL  = 7 * 24 * time.Hour
	dayLayout = "2006-01-02"
	globalKey = "ratings:all"
)

// Store keeps review and order aggregates in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func dishKey(restaurantID, dishID int) string {
	return fmt.Sprintf("dish:%d:%d", restaurantID, dishID)
}

func dailyKey(date string, restaurantID int) string {
	return fmt.Sprintf("analytics:daily:%s:%d", date, restaurantID)
}

func allTimeKey(restaurantID int) string {
	return fmt.Sprintf("analytics:alltime:%d", restaurantID)
}

func ratingsKey(restaurantID int) string {
	return fmt.Sprintf("ratings:%d", restaurantID)
}

// RecordReview folds one rating into the dish aggregate, the rating
// histograms and the all-time leaderboard.
func (s *Store) RecordReview(ctx context.Context, dishID, restaurantID, rating int, at time.Time) error {
	key := dishKey(restaurantID, dishID)
	star := strconv.Itoa(rating)

	var count, sum *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		count = p.HIncrBy(ctx, key, "review_count", 1)
		sum = p.HIncrBy(ctx, key, "rating_sum", int64(rating))
		p.HSet(ctx, key, "last_updated", at.Unix())
		p.HIncrBy(ctx, ratingsKey(restaurantID), star, 1)
		p.HIncrBy(ctx, globalKey, star, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record review for dish %d: %w", dishID, err)
	}

	avg, _ := average(sum.Val(), count.Val()).Float64()
	if err := s.rdb.ZAdd(ctx, allTimeKey(restaurantID), redis.Z{
		Score:  avg,
		Member: strconv.Itoa(dishID),
	}).Err(); err != nil {
		return fmt.Errorf("update leaderboard for restaurant %d: %w", restaurantID, err)
	}
	return nil
}

// RecordOrder adds each item's quantity to the day's popularity board.
func (s *Store) RecordOrder(ctx context.Context, restaurantID int, items []domain.OrderItem, at time.Time) error {
	key := dailyKey(at.UTC().Format(dayLayout), restaurantID)
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, item := range items {
			p.ZIncrBy(ctx, key, float64(item.Quantity), strconv.Itoa(item.DishID))
		}
		p.Expire(ctx, key, dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record order for restaurant %d: %w", restaurantID, err)
	}
	return nil
}

func (s *Store) DishStats(ctx context.Context, restaurantID, dishID int) (domain.DishStats, error) {
	fields, err := s.rdb.HGetAll(ctx, dishKey(restaurantID, dishID)).Result()
	if err != nil {
		return domain.DishStats{}, err
	}
	if len(fields) == 0 {
		return domain.DishStats{}, fmt.Errorf("stats for dish %d: %w", dishID, domain.ErrNotFound)
	}
	count, _ := strconv.ParseInt(fields["review_count"], 10, 64)
	sum, _ := strconv.ParseInt(fields["rating_sum"], 10, 64)
	updated, _ := strconv.ParseInt(fields["last_updated"], 10, 64)
	return domain.DishStats{
		DishID:        dishID,
		RestaurantID:  restaurantID,
		AverageRating: average(sum, count),
		ReviewCount:   int(count),
		LastUpdated:   time.Unix(updated, 0).UTC(),
	}, nil
}

// TopOnDate merges every restaurant's board for date. Ties are broken by
// restaurant then dish id.
func (s *Store) TopOnDate(ctx context.Context, date string, limit int) ([]domain.DishAnalytics, error) {
	prefix := "analytics:daily:" + date + ":"
	all := make([]domain.DishAnalytics, 0)

	iter := s.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		restaurantID, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil {
			continue
		}
		entries, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, err
		}
		for _, z := range entries {
			dishID, _ := strconv.Atoi(z.Member.(string))
			all = append(all, domain.DishAnalytics{DishID: dishID, RestaurantID: restaurantID, Score: z.Score})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		if all[i].RestaurantID != all[j].RestaurantID {
			return all[i].RestaurantID < all[j].RestaurantID
		}
		return all[i].DishID < all[j].DishID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// TopDishes ranks a restaurant's dishes by average rating.
func (s *Store) TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error) {
	entries, err := s.rdb.ZRevRangeWithScores(ctx, allTimeKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	top := make([]domain.DishAnalytics, 0, len(entries))
	for _, z := range entries {
		dishID, _ := strconv.Atoi(z.Member.(string))
		count, err := s.rdb.HGet(ctx, dishKey(restaurantID, dishID), "review_count").Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		top = append(top, domain.DishAnalytics{
			DishID:       dishID,
			RestaurantID: restaurantID,
			Score:        z.Score,
			ReviewCount:  count,
		})
	}
	return top, nil
}

// RatingDistribution counts reviews per star. restaurantID 0 means every
// restaurant.
func (s *Store) RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error) {
	key := globalKey
	if restaurantID > 0 {
		key = ratingsKey(restaurantID)
	}
	counts, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	dist := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for star := range dist {
		if v, ok := counts[star]; ok {
			dist[star], _ = strconv.Atoi(v)
		}
	}
	return dist, nil
}

func average(sum, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(2)
}
