package service

import (
	"context"
	"time"

	"crawingo-delivery/agg-svc/internal/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type AnalyticsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewAnalyticsService(store StoreInterface) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

// TopToday ranks dishes by quantity ordered since UTC midnight.
func (s *AnalyticsService) TopToday(ctx context.Context, limit int) ([]domain.DishAnalytics, error) {
	return s.store.TopOnDate(ctx, s.now().UTC().Format("2006-01-02"), clampLimit(limit))
}

func (s *AnalyticsService) TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error) {
	return s.store.TopDishes(ctx, restaurantID, clampLimit(limit))
}

func (s *AnalyticsService) DishStats(ctx context.Context, restaurantID, dishID int) (domain.DishStats, error) {
	return s.store.DishStats(ctx, restaurantID, dishID)
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error) {
	return s.store.RatingDistribution(ctx, restaurantID)
}
