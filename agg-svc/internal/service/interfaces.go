package service

import (
	"context"
	"time"

	"crawingo-delivery/agg-svc/internal/domain"
	"crawingo-delivery/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordReview(ctx context.Context, dishID, restaurantID, rating int, at time.Time) error
	RecordOrder(ctx context.Context, restaurantID int, items []domain.OrderItem, at time.Time) error
	DishStats(ctx context.Context, restaurantID, dishID int) (domain.DishStats, error)
	TopOnDate(ctx context.Context, date string, limit int) ([]domain.DishAnalytics, error)
	TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error)
	RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error)
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.KafkaMessage)
}

type AnalyticsInterface interface {
	TopToday(ctx context.Context, limit int) ([]domain.DishAnalytics, error)
	TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error)
	DishStats(ctx context.Context, restaurantID, dishID int) (domain.DishStats, error)
	RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ MessageReader      = (*kafka.Reader)(nil)
	_ ConsumerInterface  = (*Consumer)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
