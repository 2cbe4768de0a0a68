package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

type DishAnalytics struct {
	DishID       int     `json:"dish_id"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
	ReviewCount  int     `json:"review_count,omitempty"`
}

type DishStats struct {
	DishID        int             `json:"dish_id"`
	RestaurantID  int             `json:"restaurant_id"`
	AverageRating decimal.Decimal `json:"avg_rating"`
	ReviewCount   int             `json:"review_count"`
	LastUpdated   time.Time       `json:"last_updated"`
}
