package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventReviewCreated = "new_review"
	EventOrderCreated  = "new_order"
	EventOrderStatus   = "order_status"
)

// KafkaMessage mirrors the events published by catalog-svc.
type KafkaMessage struct {
	Type         string          `json:"type"`
	DishID       int             `json:"dish_id"`
	RestaurantID int             `json:"restaurant_id"`
	OrderID      int             `json:"order_id"`
	Rating       int             `json:"rating"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
}

type OrderItem struct {
	DishID   int             `json:"dishId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
