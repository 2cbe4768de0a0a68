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

// KafkaMessage is the payload published for downstream aggregation.
type KafkaMessage struct {
	Type         string          `json:"type"`
	DishID       int             `json:"dish_id,omitempty"`
	RestaurantID int             `json:"restaurant_id"`
	OrderID      int             `json:"order_id,omitempty"`
	Rating       int             `json:"rating,omitempty"`
	Items        []OrderItem     `json:"items,omitempty"`
	Total        decimal.Decimal `json:"total,omitempty"`
	Status       OrderStatus     `json:"status,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
