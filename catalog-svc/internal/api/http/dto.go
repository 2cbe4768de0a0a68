package httpapi

import (
	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type orderItemRequest struct {
	DishID   int             `json:"dishId" validate:"gt=0"`
	Quantity int             `json:"quantity" validate:"min=1"`
	Price    decimal.Decimal `json:"price"`
}

type orderRequest struct {
	RestaurantID int                `json:"restaurantId" validate:"gte=0"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (req orderRequest) toDomain(userID int) domain.Order {
	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{DishID: item.DishID, Quantity: item.Quantity, Price: item.Price}
	}
	return domain.Order{UserID: userID, RestaurantID: req.RestaurantID, Items: items}
}

type orderResponse struct {
	domain.Order
	TrackingURL string `json:"trackingUrl"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=confirmed preparing ready_for_pickup out_for_delivery delivered"`
}
