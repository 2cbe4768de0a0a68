package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type Restaurant struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Rating      decimal.Decimal `json:"rating"`
	Cuisine     string          `json:"cuisine"`
	PriceRange  string          `json:"priceRange"`
	Location    string          `json:"location"`
}

type Dish struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurantId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Category     string          `json:"category"`
	SpiceLevel   int             `json:"spiceLevel"`
}

type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	DishID    int       `json:"dishId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID           int             `json:"id"`
	UserID       int             `json:"userId"`
	RestaurantID int             `json:"restaurantId"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OrderItem carries the price captured when the dish went into the cart.
type OrderItem struct {
	DishID   int             `json:"dishId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// RestaurantDetail is a restaurant merged with its menu.
type RestaurantDetail struct {
	Restaurant
	Dishes []Dish `json:"dishes"`
}

// DishDetail is a dish merged with its restaurant and reviews.
type DishDetail struct {
	Dish
	Restaurant    Restaurant      `json:"restaurant"`
	Reviews       []Review        `json:"reviews"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

// ComputeTotal sums price x quantity over the items.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// AverageRating is the mean review rating rounded to one decimal, or zero
// when there are no reviews.
func AverageRating(reviews []Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(1)
}
