package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
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

type RestaurantDetail struct {
	Restaurant
	Dishes []Dish `json:"dishes"`
}

type DishDetail struct {
	Dish
	Restaurant    Restaurant      `json:"restaurant"`
	Reviews       []Review        `json:"reviews"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

type OrderItem struct {
	DishID   int             `json:"dishId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID           int             `json:"id"`
	UserID       int             `json:"userId"`
	RestaurantID int             `json:"restaurantId"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	TrackingURL  string          `json:"trackingUrl,omitempty"`
}
