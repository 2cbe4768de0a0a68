package service

import (
	"context"

	"crawingo-delivery/catalog-svc/internal/domain"
	"crawingo-delivery/catalog-svc/internal/storage"
)

// CatalogRepository is the persistence contract shared by the in-memory
// store and the Postgres mirror. Lookups of unknown ids return
// domain.ErrNotFound; duplicate usernames return domain.ErrConflict.
type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error)
	ListDishes(ctx context.Context, restaurantID *int) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (domain.Dish, error)

	ListReviews(ctx context.Context, dishID int) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)

	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, id int) (domain.Order, error)
	GetUserOrders(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error)

	GetUser(ctx context.Context, id int) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

// DishCache holds rendered dish details keyed by dish id.
type DishCache interface {
	Get(ctx context.Context, dishID int) (*domain.DishDetail, bool)
	Set(ctx context.Context, detail domain.DishDetail) error
	Invalidate(ctx context.Context, dishID int) error
}

type EventPublisher interface {
	PublishReview(ctx context.Context, msg domain.KafkaMessage) error
	PublishOrder(ctx context.Context, msg domain.KafkaMessage) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (domain.RestaurantDetail, error)
	ListDishes(ctx context.Context, restaurantID *int) ([]domain.Dish, error)
	GetDish(ctx context.Context, id int) (domain.DishDetail, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	ListDishReviews(ctx context.Context, dishID int) ([]domain.Review, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, userID, orderID int, status domain.OrderStatus) (domain.Order, error)
	QRCode(ctx context.Context, userID, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type AuthServiceInterface interface {
	Register(ctx context.Context, user domain.User) (domain.User, string, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	Authenticate(token string) (int, error)
	CurrentUser(ctx context.Context, userID int) (domain.User, error)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ ReviewServiceInterface  = (*ReviewService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ AuthServiceInterface    = (*AuthService)(nil)
	_ QRGenerator             = TrackingQRGenerator{}

	_ CatalogRepository = (*storage.MemoryStore)(nil)
	_ CatalogRepository = (*storage.PostgresRepository)(nil)
	_ DishCache         = (*storage.RedisDishCache)(nil)
	_ DishCache         = storage.NoopDishCache{}
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)
	_ EventPublisher    = storage.NoopPublisher{}
)
