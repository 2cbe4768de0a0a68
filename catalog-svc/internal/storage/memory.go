package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"
)

// arena keeps rows in insertion order and maps ids to slots.
type arena[T any] struct {
	rows  []T
	index map[int]int
}

func newArena[T any]() *arena[T] {
	return &arena[T]{index: make(map[int]int)}
}

func (a *arena[T]) insert(id int, row T) {
	a.index[id] = len(a.rows)
	a.rows = append(a.rows, row)
}

func (a *arena[T]) get(id int) (T, bool) {
	slot, ok := a.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return a.rows[slot], true
}

func (a *arena[T]) replace(id int, row T) bool {
	slot, ok := a.index[id]
	if !ok {
		return false
	}
	a.rows[slot] = row
	return true
}

func (a *arena[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(a.rows))
	for _, row := range a.rows {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// counters hold the last id handed out per entity type.
type counters struct {
	users       int
	restaurants int
	dishes      int
	reviews     int
	orders      int
}

// MemoryStore is the authoritative in-memory catalog. One instance is built
// at startup and handed to the services; all operations are atomic.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	ids         counters
	users       *arena[domain.User]
	usernames   map[string]int
	restaurants *arena[domain.Restaurant]
	dishes      *arena[domain.Dish]
	reviews     *arena[domain.Review]
	orders      *arena[domain.Order]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:         time.Now,
		users:       newArena[domain.User](),
		usernames:   make(map[string]int),
		restaurants: newArena[domain.Restaurant](),
		dishes:      newArena[domain.Dish](),
		reviews:     newArena[domain.Review](),
		orders:      newArena[domain.Order](),
	}
}

func (s *MemoryStore) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restaurants.filter(nil), nil
}

func (s *MemoryStore) GetRestaurant(_ context.Context, id int) (domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rest, ok := s.restaurants.get(id)
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
	}
	return rest, nil
}

func (s *MemoryStore) CreateRestaurant(_ context.Context, rest domain.Restaurant) (domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids.restaurants++
	rest.ID = s.ids.restaurants
	s.restaurants.insert(rest.ID, rest)
	return rest, nil
}

func (s *MemoryStore) ListDishes(_ context.Context, restaurantID *int) ([]domain.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if restaurantID == nil {
		return s.dishes.filter(nil), nil
	}
	want := *restaurantID
	return s.dishes.filter(func(d domain.Dish) bool { return d.RestaurantID == want }), nil
}

func (s *MemoryStore) GetDish(_ context.Context, id int) (domain.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dish, ok := s.dishes.get(id)
	if !ok {
		return domain.Dish{}, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	return dish, nil
}

func (s *MemoryStore) CreateDish(_ context.Context, dish domain.Dish) (domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants.get(dish.RestaurantID); !ok {
		return domain.Dish{}, fmt.Errorf("restaurant %d: %w", dish.RestaurantID, domain.ErrNotFound)
	}
	s.ids.dishes++
	dish.ID = s.ids.dishes
	s.dishes.insert(dish.ID, dish)
	return dish, nil
}

func (s *MemoryStore) ListReviews(_ context.Context, dishID int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reviews.filter(func(r domain.Review) bool { return r.DishID == dishID }), nil
}

func (s *MemoryStore) CreateReview(_ context.Context, review domain.Review) (domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, fmt.Errorf("rating %d out of range: %w", review.Rating, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dishes.get(review.DishID); !ok {
		return domain.Review{}, fmt.Errorf("dish %d: %w", review.DishID, domain.ErrNotFound)
	}
	s.ids.reviews++
	review.ID = s.ids.reviews
	if review.CreatedAt.IsZero() {
		review.CreatedAt = s.now().UTC()
	}
	s.reviews.insert(review.ID, review)
	return review, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids.orders++
	order.ID = s.ids.orders
	order.Status = domain.StatusConfirmed
	order.Items = cloneItems(order.Items)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}
	s.orders.insert(order.ID, order)
	return cloneOrder(order), nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id int) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders.get(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return cloneOrder(order), nil
}

func (s *MemoryStore) GetUserOrders(_ context.Context, userID int) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := s.orders.filter(func(o domain.Order) bool { return o.UserID == userID })
	for i := range orders {
		orders[i] = cloneOrder(orders[i])
	}
	return orders, nil
}

func (s *MemoryStore) UpdateOrderStatus(_ context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders.get(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if !order.Status.CanMoveTo(status) {
		return domain.Order{}, fmt.Errorf("order %d cannot move from %s to %s: %w", id, order.Status, status, domain.ErrValidation)
	}
	order.Status = status
	s.orders.replace(id, order)
	return cloneOrder(order), nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users.get(id)
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernames[username]
	if !ok {
		return domain.User{}, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	user, _ := s.users.get(id)
	return user, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernames[user.Username]; taken {
		return domain.User{}, fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
	}
	s.ids.users++
	user.ID = s.ids.users
	s.users.insert(user.ID, user)
	s.usernames[user.Username] = user.ID
	return user, nil
}

func cloneItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = cloneItems(o.Items)
	return o
}
