package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/lib/pq"
)

// PostgresRepository mirrors the catalog into five relational tables.
// Order items are kept as a JSONB blob rather than normalized rows.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			address TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			image TEXT NOT NULL,
			rating NUMERIC(2,1) NOT NULL,
			cuisine TEXT NOT NULL,
			price_range TEXT NOT NULL,
			location TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL,
			spice_level INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			restaurant_id INTEGER NOT NULL,
			items JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// IsEmpty reports whether no restaurant has been stored yet.
func (r *PostgresRepository) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest domain.Restaurant) (domain.Restaurant, error) {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO restaurants (name, description, image, rating, cuisine, price_range, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		rest.Name, rest.Description, rest.Image, rest.Rating, rest.Cuisine, rest.PriceRange, rest.Location,
	).Scan(&rest.ID)
	return rest, err
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, image, rating, cuisine, price_range, location
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Image, &rest.Rating, &rest.Cuisine, &rest.PriceRange, &rest.Location); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, image, rating, cuisine, price_range, location
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Image, &rest.Rating, &rest.Cuisine, &rest.PriceRange, &rest.Location)
	if err != nil {
		return domain.Restaurant{}, notFound(err, "restaurant", id)
	}
	return rest, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO dishes (restaurant_id, name, description, price, image, category, spice_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Image, dish.Category, dish.SpiceLevel,
	).Scan(&dish.ID)
	return dish, err
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID *int) ([]domain.Dish, error) {
	query := `SELECT id, restaurant_id, name, description, price, image, category, spice_level FROM dishes`
	var args []interface{}
	if restaurantID != nil {
		query += ` WHERE restaurant_id = $1`
		args = append(args, *restaurantID)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.Image, &dish.Category, &dish.SpiceLevel); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, id int) (domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, restaurant_id, name, description, price, image, category, spice_level FROM dishes WHERE id = $1", id).
		Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.Image, &dish.Category, &dish.SpiceLevel)
	if err != nil {
		return domain.Dish{}, notFound(err, "dish", id)
	}
	return dish, nil
}

func (r *PostgresRepository) ListReviews(ctx context.Context, dishID int) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, dish_id, rating, comment, created_at
		FROM reviews
		WHERE dish_id = $1
		ORDER BY id`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.DishID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, fmt.Errorf("rating %d out of range: %w", review.Rating, domain.ErrValidation)
	}
	if _, err := r.GetDish(ctx, review.DishID); err != nil {
		return domain.Review{}, err
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (user_id, dish_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		review.UserID, review.DishID, review.Rating, review.Comment, review.CreatedAt).
		Scan(&review.ID)
	return review, err
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.StatusConfirmed
	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		order.UserID, order.RestaurantID, items, order.Total, string(order.Status), order.CreatedAt).
		Scan(&order.ID)
	return order, err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, items, total, status, created_at
		FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return domain.Order{}, notFound(err, "order", id)
	}
	return order, nil
}

func (r *PostgresRepository) GetUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, restaurant_id, items, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	order, err := r.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.CanMoveTo(status) {
		return domain.Order{}, fmt.Errorf("order %d cannot move from %s to %s: %w", id, order.Status, status, domain.ErrValidation)
	}
	if _, err := r.DB.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", string(status), id); err != nil {
		return domain.Order{}, err
	}
	order.Status = status
	return order, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password, name, address FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Address)
	if err != nil {
		return domain.User{}, notFound(err, "user", id)
	}
	return u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password, name, address FROM users WHERE username = $1", username).
		Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Address)
	if err != nil {
		return domain.User{}, notFound(err, "user", username)
	}
	return u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO users (username, password, name, address) VALUES ($1, $2, $3, $4) RETURNING id",
		user.Username, user.Password, user.Name, user.Address).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.User{}, fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
		}
		return domain.User{}, err
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		items  []byte
		status string
	)
	if err := row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &items, &order.Total, &status, &order.CreatedAt); err != nil {
		return domain.Order{}, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return domain.Order{}, fmt.Errorf("decode order items: %w", err)
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}

func notFound(err error, entity string, key interface{}) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}
	return err
}
