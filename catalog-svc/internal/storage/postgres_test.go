package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"
	"crawingo-delivery/catalog-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

var dishColumns = []string{"id", "restaurant_id", "name", "description", "price", "image", "category", "spice_level"}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	for _, table := range []string{"users", "restaurants", "dishes", "reviews", "orders"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchemaError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(errors.New("permission denied"))

	err := repo.EnsureSchema()
	assert.ErrorContains(t, err, "permission denied")
}

func TestPostgresRepository_CreateRestaurant(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs("Spice Garden", "desc", "img", sqlmock.AnyArg(), "North Indian", "₹₹", "Mumbai").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rest, err := repo.CreateRestaurant(context.Background(), domain.Restaurant{
		Name: "Spice Garden", Description: "desc", Image: "img", Rating: decimal.RequireFromString("4.5"),
		Cuisine: "North Indian", PriceRange: "₹₹", Location: "Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListDishes(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID *int
		prepare      func(mock sqlmock.Sqlmock)
		wantLen      int
	}{
		{
			name: "all dishes",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM dishes ORDER BY id").
					WillReturnRows(sqlmock.NewRows(dishColumns).
						AddRow(1, 1, "Paneer Butter Masala", "d", "349", "img", "Vegetarian", 2).
						AddRow(2, 2, "Veg Biryani", "d", "299", "img", "Vegetarian", 2))
			},
			wantLen: 2,
		},
		{
			name:         "filtered by restaurant",
			restaurantID: intPtr(2),
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM dishes WHERE restaurant_id = \\$1").
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows(dishColumns).
						AddRow(2, 2, "Veg Biryani", "d", "299", "img", "Vegetarian", 2))
			},
			wantLen: 1,
		},
		{
			name:         "empty result is not nil",
			restaurantID: intPtr(9),
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM dishes WHERE restaurant_id = \\$1").
					WithArgs(9).
					WillReturnRows(sqlmock.NewRows(dishColumns))
			},
			wantLen: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			testCase.prepare(mock)

			dishes, err := repo.ListDishes(context.Background(), testCase.restaurantID)
			require.NoError(t, err)
			assert.NotNil(t, dishes)
			assert.Len(t, dishes, testCase.wantLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_GetDish(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM dishes WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(dishColumns).
			AddRow(1, 1, "Paneer Butter Masala", "d", "349", "img", "Vegetarian", 2))
	mock.ExpectQuery("SELECT (.+) FROM dishes WHERE id = \\$1").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	dish, err := repo.GetDish(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Paneer Butter Masala", dish.Name)
	assert.True(t, decimal.NewFromInt(349).Equal(dish.Price))

	_, err = repo.GetDish(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateReview(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rating out of range never reaches the database", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		_, err := repo.CreateReview(ctx, domain.Review{DishID: 1, Rating: 7})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown dish", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM dishes WHERE id = \\$1").
			WithArgs(42).
			WillReturnError(sql.ErrNoRows)
		_, err := repo.CreateReview(ctx, domain.Review{DishID: 42, Rating: 4})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inserted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM dishes WHERE id = \\$1").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(dishColumns).
				AddRow(1, 1, "Paneer Butter Masala", "d", "349", "img", "Vegetarian", 2))
		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(3, 1, 5, "Great", created).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

		review, err := repo.CreateReview(ctx, domain.Review{UserID: 3, DishID: 1, Rating: 5, Comment: "Great", CreatedAt: created})
		require.NoError(t, err)
		assert.Equal(t, 10, review.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_Orders(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orderColumns := []string{"id", "user_id", "restaurant_id", "items", "total", "status", "created_at"}
	itemsJSON := `[{"dishId":1,"quantity":2,"price":"349"}]`

	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, 1, sqlmock.AnyArg(), sqlmock.AnyArg(), "confirmed", created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(1, 7, 1, itemsJSON, "698", "confirmed", created))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("preparing", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(1, 7, 1, itemsJSON, "698", "delivered", created))

	items := []domain.OrderItem{{DishID: 1, Quantity: 2, Price: decimal.NewFromInt(349)}}
	order, err := repo.CreateOrder(ctx, domain.Order{
		UserID: 7, RestaurantID: 1, Items: items, Total: domain.ComputeTotal(items), CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, domain.StatusConfirmed, order.Status)

	updated, err := repo.UpdateOrderStatus(ctx, 1, domain.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(698).Equal(updated.Total))

	_, err = repo.UpdateOrderStatus(ctx, 1, domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateUserConflict(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", "Alice", "addr").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	_, err := repo.CreateUser(context.Background(), domain.User{Username: "alice", Password: "hash", Name: "Alice", Address: "addr"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPostgresRepository_GetUserByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "name", "address"}).
			AddRow(1, "alice", "hash", "Alice", "addr"))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = repo.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresRepository_SeedThroughMock(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	empty, err := repo.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func intPtr(v int) *int { return &v }
