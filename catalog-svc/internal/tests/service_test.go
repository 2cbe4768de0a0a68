package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"
	"crawingo-delivery/catalog-svc/internal/mocks"
	"crawingo-delivery/catalog-svc/internal/service"
	"crawingo-delivery/catalog-svc/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCatalogService_GetRestaurant(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo, storage.NoopDishCache{}, log)

	rest := domain.Restaurant{ID: 1, Name: "Spice Garden"}
	dishes := []domain.Dish{{ID: 1, RestaurantID: 1, Name: "Paneer Butter Masala"}}
	repo.On("GetRestaurant", ctx, 1).Return(rest, nil).Once()
	repo.On("ListDishes", ctx, mock.MatchedBy(func(id *int) bool { return id != nil && *id == 1 })).Return(dishes, nil).Once()
	repo.On("GetRestaurant", ctx, 99).Return(domain.Restaurant{}, domain.ErrNotFound).Once()

	detail, err := svc.GetRestaurant(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", detail.Name)
	assert.Equal(t, dishes, detail.Dishes)

	_, err = svc.GetRestaurant(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_GetDish(t *testing.T) {
	ctx := context.Background()
	log, hook := logtest.NewNullLogger()

	dish := domain.Dish{ID: 3, RestaurantID: 2, Name: "Veg Biryani", Price: decimal.NewFromInt(299)}
	rest := domain.Restaurant{ID: 2, Name: "South Flavors"}
	reviews := []domain.Review{{ID: 1, DishID: 3, Rating: 5}, {ID: 2, DishID: 3, Rating: 4}}

	tests := []struct {
		name         string
		prepareMocks func(repo *mocks.CatalogRepository, cache *mocks.DishCache)
		wantErr      error
		wantAverage  string
		wantWarnings int
	}{
		{
			name: "cache hit skips the repository",
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache) {
				cached := &domain.DishDetail{Dish: dish, Restaurant: rest, AverageRating: decimal.RequireFromString("3.0")}
				cache.On("Get", ctx, 3).Return(cached, true).Once()
			},
			wantAverage: "3",
		},
		{
			name: "cache miss builds and stores the detail",
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache) {
				cache.On("Get", ctx, 3).Return(nil, false).Once()
				repo.On("GetDish", ctx, 3).Return(dish, nil).Once()
				repo.On("GetRestaurant", ctx, 2).Return(rest, nil).Once()
				repo.On("ListReviews", ctx, 3).Return(reviews, nil).Once()
				cache.On("Set", ctx, mock.MatchedBy(func(d domain.DishDetail) bool {
					return d.ID == 3 && len(d.Reviews) == 2
				})).Return(nil).Once()
			},
			wantAverage: "4.5",
		},
		{
			name: "cache write failure is only logged",
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache) {
				cache.On("Get", ctx, 3).Return(nil, false).Once()
				repo.On("GetDish", ctx, 3).Return(dish, nil).Once()
				repo.On("GetRestaurant", ctx, 2).Return(rest, nil).Once()
				repo.On("ListReviews", ctx, 3).Return([]domain.Review{}, nil).Once()
				cache.On("Set", ctx, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantAverage:  "0",
			wantWarnings: 1,
		},
		{
			name: "unknown dish",
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache) {
				cache.On("Get", ctx, 3).Return(nil, false).Once()
				repo.On("GetDish", ctx, 3).Return(domain.Dish{}, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			hook.Reset()
			repo := mocks.NewCatalogRepository(t)
			cache := mocks.NewDishCache(t)
			testCase.prepareMocks(repo, cache)

			svc := service.NewCatalogService(repo, cache, log)
			detail, err := svc.GetDish(ctx, 3)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantAverage, detail.AverageRating.String())
			assert.Len(t, hook.AllEntries(), testCase.wantWarnings)
		})
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	dish := domain.Dish{ID: 1, RestaurantID: 10}

	tests := []struct {
		name          string
		review        domain.Review
		prepareMocks  func(repo *mocks.CatalogRepository, cache *mocks.DishCache, publisher *mocks.EventPublisher)
		expectedError error
	}{
		{
			name:   "success",
			review: domain.Review{UserID: 7, DishID: 1, Rating: 5, Comment: "  Great!  "},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache, publisher *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 1).Return(dish, nil).Once()
				repo.On("CreateReview", ctx, mock.MatchedBy(func(r domain.Review) bool {
					return r.Comment == "Great!" && !r.CreatedAt.IsZero()
				})).Return(domain.Review{ID: 1, UserID: 7, DishID: 1, Rating: 5, Comment: "Great!"}, nil).Once()
				cache.On("Invalidate", ctx, 1).Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventReviewCreated && m.DishID == 1 && m.RestaurantID == 10 && m.Rating == 5
				})).Return(nil).Once()
			},
		},
		{
			name:   "publish failure does not fail the request",
			review: domain.Review{UserID: 7, DishID: 1, Rating: 3, Comment: "ok"},
			prepareMocks: func(repo *mocks.CatalogRepository, cache *mocks.DishCache, publisher *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 1).Return(dish, nil).Once()
				repo.On("CreateReview", ctx, mock.Anything).Return(domain.Review{ID: 2, DishID: 1, Rating: 3}, nil).Once()
				cache.On("Invalidate", ctx, 1).Return(errors.New("redis down")).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:          "rating too high never reaches the store",
			review:        domain.Review{DishID: 1, Rating: 6, Comment: "x"},
			prepareMocks:  func(*mocks.CatalogRepository, *mocks.DishCache, *mocks.EventPublisher) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "rating zero",
			review:        domain.Review{DishID: 1, Rating: 0, Comment: "x"},
			prepareMocks:  func(*mocks.CatalogRepository, *mocks.DishCache, *mocks.EventPublisher) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "whitespace comment",
			review:        domain.Review{DishID: 1, Rating: 4, Comment: " \t\n"},
			prepareMocks:  func(*mocks.CatalogRepository, *mocks.DishCache, *mocks.EventPublisher) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "unknown dish",
			review: domain.Review{DishID: 999, Rating: 4, Comment: "x"},
			prepareMocks: func(repo *mocks.CatalogRepository, _ *mocks.DishCache, _ *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 999).Return(domain.Dish{}, domain.ErrNotFound).Once()
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			cache := mocks.NewDishCache(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, cache, publisher)

			svc := service.NewReviewService(repo, cache, publisher, log)
			_, err := svc.Create(ctx, testCase.review)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_ListDishReviews(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewReviewService(repo, storage.NoopDishCache{}, storage.NoopPublisher{}, log)

	expected := []domain.Review{
		{ID: 1, DishID: 1, Rating: 5, CreatedAt: time.Now()},
		{ID: 2, DishID: 1, Rating: 4, CreatedAt: time.Now()},
	}
	repo.On("GetDish", ctx, 1).Return(domain.Dish{ID: 1}, nil).Once()
	repo.On("ListReviews", ctx, 1).Return(expected, nil).Once()

	reviews, err := svc.ListDishReviews(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()

	paneer := domain.Dish{ID: 1, RestaurantID: 1, Price: decimal.NewFromInt(349)}
	dosa := domain.Dish{ID: 15, RestaurantID: 2, Price: decimal.NewFromInt(199)}

	tests := []struct {
		name         string
		order        domain.Order
		prepareMocks func(repo *mocks.CatalogRepository, publisher *mocks.EventPublisher)
		wantErr      error
		wantTotal    string
	}{
		{
			name: "captured prices are kept",
			order: domain.Order{UserID: 7, Items: []domain.OrderItem{
				{DishID: 1, Quantity: 2, Price: decimal.NewFromInt(300)},
				{DishID: 15, Quantity: 1, Price: decimal.NewFromInt(199)},
			}},
			prepareMocks: func(repo *mocks.CatalogRepository, publisher *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 1).Return(paneer, nil).Once()
				repo.On("GetDish", ctx, 15).Return(dosa, nil).Once()
				repo.On("CreateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
					return o.RestaurantID == 1 && o.Total.Equal(decimal.NewFromInt(799))
				})).Return(func(_ context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 1
					o.Status = domain.StatusConfirmed
					return o, nil
				}).Once()
				publisher.On("PublishOrder", ctx, mock.MatchedBy(func(m domain.KafkaMessage) bool {
					return m.Type == domain.EventOrderCreated && m.OrderID == 1
				})).Return(nil).Once()
			},
			wantTotal: "799",
		},
		{
			name:  "missing price takes the catalog price",
			order: domain.Order{UserID: 7, RestaurantID: 1, Items: []domain.OrderItem{{DishID: 1, Quantity: 3}}},
			prepareMocks: func(repo *mocks.CatalogRepository, publisher *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 1).Return(paneer, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(func(_ context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 2
					return o, nil
				}).Once()
				publisher.On("PublishOrder", ctx, mock.Anything).Return(nil).Once()
			},
			wantTotal: "1047",
		},
		{
			name:         "no items",
			order:        domain.Order{UserID: 7},
			prepareMocks: func(*mocks.CatalogRepository, *mocks.EventPublisher) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:         "zero quantity",
			order:        domain.Order{UserID: 7, Items: []domain.OrderItem{{DishID: 1, Quantity: 0}}},
			prepareMocks: func(*mocks.CatalogRepository, *mocks.EventPublisher) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:         "negative price",
			order:        domain.Order{UserID: 7, Items: []domain.OrderItem{{DishID: 1, Quantity: 1, Price: decimal.NewFromInt(-1)}}},
			prepareMocks: func(*mocks.CatalogRepository, *mocks.EventPublisher) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:  "unknown dish",
			order: domain.Order{UserID: 7, Items: []domain.OrderItem{{DishID: 999, Quantity: 1}}},
			prepareMocks: func(repo *mocks.CatalogRepository, _ *mocks.EventPublisher) {
				repo.On("GetDish", ctx, 999).Return(domain.Dish{}, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, publisher)

			svc := service.NewOrderService(repo, publisher, mocks.NewQRGenerator(t), "http://localhost:8080", log)
			order, err := svc.Create(ctx, testCase.order)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, order.Total.String())
			assert.False(t, order.CreatedAt.IsZero())
		})
	}
}

func TestOrderService_UpdateStatusAndQRCode(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	repo := mocks.NewCatalogRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, storage.NoopPublisher{}, qr, "http://localhost:8080", log)

	owned := domain.Order{ID: 4, UserID: 7, Status: domain.StatusConfirmed}
	repo.On("GetOrder", ctx, 4).Return(owned, nil)
	repo.On("UpdateOrderStatus", ctx, 4, domain.StatusPreparing).
		Return(domain.Order{ID: 4, UserID: 7, Status: domain.StatusPreparing}, nil).Once()
	qr.On("Generate", 4).Return([]byte("png"), nil).Once()

	updated, err := svc.UpdateStatus(ctx, 7, 4, domain.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)

	_, err = svc.UpdateStatus(ctx, 8, 4, domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrNotFound, "other users cannot see the order")

	_, err = svc.UpdateStatus(ctx, 7, 4, domain.OrderStatus("lost"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	png, err := svc.QRCode(ctx, 7, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.QRCode(ctx, 8, 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, "http://localhost:8080/api/orders/4/qrcode", svc.QRLink(4))
}

func TestTrackingQRGenerator(t *testing.T) {
	png, err := service.TrackingQRGenerator{BaseURL: "http://localhost:8080"}.Generate(12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := service.NewAuthService(store, service.AuthConfig{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	user, token, err := svc.Register(ctx, domain.User{Username: "alice", Password: "s3cret", Name: "Alice", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.NotEmpty(t, token)

	id, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, _, err = svc.Register(ctx, domain.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = store.GetUserByUsername(ctx, "alice")
	assert.NoError(t, err)

	_, _, err = svc.Register(ctx, domain.User{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	logged, loginToken, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, loginToken)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "bob", "s3cret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	current, err := svc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", current.Name)

	_, err = svc.CurrentUser(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	svc := service.NewAuthService(storage.NewMemoryStore(), service.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).
		SignedString([]byte("someone-else"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": foreign,
		"bad subject":  badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
