package service

import (
	"context"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type CatalogService struct {
	repo  CatalogRepository
	cache DishCache
	log   logrus.FieldLogger
}

func NewCatalogService(repo CatalogRepository, cache DishCache, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (domain.RestaurantDetail, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return domain.RestaurantDetail{}, err
	}
	dishes, err := s.repo.ListDishes(ctx, &id)
	if err != nil {
		return domain.RestaurantDetail{}, err
	}
	return domain.RestaurantDetail{Restaurant: rest, Dishes: dishes}, nil
}

func (s *CatalogService) ListDishes(ctx context.Context, restaurantID *int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

// GetDish returns the dish merged with its restaurant and reviews. Details
// are served from the cache until a new review invalidates them.
func (s *CatalogService) GetDish(ctx context.Context, id int) (domain.DishDetail, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return *cached, nil
	}

	dish, err := s.repo.GetDish(ctx, id)
	if err != nil {
		return domain.DishDetail{}, err
	}
	rest, err := s.repo.GetRestaurant(ctx, dish.RestaurantID)
	if err != nil {
		return domain.DishDetail{}, err
	}
	reviews, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return domain.DishDetail{}, err
	}

	detail := domain.DishDetail{
		Dish:          dish,
		Restaurant:    rest,
		Reviews:       reviews,
		AverageRating: domain.AverageRating(reviews),
	}
	if err := s.cache.Set(ctx, detail); err != nil {
		s.log.WithError(err).WithField("dish_id", id).Warn("dish cache write failed")
	}
	return detail, nil
}
