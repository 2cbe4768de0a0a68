package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type ReviewService struct {
	repo      CatalogRepository
	cache     DishCache
	publisher EventPublisher
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewReviewService(repo CatalogRepository, cache DishCache, publisher EventPublisher, log logrus.FieldLogger) *ReviewService {
	return &ReviewService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Create validates the review before anything touches the store. A stored
// review drops the cached dish detail so the next read shows it.
func (s *ReviewService) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrValidation)
	}
	review.Comment = strings.TrimSpace(review.Comment)
	if review.Comment == "" {
		return domain.Review{}, fmt.Errorf("comment is required: %w", domain.ErrValidation)
	}

	dish, err := s.repo.GetDish(ctx, review.DishID)
	if err != nil {
		return domain.Review{}, err
	}

	review.CreatedAt = s.now().UTC()
	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return domain.Review{}, err
	}

	logger := s.log.WithField("dish_id", dish.ID)
	if err := s.cache.Invalidate(ctx, dish.ID); err != nil {
		logger.WithError(err).Warn("dish cache invalidation failed")
	}
	if err := s.publisher.PublishReview(ctx, domain.KafkaMessage{
		Type:         domain.EventReviewCreated,
		DishID:       dish.ID,
		RestaurantID: dish.RestaurantID,
		Rating:       created.Rating,
		Timestamp:    created.CreatedAt,
	}); err != nil {
		logger.WithError(err).Warn("review event not published")
	}
	return created, nil
}

func (s *ReviewService) ListDishReviews(ctx context.Context, dishID int) ([]domain.Review, error) {
	if _, err := s.repo.GetDish(ctx, dishID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, dishID)
}
