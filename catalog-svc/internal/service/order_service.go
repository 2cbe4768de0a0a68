package service

import (
	"context"
	"fmt"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderService struct {
	repo      CatalogRepository
	publisher EventPublisher
	qr        QRGenerator
	baseURL   string
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewOrderService(repo CatalogRepository, publisher EventPublisher, qr QRGenerator, baseURL string, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		qr:        qr,
		baseURL:   baseURL,
		log:       log,
		now:       time.Now,
	}
}

// Create stores an order for order.UserID. Item prices are the ones captured
// when the dish went into the cart; an item without a price takes the current
// catalog price. When RestaurantID is zero it is taken from the first item.
func (s *OrderService) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items: %w", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(order.Items))
	for i, item := range order.Items {
		if item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be at least 1: %w", i, domain.ErrValidation)
		}
		if item.Price.IsNegative() {
			return domain.Order{}, fmt.Errorf("item %d: negative price: %w", i, domain.ErrValidation)
		}
		dish, err := s.repo.GetDish(ctx, item.DishID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("item %d: %w", i, err)
		}
		if item.Price.IsZero() {
			item.Price = dish.Price
		}
		if order.RestaurantID == 0 {
			order.RestaurantID = dish.RestaurantID
		}
		items = append(items, item)
	}

	order.Items = items
	order.Total = domain.ComputeTotal(items)
	order.CreatedAt = s.now().UTC()

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.publisher.PublishOrder(ctx, domain.KafkaMessage{
		Type:         domain.EventOrderCreated,
		RestaurantID: created.RestaurantID,
		OrderID:      created.ID,
		Items:        created.Items,
		Total:        created.Total,
		Status:       created.Status,
		Timestamp:    created.CreatedAt,
	}); err != nil {
		s.log.WithError(err).WithField("order_id", created.ID).Warn("order event not published")
	}
	return created, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.repo.GetUserOrders(ctx, userID)
}

// UpdateStatus moves an order owned by userID forward. Orders owned by
// someone else are reported as missing.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID int, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("unknown status %q: %w", status, domain.ErrValidation)
	}
	if _, err := s.owned(ctx, userID, orderID); err != nil {
		return domain.Order{}, err
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.publisher.PublishOrder(ctx, domain.KafkaMessage{
		Type:         domain.EventOrderStatus,
		RestaurantID: updated.RestaurantID,
		OrderID:      updated.ID,
		Status:       updated.Status,
		Timestamp:    s.now().UTC(),
	}); err != nil {
		s.log.WithError(err).WithField("order_id", updated.ID).Warn("status event not published")
	}
	return updated, nil
}

func (s *OrderService) QRCode(ctx context.Context, userID, orderID int) ([]byte, error) {
	if _, err := s.owned(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("%s/api/orders/%d/qrcode", s.baseURL, orderID)
}

func (s *OrderService) owned(ctx context.Context, userID, orderID int) (domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.UserID != userID {
		return domain.Order{}, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return order, nil
}
