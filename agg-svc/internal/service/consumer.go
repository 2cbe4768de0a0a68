package service

import (
	"context"
	"encoding/json"
	"time"

	"crawingo-delivery/agg-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    logrus.FieldLogger
	now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface, log logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
		now:    time.Now,
	}
}

// Start reads until ctx is cancelled. Malformed messages are skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info("aggregation consumer stopped")
				return
			}
			c.Log.WithError(err).Warn("error reading message")
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Log.WithError(err).WithField("topic", message.Topic).Warn("error unmarshaling message")
			continue
		}
		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.KafkaMessage) {
	at := msg.Timestamp
	if at.IsZero() && c.now != nil {
		at = c.now()
	}

	switch msg.Type {
	case domain.EventReviewCreated:
		c.processReview(ctx, msg, at)
	case domain.EventOrderCreated:
		c.processOrder(ctx, msg, at)
	case domain.EventOrderStatus:
		c.Log.WithFields(logrus.Fields{"order_id": msg.OrderID, "status": msg.Status}).Debug("order status changed")
	default:
		c.Log.WithField("type", msg.Type).Warn("ignoring unknown event type")
	}
}

func (c *Consumer) processReview(ctx context.Context, msg domain.KafkaMessage, at time.Time) {
	log := c.Log.WithFields(logrus.Fields{
		"dish_id":       msg.DishID,
		"restaurant_id": msg.RestaurantID,
		"rating":        msg.Rating,
	})
	if msg.DishID < 1 || msg.Rating < 1 || msg.Rating > 5 {
		log.Warn("skipping malformed review event")
		return
	}
	if err := c.Store.RecordReview(ctx, msg.DishID, msg.RestaurantID, msg.Rating, at); err != nil {
		log.WithError(err).Error("error updating dish rating")
		return
	}
	log.Info("processed review")
}

func (c *Consumer) processOrder(ctx context.Context, msg domain.KafkaMessage, at time.Time) {
	log := c.Log.WithFields(logrus.Fields{"order_id": msg.OrderID, "restaurant_id": msg.RestaurantID})
	if len(msg.Items) == 0 {
		log.Warn("skipping order event without items")
		return
	}
	if err := c.Store.RecordOrder(ctx, msg.RestaurantID, msg.Items, at); err != nil {
		log.WithError(err).Error("error updating popularity")
		return
	}
	log.Info("processed order")
}
