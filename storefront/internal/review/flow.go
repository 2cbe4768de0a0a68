// Package review holds the input state of the dish review form and submits
// it.
package review

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"crawingo-delivery/storefront/internal/apiclient"
	"crawingo-delivery/storefront/internal/model"
	"crawingo-delivery/storefront/internal/notify"

	"github.com/sirupsen/logrus"
)

var ErrValidation = apiclient.ErrValidation

const DefaultRating = 5

// Poster is satisfied by *apiclient.Client.
type Poster interface {
	PostReview(ctx context.Context, dishID, rating int, comment string) (model.Review, error)
	InvalidateDish(dishID int)
}

type Flow struct {
	mu       sync.Mutex
	poster   Poster
	notifier notify.Notifier
	log      logrus.FieldLogger

	rating  int
	comment string
}

func NewFlow(poster Poster, notifier notify.Notifier, log logrus.FieldLogger) *Flow {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Flow{poster: poster, notifier: notifier, log: log, rating: DefaultRating}
}

func (f *Flow) SetRating(rating int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rating = rating
}

func (f *Flow) SetComment(comment string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comment = comment
}

func (f *Flow) Rating() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rating
}

func (f *Flow) Comment() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comment
}

func (f *Flow) invalid(message string) error {
	f.notifier.Notify(notify.Notification{Title: "Error", Message: message, Variant: notify.Destructive})
	return fmt.Errorf("%w: %s", ErrValidation, strings.ToLower(message))
}

// Submit posts the current input for dishID. Inputs reset to defaults only
// when the server accepts the review.
func (f *Flow) Submit(ctx context.Context, dishID int) (model.Review, error) {
	f.mu.Lock()
	rating, comment := f.rating, f.comment
	f.mu.Unlock()

	if strings.TrimSpace(comment) == "" {
		return model.Review{}, f.invalid("Please enter a comment")
	}
	if rating < 1 || rating > 5 {
		return model.Review{}, f.invalid("Rating must be between 1 and 5")
	}

	review, err := f.poster.PostReview(ctx, dishID, rating, comment)
	if err != nil {
		f.log.WithError(err).WithField("dish_id", dishID).Warn("review submission failed")
		f.notifier.Notify(notify.Notification{
			Title:   "Review failed",
			Message: err.Error(),
			Variant: notify.Destructive,
		})
		return model.Review{}, fmt.Errorf("submit review: %w", err)
	}

	f.poster.InvalidateDish(dishID)
	f.mu.Lock()
	f.rating = DefaultRating
	f.comment = ""
	f.mu.Unlock()

	f.notifier.Notify(notify.Notification{
		Title:   "Review submitted",
		Message: "Thank you for your feedback!",
	})
	return review, nil
}

var _ Poster = (*apiclient.Client)(nil)
