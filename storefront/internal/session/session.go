// Package session ties one shopper's cart to the delivery progress of the
// order placed from it.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"crawingo-delivery/storefront/internal/cart"
	"crawingo-delivery/storefront/internal/model"
	"crawingo-delivery/storefront/internal/notify"
	"crawingo-delivery/storefront/internal/progress"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderPlacer submits the cart contents to the backend.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, items []model.OrderItem) (model.Order, error)
}

// StatusReporter mirrors delivery progress to the backend.
type StatusReporter interface {
	ReportStatus(ctx context.Context, orderID int, status string) error
}

type Options struct {
	Placer    OrderPlacer
	Reporter  StatusReporter
	Notifier  notify.Notifier
	Scheduler progress.Scheduler
	Interval  time.Duration
	Grace     time.Duration
	Log       logrus.FieldLogger

	// OnReset runs after a delivered order has been cleared.
	OnReset func()
}

// Session serializes every operation on its cart and machine through one
// mutex. Lock order is session then machine; machine hooks take the
// session lock on their own.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	cart      *cart.Cart
	machine   *progress.Machine
	placer    OrderPlacer
	reporter  StatusReporter
	notifier  notify.Notifier
	log       logrus.FieldLogger
	resetHook func()

	ctx    context.Context
	cancel context.CancelFunc

	payment      model.PaymentMethod
	checkoutOpen bool
	inProgress   bool
	closed       bool
	order        *model.Order
	lastReported string
}

func New(opts Options) *Session {
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard{}
	}
	if opts.Log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opts.Log = logger
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:        id,
		cart:      cart.New(opts.Notifier),
		placer:    opts.Placer,
		reporter:  opts.Reporter,
		notifier:  opts.Notifier,
		log:       opts.Log.WithField("session_id", id.String()),
		resetHook: opts.OnReset,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.machine = progress.NewMachine(opts.Scheduler, progress.Config{
		Interval: opts.Interval,
		Grace:    opts.Grace,
	}, progress.Hooks{
		OnStatus:    s.onStatus,
		OnDelivered: s.onDelivered,
		OnReset:     s.onReset,
	})
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

// mutable must be called with mu held.
func (s *Session) mutable() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.inProgress {
		return ErrOrderInProgress
	}
	return nil
}

func (s *Session) AddItem(dish model.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.cart.Add(dish)
	return nil
}

func (s *Session) RemoveItem(dishID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.cart.Remove(dishID)
	return nil
}

func (s *Session) UpdateQuantity(dishID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.cart.UpdateQuantity(dishID, quantity)
	return nil
}

func (s *Session) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	s.cart.Clear()
	return nil
}

func (s *Session) Items() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Session) SelectPayment(method model.PaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPayment, method)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.payment = method
	return nil
}

func (s *Session) Payment() model.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

func (s *Session) ConfirmLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment.ConfirmLabel()
}

// CanCheckout returns nil when the cart holds items and a payment method
// is chosen.
func (s *Session) CanCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canCheckout()
}

func (s *Session) canCheckout() error {
	if s.cart.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrCheckoutNotAllowed, ErrEmptyCart)
	}
	if s.payment == "" {
		return fmt.Errorf("%w: %w", ErrCheckoutNotAllowed, ErrNoPaymentMethod)
	}
	return nil
}

func (s *Session) OpenCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.checkoutOpen = true
	return nil
}

func (s *Session) CloseCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutOpen = false
}

func (s *Session) CheckoutOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutOpen
}

func (s *Session) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inProgress
}

// Order returns the order placed by the current checkout, if any.
func (s *Session) Order() (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.order == nil {
		return model.Order{}, false
	}
	return *s.order, true
}

func (s *Session) Progress() int {
	return s.machine.Progress()
}

func (s *Session) Status() progress.Status {
	return s.machine.Status()
}

// Checkout places the order and starts delivery progress. A failure from
// the placer leaves the cart untouched.
func (s *Session) Checkout(ctx context.Context) (model.Order, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Order{}, ErrSessionClosed
	}
	if s.inProgress {
		s.mu.Unlock()
		return model.Order{}, ErrOrderInProgress
	}
	if err := s.canCheckout(); err != nil {
		s.mu.Unlock()
		return model.Order{}, err
	}
	items := s.cart.OrderItems()
	total := s.cart.Total()
	s.inProgress = true
	s.mu.Unlock()

	order := model.Order{Items: items, Total: total, Status: progress.Confirmed.Code()}
	if s.placer != nil {
		placed, err := s.placer.PlaceOrder(ctx, items)
		if err != nil {
			s.mu.Lock()
			s.inProgress = false
			s.mu.Unlock()
			s.log.WithError(err).Warn("order placement failed")
			s.notifier.Notify(notify.Notification{
				Title:   "Payment failed",
				Message: err.Error(),
				Variant: notify.Destructive,
			})
			return model.Order{}, fmt.Errorf("place order: %w", err)
		}
		order = placed
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Order{}, ErrSessionClosed
	}
	s.order = &order
	s.lastReported = order.Status
	if err := s.machine.Start(); err != nil {
		s.inProgress = false
		s.order = nil
		s.mu.Unlock()
		return model.Order{}, err
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "total": total.String()}).Info("order placed")
	s.notifier.Notify(notify.Notification{
		Title:   "Payment Successful!",
		Message: fmt.Sprintf("Your order of %s has been placed successfully.", model.FormatINR(total)),
	})
	return order, nil
}

// Close cancels pending progress. Every later call returns ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.machine.Stop()
	s.inProgress = false
	s.checkoutOpen = false
}

func (s *Session) onStatus(status progress.Status, value int) {
	s.mu.Lock()
	if s.closed || s.order == nil {
		s.mu.Unlock()
		return
	}
	code := status.Code()
	orderID := s.order.ID
	changed := code != s.lastReported
	if changed {
		s.lastReported = code
		s.order.Status = code
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"order_id": orderID, "progress": value}).Debug(status.String())
	if !changed || s.reporter == nil || orderID == 0 {
		return
	}
	if err := s.reporter.ReportStatus(s.ctx, orderID, code); err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Warn("status report failed")
	}
}

func (s *Session) onDelivered() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.notifier.Notify(notify.Notification{
		Title:   "Order Delivered!",
		Message: "Thank you for ordering with Crawingo!",
	})
}

func (s *Session) onReset() {
	s.mu.Lock()
	s.cart.Clear()
	s.checkoutOpen = false
	s.inProgress = false
	s.mu.Unlock()

	if s.resetHook != nil {
		s.resetHook()
	}
}
