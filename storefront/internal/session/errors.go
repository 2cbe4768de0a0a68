package session

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoPaymentMethod    = errors.New("no payment method selected")
	ErrCheckoutNotAllowed = errors.New("checkout not allowed")
	ErrOrderInProgress    = errors.New("an order is already in progress")
	ErrSessionClosed      = errors.New("session closed")
	ErrInvalidPayment     = errors.New("invalid payment method")
)
