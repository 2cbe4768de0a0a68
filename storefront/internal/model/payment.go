package model

import "fmt"

type PaymentMethod string

const (
	PaymentUPI    PaymentMethod = "upi"
	PaymentCard   PaymentMethod = "card"
	PaymentGPay   PaymentMethod = "gpay"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCOD    PaymentMethod = "cod"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentUPI:    "UPI",
	PaymentCard:   "Credit/Debit Card",
	PaymentGPay:   "Google Pay",
	PaymentPayPal: "PayPal",
	PaymentCOD:    "Cash on Delivery",
}

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentUPI, PaymentCard, PaymentGPay, PaymentPayPal, PaymentCOD}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown payment method %q", s)
	}
	return p, nil
}

func (p PaymentMethod) Valid() bool {
	_, ok := paymentLabels[p]
	return ok
}

func (p PaymentMethod) Label() string {
	return paymentLabels[p]
}

// ConfirmLabel is the checkout button text. Cash on delivery skips payment.
func (p PaymentMethod) ConfirmLabel() string {
	if p == PaymentCOD {
		return "Place Order"
	}
	return "Pay & Place Order"
}
