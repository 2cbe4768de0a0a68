package model

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.Make("en-IN"))

// FormatINR renders whole rupees with Indian digit grouping, e.g. ₹12,34,567.
func FormatINR(amount decimal.Decimal) string {
	rupees := amount.Round(0).IntPart()
	sign := ""
	if rupees < 0 {
		sign = "-"
		rupees = -rupees
	}
	return sign + "₹" + inrPrinter.Sprintf("%d", rupees)
}
