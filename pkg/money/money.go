package money

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places every stored amount carries.
const Scale = 2

var hundred = decimal.NewFromInt(100)

// LineAmount computes the amount of a single line item: quantity times
// unit price, rounded to two decimal places.
func LineAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(Scale)
}

// Subtotal sums already-rounded line amounts in decimal precision.
func Subtotal(amounts []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}

// TaxAmount computes subtotal * ratePercent / 100, rounded to two decimal places.
func TaxAmount(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePercent).Div(hundred).Round(Scale)
}

// Total is the grand total of an invoice.
func Total(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount)
}

// Parse converts a string into a decimal amount. Malformed or empty input
// yields zero rather than an error; callers validate upstream.
func Parse(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
