package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/relocaid/relocaid-api/pkg/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineAmount(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		quantity  string
		unitPrice string
		want      string
	}{
		{"whole quantities", "2", "50.00", "100.00"},
		{"single unit", "1", "25.00", "25.00"},
		{"fractional quantity", "1.5", "33.33", "50.00"},
		{"rounds half up", "3", "0.335", "1.01"},
		{"zero quantity", "0", "99.99", "0.00"},
		{"zero price", "4", "0", "0.00"},
		{"cent-level precision", "0.1", "0.3", "0.03"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := money.LineAmount(dec(tt.quantity), dec(tt.unitPrice))
			assert.True(t, got.Equal(dec(tt.want)), "LineAmount(%s, %s) = %s, want %s",
				tt.quantity, tt.unitPrice, got, tt.want)
		})
	}
}

func TestSubtotal(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.True(t, money.Subtotal(nil).IsZero())
	})

	t.Run("no binary drift", func(t *testing.T) {
		t.Parallel()
		// 0.1 added ten times is exactly 1.00 in decimal arithmetic.
		amounts := make([]decimal.Decimal, 10)
		for i := range amounts {
			amounts[i] = dec("0.1")
		}
		assert.True(t, money.Subtotal(amounts).Equal(dec("1.00")))
	})

	t.Run("sums line amounts", func(t *testing.T) {
		t.Parallel()
		got := money.Subtotal([]decimal.Decimal{dec("100.00"), dec("25.00")})
		assert.True(t, got.Equal(dec("125.00")))
	})
}

func TestTaxAmount(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		subtotal string
		rate     string
		want     string
	}{
		{"standard rate", "125.00", "19.00", "23.75"},
		{"zero rate", "125.00", "0", "0.00"},
		{"reduced rate", "80.00", "7.00", "5.60"},
		{"rounds to cents", "33.33", "19.00", "6.33"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := money.TaxAmount(dec(tt.subtotal), dec(tt.rate))
			assert.True(t, got.Equal(dec(tt.want)), "TaxAmount(%s, %s) = %s, want %s",
				tt.subtotal, tt.rate, got, tt.want)
		})
	}
}

func TestTotalsEndToEnd(t *testing.T) {
	t.Parallel()

	// Items [{qty:2, price:50.00}, {qty:1, price:25.00}] at 19% tax.
	amounts := []decimal.Decimal{
		money.LineAmount(dec("2"), dec("50.00")),
		money.LineAmount(dec("1"), dec("25.00")),
	}
	subtotal := money.Subtotal(amounts)
	tax := money.TaxAmount(subtotal, dec("19.00"))
	total := money.Total(subtotal, tax)

	assert.True(t, subtotal.Equal(dec("125.00")), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(dec("23.75")), "tax = %s", tax)
	assert.True(t, total.Equal(dec("148.75")), "total = %s", total)
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.True(t, money.Parse("12.50").Equal(dec("12.50")))
	assert.True(t, money.Parse("").IsZero())
	assert.True(t, money.Parse("not-a-number").IsZero())
}
