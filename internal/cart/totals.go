package cart

import (
	"github.com/shopspring/decimal"

	"github.com/giannis-supplies/storefront/internal/models"
)

var (
	discountRate = decimal.NewFromFloat(0.05)
	taxRate      = decimal.NewFromFloat(0.15)
)

// ComputeTotals derives totals from the given lines: 5% discount off the
// subtotal, then 15% tax on the discounted amount. Each component is rounded
// to two places only here, after the full-precision chain.
func ComputeTotals(lines []models.CartLine) models.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromFloat(l.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	discount := subtotal.Mul(discountRate)
	tax := subtotal.Sub(discount).Mul(taxRate)
	total := subtotal.Sub(discount).Add(tax)

	return models.Totals{
		Subtotal: subtotal.Round(2),
		Discount: discount.Round(2),
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}

// LineSubtotal is price × quantity for one line, rounded to two places.
func LineSubtotal(l models.CartLine) decimal.Decimal {
	return decimal.NewFromFloat(l.Price).
		Mul(decimal.NewFromInt(int64(l.Quantity))).
		Round(2)
}

// ItemCount sums quantities across lines (the nav badge number).
func ItemCount(lines []models.CartLine) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
