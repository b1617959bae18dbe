// Package pricing computes order totals. It is pure: no storage access, no
// side effects, safe to call concurrently.
package pricing

import "github.com/shopspring/decimal"

// Tax rates applied to order subtotals. Dine-in and online orders are taxed
// differently. The rates are deployment constants, not persisted
// configuration; changing them requires a new release.
var (
	DineInRate = decimal.RequireFromString("0.0525")
	OnlineRate = decimal.RequireFromString("0.11")
)

// LineItem is the pricing view of one order line: a unit price and a
// quantity. Prices are taken verbatim from the caller.
type LineItem struct {
	Price    decimal.Decimal
	Quantity uint32
}

// Totals is the result of a price calculation. Subtotal is the unrounded
// sum of the lines; Tax and Total are rounded to 2 decimal places.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate sums the given lines and applies the tax rate:
//
//	subtotal = Σ price×quantity (summed in input order, unrounded)
//	tax      = round2(subtotal × rate)
//	total    = round2(subtotal + tax)
//
// Rounding is half away from zero (decimal.Round). Callers must reject
// empty item lists before calling; an empty slice yields zero totals.
func Calculate(items []LineItem, rate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	tax := subtotal.Mul(rate).Round(2)
	total := subtotal.Add(tax).Round(2)
	return Totals{Subtotal: subtotal, Tax: tax, Total: total}
}
