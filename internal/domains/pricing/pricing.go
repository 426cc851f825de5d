package pricing

import (
	"github.com/shopspring/decimal"
)

// =====================================================
// PRICING ENGINE
// =====================================================
// Pure calculation functions shared by the cart store and the order
// builder. No state, no I/O; invalid input degrades to zero instead of
// erroring so callers never branch on pricing failures.

// Line is the minimal shape the engine needs to price an item.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal returns unitPrice × quantity. Negative quantities price as
// zero (the cart store clamps before it gets here, this is the backstop).
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums line totals over the item set.
func Subtotal(lines []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return subtotal
}

// Shipping returns zero when the subtotal reaches the free-shipping
// threshold, otherwise the flat fee. An empty cart ships nothing.
func Shipping(subtotal, freeThreshold, flatFee decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(freeThreshold) {
		return decimal.Zero
	}
	return flatFee
}

// Breakdown is the computed payment breakdown for a cart or order.
// Invariant: Total = Subtotal - Discount + Shipping, never negative.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Compute prices an item set end to end: subtotal, shipping against the
// threshold, coupon discount via the rule table, and the final total.
func Compute(lines []Line, couponCode string, rules RuleTable, freeThreshold, flatFee decimal.Decimal) Breakdown {
	subtotal := Subtotal(lines)
	shipping := Shipping(subtotal, freeThreshold, flatFee)
	discount := rules.Apply(subtotal, couponCode)

	total := subtotal.Sub(discount).Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
