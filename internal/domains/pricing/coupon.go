package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =====================================================
// COUPON RULES
// =====================================================
// A coupon code is a pure lookup into a rule table. Unknown codes apply
// silently as a zero discount; applying a coupon never fails. The
// built-in table is a stand-in for an external pricing-rules service;
// swap it by constructing the cart service with a different RuleTable.

// DiscountType classifies how a rule discounts the subtotal
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Rule maps a coupon code to its discount behavior
type Rule struct {
	Code        string          `json:"code"`
	Type        DiscountType    `json:"type"`
	Value       decimal.Decimal `json:"value"`        // percent (0-100) or fixed amount
	MaxDiscount decimal.Decimal `json:"max_discount"` // cap for percentage rules; zero = uncapped
	MinSubtotal decimal.Decimal `json:"min_subtotal"` // rule inactive below this subtotal
}

// RuleTable is the coupon lookup. Keys are upper-cased codes.
type RuleTable map[string]Rule

// DefaultRules returns the storefront's built-in coupon table.
func DefaultRules() RuleTable {
	return RuleTable{
		"WELCOME10": {
			Code:  "WELCOME10",
			Type:  DiscountTypePercentage,
			Value: decimal.NewFromInt(10),
		},
		"HAAT50": {
			Code:        "HAAT50",
			Type:        DiscountTypeFixed,
			Value:       decimal.NewFromInt(50),
			MinSubtotal: decimal.NewFromInt(500),
		},
		"FESTIVE20": {
			Code:        "FESTIVE20",
			Type:        DiscountTypePercentage,
			Value:       decimal.NewFromInt(20),
			MaxDiscount: decimal.NewFromInt(300),
		},
	}
}

// Apply returns the discount for a code against a subtotal.
// Unknown, empty, or inapplicable codes return zero. Never errors.
func (t RuleTable) Apply(subtotal decimal.Decimal, code string) decimal.Decimal {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return decimal.Zero
	}

	rule, exists := t[normalized]
	if !exists {
		return decimal.Zero
	}

	if rule.MinSubtotal.IsPositive() && subtotal.LessThan(rule.MinSubtotal) {
		return decimal.Zero
	}

	var discount decimal.Decimal

	switch rule.Type {
	case DiscountTypePercentage:
		discount = subtotal.Mul(rule.Value).Div(decimal.NewFromInt(100))

		if rule.MaxDiscount.IsPositive() && discount.GreaterThan(rule.MaxDiscount) {
			discount = rule.MaxDiscount
		}

	case DiscountTypeFixed:
		discount = rule.Value

		// A fixed discount never exceeds what the items cost
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}

	default:
		return decimal.Zero
	}

	// Round to the currency's minor unit
	return discount.Round(2)
}

// IsKnown reports whether a code exists in the table, regardless of
// whether it currently applies. Used to tell shoppers "applied" vs
// "no such code" without ever failing the apply path.
func (t RuleTable) IsKnown(code string) bool {
	_, exists := t[strings.ToUpper(strings.TrimSpace(code))]
	return exists
}
