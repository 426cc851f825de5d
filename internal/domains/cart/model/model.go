package model

import (
	"time"

	"github.com/shopspring/decimal"

	"heritage-backend/internal/domains/pricing"
)

// Cart represents the live shopping cart for one session.
// Items are keyed by product id; a quantity that reaches zero removes
// the item entirely, so every item present contributes to the subtotal.
type Cart struct {
	SessionID  string              `json:"session_id"`
	Items      map[string]CartItem `json:"items"`
	CouponCode string              `json:"coupon_code"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// CartItem represents one product line in the cart.
// UnitPrice is a snapshot taken when the catalog supplied the product;
// the cart never re-queries the catalog.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// NewCart creates an empty cart for a session
func NewCart(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		Items:     make(map[string]CartItem),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =====================================================
// REDUCER
// =====================================================
// Cart mutations go through Apply(action) so the store can be exercised
// without any HTTP machinery. Every action clamps quantities at zero;
// nothing here errors, invalid actions simply leave the cart unchanged.

// ActionType enumerates cart mutations
type ActionType string

const (
	ActionSetQuantity  ActionType = "set_quantity"
	ActionIncrement    ActionType = "increment"
	ActionDecrement    ActionType = "decrement"
	ActionRemoveItem   ActionType = "remove_item"
	ActionClear        ActionType = "clear"
	ActionApplyCoupon  ActionType = "apply_coupon"
	ActionRemoveCoupon ActionType = "remove_coupon"
)

// Action is one cart mutation. Product holds the catalog snapshot for
// set_quantity on a product the cart has not seen yet.
type Action struct {
	Type       ActionType
	ProductID  string
	Quantity   int
	Product    *CartItem // catalog data for new items
	CouponCode string
}

// Apply reduces an action into the cart, in place.
func (c *Cart) Apply(action Action) {
	switch action.Type {
	case ActionSetQuantity:
		c.setQuantity(action)

	case ActionIncrement:
		if item, ok := c.Items[action.ProductID]; ok {
			item.Quantity++
			c.Items[action.ProductID] = item
		} else if action.Product != nil {
			// First increment of an unseen product adds it with qty 1
			item := *action.Product
			item.Quantity = 1
			c.Items[item.ProductID] = item
		}

	case ActionDecrement:
		if item, ok := c.Items[action.ProductID]; ok {
			item.Quantity--
			if item.Quantity <= 0 {
				// Clamp at zero and drop the row
				delete(c.Items, action.ProductID)
			} else {
				c.Items[action.ProductID] = item
			}
		}

	case ActionRemoveItem:
		delete(c.Items, action.ProductID)

	case ActionClear:
		c.Items = make(map[string]CartItem)
		c.CouponCode = ""

	case ActionApplyCoupon:
		c.CouponCode = action.CouponCode

	case ActionRemoveCoupon:
		c.CouponCode = ""
	}

	c.UpdatedAt = time.Now()
}

func (c *Cart) setQuantity(action Action) {
	quantity := action.Quantity
	if quantity < 0 {
		quantity = 0
	}

	if quantity == 0 {
		delete(c.Items, action.ProductID)
		return
	}

	if item, ok := c.Items[action.ProductID]; ok {
		item.Quantity = quantity
		c.Items[action.ProductID] = item
		return
	}

	if action.Product != nil {
		item := *action.Product
		item.Quantity = quantity
		c.Items[item.ProductID] = item
	}
}

// =====================================================
// DERIVED VALUES
// =====================================================

// IsEmpty reports whether the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemsCount returns the total unit count across all lines
func (c *Cart) ItemsCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// PricingLines converts cart items for the pricing engine
func (c *Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	return lines
}
