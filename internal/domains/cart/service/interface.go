package service

import (
	"context"

	"heritage-backend/internal/domains/cart/model"
)

// ServiceInterface defines cart store operations
type ServiceInterface interface {
	// GetCart returns the session's cart, creating an empty one if needed
	GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error)

	// SetItem sets a product's quantity (adds when unseen, removes at zero)
	SetItem(ctx context.Context, sessionID string, req model.SetItemRequest) (*model.CartResponse, error)

	// Increment bumps a product's quantity by one
	Increment(ctx context.Context, sessionID, productID string) (*model.CartResponse, error)

	// Decrement lowers a product's quantity by one, clamping at zero
	Decrement(ctx context.Context, sessionID, productID string) (*model.CartResponse, error)

	// RemoveItem drops a product line entirely
	RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartResponse, error)

	// Clear empties the cart and removes any coupon
	Clear(ctx context.Context, sessionID string) error

	// ApplyCoupon attaches a coupon code; unknown codes apply as zero discount
	ApplyCoupon(ctx context.Context, sessionID, code string) (*model.CartResponse, bool, error)

	// RemoveCoupon detaches the coupon
	RemoveCoupon(ctx context.Context, sessionID string) (*model.CartResponse, error)

	// Snapshot returns the raw cart for the checkout path
	Snapshot(ctx context.Context, sessionID string) (*model.Cart, error)
}
