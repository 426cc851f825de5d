package repository

import (
	"context"

	"heritage-backend/internal/domains/cart/model"
)

// CartRepository stores session-scoped carts. Implementations are
// transient by contract: entries expire with the session TTL, there is
// no durable record of a cart anywhere.
type CartRepository interface {
	// Get returns the cart for a session, or (nil, nil) when absent.
	Get(ctx context.Context, sessionID string) (*model.Cart, error)

	// Save upserts the cart under its session id, refreshing the TTL.
	Save(ctx context.Context, cart *model.Cart) error

	// Delete removes the cart for a session. Absent is not an error.
	Delete(ctx context.Context, sessionID string) error
}
